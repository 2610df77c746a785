// Package testing provides assertion utilities for comparing XML documents
// in tests. Two documents are equivalent when they parse to the same tree,
// which ignores surface differences such as entity spelling, whitespace
// inside tags, and self-closed versus explicit-empty elements.
package testing

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	xmlite "github.com/wwxtp/xmlite-go"
)

// T provides the testing interface for capturing failures with testing
// assert utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// Equivalent compares two XML documents and identifies if they describe the
// same tree. Returns an error if the documents are not equivalent.
func Equivalent(expect, actual []byte) error {
	expectNode, err := xmlite.Parse(string(expect))
	if err != nil {
		return fmt.Errorf("failed to parse expected document, %v", err)
	}

	actualNode, err := xmlite.Parse(string(actual))
	if err != nil {
		return fmt.Errorf("failed to parse actual document, %v", err)
	}

	if diff := cmp.Diff(expectNode, actualNode); len(diff) != 0 {
		return fmt.Errorf("XML mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertEquivalent compares two XML documents and identifies if they
// describe the same tree. Emits a testing error, and returns false if the
// documents are not equivalent.
func AssertEquivalent(t T, expect, actual []byte) bool {
	t.Helper()

	if err := Equivalent(expect, actual); err != nil {
		t.Errorf("expect XML equivalent, %v", err)
		return false
	}

	return true
}
