// Package document bridges xmlite trees to untyped JSON-like values so they
// can be queried or re-encoded in other formats.
//
// Decode flattens the XML-specific shape into maps, lists, and strings:
// attributes become "@name" keys, character data a "#text" key, and
// repeated child elements collapse into a list. The result is the natural
// input for query languages and for the JSON, YAML, and CBOR encoders in
// this package.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"

	xmlite "github.com/wwxtp/xmlite-go"
)

// encMode is the CBOR encoder mode for decoded documents, configured for
// deterministic output.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

// Decode converts the tree rooted at n to a generic value.
//
// A Text node decodes to its payload string. An element decodes to a
// single-entry map from its name to its decoded content:
//   - each attribute contributes an "@name" key (first occurrence wins),
//   - each child element contributes a key named after it; repeated names
//     collect into a []interface{} in document order,
//   - character data contributes a "#text" key holding the concatenation
//     of the element's text children, if non-empty,
//   - an element with no attributes and no element children collapses to
//     its concatenated text (the empty string when it has no content).
//
// The mapping is lossy by design: child ordering across different names and
// text/element interleaving are not preserved.
func Decode(n xmlite.Node) interface{} {
	if e, ok := n.(*xmlite.Element); ok {
		return map[string]interface{}{e.Name: decodeContent(e)}
	}
	return string(n.(xmlite.Text))
}

func decodeContent(e *xmlite.Element) interface{} {
	var text string
	elems := 0
	for _, c := range e.Children {
		switch c := c.(type) {
		case xmlite.Text:
			text += string(c)
		case *xmlite.Element:
			elems++
		}
	}
	if elems == 0 && len(e.Attrs) == 0 {
		return text
	}

	m := make(map[string]interface{}, len(e.Attrs)+elems+1)
	for _, a := range e.Attrs {
		key := "@" + a.Name
		if _, ok := m[key]; !ok {
			m[key] = a.Value
		}
	}
	if text != "" {
		m["#text"] = text
	}
	for _, c := range e.Children {
		el, ok := c.(*xmlite.Element)
		if !ok {
			continue
		}
		v := decodeContent(el)
		switch prev := m[el.Name].(type) {
		case nil:
			m[el.Name] = v
		case []interface{}:
			m[el.Name] = append(prev, v)
		default:
			m[el.Name] = []interface{}{prev, v}
		}
	}
	return m
}

// Search evaluates a JMESPath expression against the decoded form of n.
//
// The decoded top level keeps the root element's name, so a query against
// <wwxtp><query>...</query></wwxtp> starts at "wwxtp.query".
func Search(expr string, n xmlite.Node) (interface{}, error) {
	return jmespath.Search(expr, Decode(n))
}

// EncodeJSON encodes the decoded form of n as JSON.
func EncodeJSON(n xmlite.Node) ([]byte, error) {
	return json.Marshal(Decode(n))
}

// EncodeYAML encodes the decoded form of n as YAML.
func EncodeYAML(n xmlite.Node) ([]byte, error) {
	return yaml.Marshal(Decode(n))
}

// EncodeCBOR encodes the decoded form of n as deterministic CBOR.
func EncodeCBOR(n xmlite.Node) ([]byte, error) {
	return encMode.Marshal(Decode(n))
}
