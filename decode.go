package xmlite

import (
	"fmt"
	"strings"
)

// A SyntaxError reports the first point at which input text stopped
// matching the XML grammar. Offset is a byte offset into the string given
// to Parse; for failures at end of input it equals the input length.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid XML at offset %d: %s", e.Offset, e.Msg)
}

// Parse reads a complete XML document from s and returns its root element.
//
// Parsing is all-or-nothing: on any grammar mismatch Parse returns a nil
// Node and a *SyntaxError carrying the byte offset of the deepest failure
// point, never a partial tree. The entire input must be consumed; anything
// after the closing of the top-level element, whitespace included, is a
// syntax error.
//
// The failure offset is scoped to the individual call, so concurrent
// parses are safe.
func Parse(s string) (Node, error) {
	n, i, err := parseElement(s, 0)
	if err != nil {
		return nil, err
	}
	if i != len(s) {
		return nil, errAt(i, "trailing data after top-level element")
	}
	return n, nil
}

func errAt(off int, msg string) *SyntaxError {
	return &SyntaxError{Offset: off, Msg: msg}
}

// isNameChar reports whether c may appear in an element or attribute name:
// any byte except the tag delimiters and whitespace.
func isNameChar(c byte) bool {
	switch c {
	case '>', '/', '"', '=', ' ', '\t', '\n', '\r', '\v', '\f':
		return false
	}
	return true
}

// isNameCharAt reports whether a name character sits at position i,
// treating end of input as a boundary.
func isNameCharAt(s string, i int) bool {
	return i < len(s) && isNameChar(s[i])
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// skipSpace advances past whitespace. Whitespace is only ever skipped
// around tag and attribute syntax; text runs are taken verbatim.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// scanName consumes a run of name characters and returns it along with the
// position after it. An empty run is the caller's error to report.
func scanName(s string, i int) (string, int) {
	j := i
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	return s[i:j], j
}

// parseElement parses one element production starting at i:
//
//	'<' ws name (ws attr)* ws ( '/>' | '>' content* '</' ws name ws '>' )
//
// It returns the element and the position after its closing delimiter.
func parseElement(s string, i int) (*Element, int, error) {
	if i >= len(s) || s[i] != '<' {
		return nil, 0, errAt(i, "expected '<'")
	}
	i = skipSpace(s, i+1)

	name, j := scanName(s, i)
	if j == i {
		return nil, 0, errAt(i, "expected element name")
	}
	i = skipSpace(s, j)

	var attrs []Attr
	for i < len(s) && isNameChar(s[i]) {
		a, j, err := parseAttr(s, i)
		if err != nil {
			return nil, 0, err
		}
		attrs = append(attrs, a)
		i = skipSpace(s, j)
	}
	if i >= len(s) {
		return nil, 0, errAt(i, "unexpected end of input inside tag")
	}

	switch s[i] {
	case '/':
		i = skipSpace(s, i+1)
		if i >= len(s) || s[i] != '>' {
			return nil, 0, errAt(i, "expected '>' after '/'")
		}
		return &Element{Name: name, Attrs: attrs}, i + 1, nil
	case '>':
		children, j, err := parseContent(s, i+1, name)
		if err != nil {
			return nil, 0, err
		}
		return &Element{Name: name, Attrs: attrs, Children: children}, j, nil
	default:
		return nil, 0, errAt(i, "malformed tag")
	}
}

// parseAttr parses one name ws '=' ws '"' value '"' production. The value
// is the raw text up to the next quote, unescaped after extraction.
func parseAttr(s string, i int) (Attr, int, error) {
	name, j := scanName(s, i)
	if j == i {
		return Attr{}, 0, errAt(i, "expected attribute name")
	}
	i = skipSpace(s, j)
	if i >= len(s) || s[i] != '=' {
		return Attr{}, 0, errAt(i, "expected '=' after attribute name")
	}
	i = skipSpace(s, i+1)
	if i >= len(s) || s[i] != '"' {
		return Attr{}, 0, errAt(i, "expected '\"'")
	}
	i++
	q := strings.IndexByte(s[i:], '"')
	if q < 0 {
		return Attr{}, 0, errAt(len(s), "unterminated attribute value")
	}
	return Attr{Name: name, Value: Unescape(s[i : i+q])}, i + q + 1, nil
}

// parseContent parses the children of an element named name, starting just
// after the '>' of its opening tag, through the matching closing tag. It
// returns the children and the position after the closing '>'.
func parseContent(s string, i int, name string) ([]Node, int, error) {
	var children []Node
	for {
		if i >= len(s) {
			return nil, 0, errAt(i, "unexpected end of input in element content")
		}
		if s[i] != '<' {
			// Text run: everything up to the next tag, verbatim.
			q := strings.IndexByte(s[i:], '<')
			if q < 0 {
				return nil, 0, errAt(len(s), "unexpected end of input in element content")
			}
			children = append(children, Text(Unescape(s[i:i+q])))
			i += q
			continue
		}

		mark := i
		j := skipSpace(s, i+1)
		if j < len(s) && s[j] == '/' {
			// Closing tag: the name must match the opening tag byte for
			// byte.
			j = skipSpace(s, j+1)
			if !strings.HasPrefix(s[j:], name) || isNameCharAt(s, j+len(name)) {
				return nil, 0, errAt(j, "mismatched closing tag")
			}
			j = skipSpace(s, j+len(name))
			if j >= len(s) || s[j] != '>' {
				return nil, 0, errAt(j, "expected '>' to close tag")
			}
			return children, j + 1, nil
		}

		// Child tag: rewind to its '<' and dispatch a nested parse.
		child, j, err := parseElement(s, mark)
		if err != nil {
			return nil, 0, err
		}
		children = append(children, child)
		i = j
	}
}
