// Package xmlite implements a minimal XML document model: an immutable tree
// of elements and character data, a serializer, and a parser.
//
// This package implements the subset of XML required for lightweight
// request/response payloads and is NOT suitable for general document
// processing. There is no support for namespaces, comments, CDATA sections,
// processing instructions, or DOCTYPE declarations, and only the four named
// entities &lt; &gt; &amp; &quot; are recognized.
//
// As the encoding API operates strictly off of a constructed tree, the
// serialized length of every node is always known ahead of time and
// Serialize writes into a single exact-size allocation.
//
// Trees are immutable once built; concurrent reads of a published tree are
// safe.
package xmlite

// Node describes one item in an XML document tree.
//
// The following types implement Node:
//   - Text
//   - *Element
type Node interface {
	measureLen() int
	render(p []byte) int
}

var (
	_ Node = Text("")
	_ Node = (*Element)(nil)
)

// Text is a run of character data between tags. The payload is raw: reserved
// characters are stored literally and escaped only during serialization.
type Text string

// An Attr represents an attribute in an XML element (Name="Value"). The
// value is raw, like a Text payload.
type Attr struct {
	Name  string
	Value string
}

// An Element represents an XML element: a name, an ordered attribute list,
// and an ordered list of child nodes.
//
// Attribute names need not be unique; lookups return the first match.
// Child order is document order. An element with no children serializes to
// the self-closed form <name/> regardless of how it was written in source
// text.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

// Build returns an Element with the given name, attributes, and children.
//
// Both slices are copied, so the element owns its sequences and later
// mutation of the arguments does not affect it. Build performs no
// validation: the caller is responsible for supplying a well-formed name
// (any non-empty run of bytes other than '>', '/', '"', '=', and
// whitespace) and for not mutating child nodes after passing them in.
func Build(name string, attrs []Attr, children []Node) *Element {
	e := &Element{Name: name}
	if len(attrs) > 0 {
		e.Attrs = make([]Attr, len(attrs))
		copy(e.Attrs, attrs)
	}
	if len(children) > 0 {
		e.Children = make([]Node, len(children))
		copy(e.Children, children)
	}
	return e
}

// Attr returns the value of the first attribute with the given name, and
// whether one was present. An attribute with an empty value reports true.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, and whether
// one was present. Text children are never candidates, even when their
// content matches the name.
func (e *Element) Child(name string) (*Element, bool) {
	for _, c := range e.Children {
		el, ok := c.(*Element)
		if ok && el.Name == name {
			return el, true
		}
	}
	return nil, false
}
