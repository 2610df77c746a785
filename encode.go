package xmlite

// Serialize renders the tree rooted at n to its textual XML form.
//
// The output buffer is allocated once at the exact serialized length; the
// measuring and rendering passes share the escaping tables in escape.go and
// must agree byte for byte. A disagreement would be an internal bug, not a
// condition a caller can trigger.
func Serialize(n Node) string {
	p := make([]byte, n.measureLen())
	n.render(p)
	return string(p)
}

func (t Text) measureLen() int {
	return escapedLen(string(t))
}

func (t Text) render(p []byte) int {
	return escapeTo(p, string(t))
}

func (e *Element) measureLen() int {
	var total int
	if len(e.Children) == 0 {
		total = len(e.Name) + 3 // <name/>
	} else {
		total = 2*len(e.Name) + 5 // <name> + </name>
		for _, c := range e.Children {
			total += c.measureLen()
		}
	}
	for _, a := range e.Attrs {
		total += len(a.Name) + escapedLen(a.Value) + 4 // space, '=', two quotes
	}
	return total
}

func (e *Element) render(p []byte) int {
	off := 0
	p[off] = '<'
	off++
	off += copy(p[off:], e.Name)
	for _, a := range e.Attrs {
		p[off] = ' '
		off++
		off += copy(p[off:], a.Name)
		p[off] = '='
		off++
		p[off] = '"'
		off++
		off += escapeTo(p[off:], a.Value)
		p[off] = '"'
		off++
	}

	if len(e.Children) == 0 {
		p[off] = '/'
		off++
		p[off] = '>'
		off++
		return off
	}

	p[off] = '>'
	off++
	for _, c := range e.Children {
		off += c.render(p[off:])
	}
	p[off] = '<'
	off++
	p[off] = '/'
	off++
	off += copy(p[off:], e.Name)
	p[off] = '>'
	off++
	return off
}
