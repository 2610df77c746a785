package xmlite

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	for name, c := range map[string]struct {
		In     string
		Expect Node
	}{
		"self-closed": {
			"<a/>",
			&Element{Name: "a"},
		},
		"explicit empty collapses to self-closed shape": {
			"<a></a>",
			&Element{Name: "a"},
		},
		"text content": {
			"<a>hello</a>",
			&Element{Name: "a", Children: []Node{Text("hello")}},
		},
		"entities in text": {
			"<a>1 &lt; 2 &amp;&amp; 3 &gt; 2</a>",
			&Element{Name: "a", Children: []Node{Text(`1 < 2 && 3 > 2`)}},
		},
		"entities in attribute": {
			`<a q="&quot;x&quot;"/>`,
			&Element{Name: "a", Attrs: []Attr{{"q", `"x"`}}},
		},
		"lenient entity passthrough": {
			"<a>tom &amp jerry &am</a>",
			&Element{Name: "a", Children: []Node{Text("tom &amp jerry &am")}},
		},
		"whitespace inside tag syntax": {
			`< a  href = "x" / >`,
			&Element{Name: "a", Attrs: []Attr{{"href", "x"}}},
		},
		"whitespace in closing tag": {
			"<a>x</ a >",
			&Element{Name: "a", Children: []Node{Text("x")}},
		},
		"text whitespace preserved": {
			"<a>  two  spaces  </a>",
			&Element{Name: "a", Children: []Node{Text("  two  spaces  ")}},
		},
		"raw markup in attribute value": {
			`<a v="a<b>c"/>`,
			&Element{Name: "a", Attrs: []Attr{{"v", "a<b>c"}}},
		},
		"mixed content": {
			"<p>before <em>mid</em> after</p>",
			&Element{Name: "p", Children: []Node{
				Text("before "),
				&Element{Name: "em", Children: []Node{Text("mid")}},
				Text(" after"),
			}},
		},
		"duplicate attributes": {
			`<a x="1" x="2"/>`,
			&Element{Name: "a", Attrs: []Attr{{"x", "1"}, {"x", "2"}}},
		},
		"wwxtp request": {
			`<wwxtp><query><command>TEST</command><position lat="23.01515" long="-15.132"/></query></wwxtp>`,
			&Element{Name: "wwxtp", Children: []Node{
				&Element{Name: "query", Children: []Node{
					&Element{Name: "command", Children: []Node{Text("TEST")}},
					&Element{Name: "position", Attrs: []Attr{
						{"lat", "23.01515"},
						{"long", "-15.132"},
					}},
				}},
			}},
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual, err := Parse(c.In)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect, actual); len(diff) != 0 {
				t.Errorf("tree mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for name, c := range map[string]struct {
		In     string
		Offset int
		Msg    string
	}{
		"empty input": {
			"", 0, "expected '<'",
		},
		"bare text": {
			"text", 0, "expected '<'",
		},
		"empty tag": {
			"<>", 1, "expected element name",
		},
		"input ends inside tag": {
			"<a", 2, "unexpected end of input inside tag",
		},
		"unterminated element": {
			`<a attr="x">`, 12, "unexpected end of input",
		},
		"unterminated content": {
			"<a>text", 7, "unexpected end of input",
		},
		"unterminated attribute value": {
			`<a href="x>`, 11, "unterminated attribute value",
		},
		"single-quoted attribute": {
			`<a b='x'/>`, 5, `expected '"'`,
		},
		"attribute without value": {
			`<a checked/>`, 10, "expected '='",
		},
		"mismatched closing tag": {
			"<a></b>", 5, "mismatched closing tag",
		},
		"mismatched nested closing tag": {
			"<a><b></a>", 8, "mismatched closing tag",
		},
		"closing name is a prefix": {
			"<ab></a>", 6, "mismatched closing tag",
		},
		"closing name has a suffix": {
			"<a></ab>", 5, "mismatched closing tag",
		},
		"closing tag truncated": {
			"<a></a", 6, "expected '>' to close tag",
		},
		"trailing data": {
			"<a/>x", 4, "trailing data",
		},
		"trailing whitespace": {
			"<a/> ", 4, "trailing data",
		},
		"second top-level element": {
			"<a/><b/>", 4, "trailing data",
		},
		"xml declaration": {
			`<?xml version="1.0"?>`, 20, "expected '='",
		},
	} {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(c.In)
			if n != nil {
				t.Errorf("expect nil node, got %v", n)
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("expect *SyntaxError, got %v", err)
			}
			if serr.Offset != c.Offset {
				t.Errorf("expect offset %d, got %d", c.Offset, serr.Offset)
			}
			if !strings.Contains(serr.Error(), c.Msg) {
				t.Errorf("expect message to contain %q, got %q", c.Msg, serr.Error())
			}
		})
	}
}

func TestParse_NoDeclarationsRecognized(t *testing.T) {
	// Declarations, comments, CDATA, and DOCTYPE are not part of the
	// grammar; they fail as malformed tags rather than being skipped.
	for name, in := range map[string]string{
		"comment": "<!--x--><a/>",
		"cdata":   "<a><![CDATA[x]]></a>",
		"doctype": "<!DOCTYPE html><a/>",
		"pi":      "<?pi data?><a/>",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Error("expect parse failure")
			}
		})
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	for name, in := range map[string]string{
		"wwxtp request": `<wwxtp><query><command>TEST</command><position lat="23.01515" long="-15.132"/></query></wwxtp>`,
		"mixed":         "<p>a<b/>c</p>",
		"escaped":       `<a v="&quot;">x &amp; y</a>`,
		"empty":         "<a/>",
	} {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(in)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if actual := Serialize(n); actual != in {
				t.Errorf("expect %q, got %q", in, actual)
			}
		})
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	trees := []Node{
		Build("a", nil, nil),
		Build("a", []Attr{{"k", `"quoted" & <bracketed>`}}, nil),
		Build("root", nil, []Node{
			Text("text & more"),
			Build("child", []Attr{{"x", "1"}}, []Node{Text("inner")}),
		}),
	}
	for i, tree := range trees {
		out := Serialize(tree)
		parsed, err := Parse(out)
		if err != nil {
			t.Fatalf("tree %d: expect no error, got %v", i, err)
		}
		if again := Serialize(parsed); again != out {
			t.Errorf("tree %d: expect %q, got %q", i, out, again)
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	// Failure offsets are carried in the returned error, not in shared
	// state, so concurrent parses must not interfere.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(pad int) {
			defer wg.Done()
			in := "<a>" + strings.Repeat("x", pad)
			_, err := Parse(in)
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Errorf("pad %d: expect *SyntaxError, got %v", pad, err)
				return
			}
			if expect := 3 + pad; serr.Offset != expect {
				t.Errorf("pad %d: expect offset %d, got %d", pad, expect, serr.Offset)
			}
		}(i)
	}
	wg.Wait()
}

func ExampleParse() {
	n, err := Parse(`<greeting lang="en">hello</greeting>`)
	if err != nil {
		fmt.Println(err)
		return
	}
	e := n.(*Element)
	lang, _ := e.Attr("lang")
	fmt.Println(e.Name, lang)
	// Output: greeting en
}
