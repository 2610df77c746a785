package xmlite

import "strings"

// The four named entities recognized by this package. Nothing else is
// escaped on output or decoded on input (in particular not &apos;).
const (
	entLT   = "&lt;"
	entGT   = "&gt;"
	entAmp  = "&amp;"
	entQuot = "&quot;"
)

// escapedLen returns the exact number of bytes escapeTo will write for s.
// It must stay in lock-step with escapeTo.
func escapedLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '>':
			n += len(entLT)
		case '&':
			n += len(entAmp)
		case '"':
			n += len(entQuot)
		default:
			n++
		}
	}
	return n
}

// escapeTo writes the escaped form of s into p and returns the number of
// bytes written. p must hold at least escapedLen(s) bytes.
func escapeTo(p []byte, s string) int {
	off := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			off += copy(p[off:], entLT)
		case '>':
			off += copy(p[off:], entGT)
		case '&':
			off += copy(p[off:], entAmp)
		case '"':
			off += copy(p[off:], entQuot)
		default:
			p[off] = s[i]
			off++
		}
	}
	return off
}

// Escape replaces the reserved characters '<', '>', '&', and '"' in s with
// their named entity forms. All other bytes pass through unchanged.
func Escape(s string) string {
	p := make([]byte, escapedLen(s))
	escapeTo(p, s)
	return string(p)
}

// Unescape decodes the four named entities in s back to their literal
// characters.
//
// The decoder is lenient: an '&' that does not begin one of the exact
// sequences "lt;", "gt;", "amp;", or "quot;" is copied through literally,
// including truncated sequences at the end of the input. Unescape therefore
// never fails, and Unescape(Escape(s)) == s for every s. The converse does
// not hold: unrecognized entity-like runs survive Unescape but would be
// re-escaped at the '&'.
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			b.WriteByte(s[i])
			continue
		}
		rest := s[i+1:]
		switch {
		case strings.HasPrefix(rest, "lt;"):
			b.WriteByte('<')
			i += 3
		case strings.HasPrefix(rest, "gt;"):
			b.WriteByte('>')
			i += 3
		case strings.HasPrefix(rest, "amp;"):
			b.WriteByte('&')
			i += 4
		case strings.HasPrefix(rest, "quot;"):
			b.WriteByte('"')
			i += 5
		default:
			b.WriteByte('&')
		}
	}
	return b.String()
}
