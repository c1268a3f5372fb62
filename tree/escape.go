package tree

import "strings"

// Hidden-subtree snapshots are stored inside an XML comment, whose body
// may not contain "--" (and so neither "<!--" nor "-->") without
// truncating the comment on re-parse. Escape rewrites those sequences
// into a prefix code over the escape byte '~'; Unescape is its exact
// inverse, so Unescape(Escape(s)) == s for every s.

// Escape makes s safe for embedding in an XML comment body.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case s[i] == '~':
			b.WriteString("~~")
			i++
		case strings.HasPrefix(s[i:], "<!--"):
			b.WriteString("~o")
			i += 4
		case strings.HasPrefix(s[i:], "-->"):
			b.WriteString("~c")
			i += 3
		case strings.HasPrefix(s[i:], "--"):
			b.WriteString("~d")
			i += 2
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// Unescape reverses Escape. Malformed escapes (a trailing '~' or an
// unknown code) are kept verbatim rather than rejected, in line with the
// codec's never-fatal posture.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '~' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		switch s[i+1] {
		case '~':
			b.WriteByte('~')
		case 'o':
			b.WriteString("<!--")
		case 'c':
			b.WriteString("-->")
		case 'd':
			b.WriteString("--")
		default:
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
		}
		i += 2
	}
	return b.String()
}
