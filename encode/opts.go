package encode

import "strings"

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = strings.Repeat(" ", n) }
}

// EncodeCompact renders the whole document on one line.
func EncodeCompact() EncodeOption {
	return func(es *EncState) { es.indent = "" }
}

// EncodeHeader controls the XML declaration; on by default.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// EncodeColors enables terminal syntax highlighting.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
