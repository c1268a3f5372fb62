package encode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/fomod-tools/fomod-designer/schema"
	"github.com/fomod-tools/fomod-designer/tree"
)

// Colors maps document parts to terminal color functions.
type Colors struct {
	Tag     func(string, ...any) string
	Field   func(string, ...any) string
	Value   func(string, ...any) string
	Sep     func(string, ...any) string
	Comment func(string, ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	return &Colors{
		Tag:     color.RGB(74, 92, 138).SprintfFunc(),
		Field:   color.RGB(196, 96, 16).SprintfFunc(),
		Value:   color.RGB(128, 216, 236).SprintfFunc(),
		Sep:     color.RGB(255, 0, 196).SprintfFunc(),
		Comment: color.BlueString,
	}
}

func encodeColored(n *tree.Node, w io.Writer, es *EncState, depth int) error {
	c := es.colors
	pad, nl := "", ""
	if es.indent != "" {
		pad = strings.Repeat(es.indent, depth)
		nl = "\n"
	}
	typ := n.Type()
	if typ.IsComment() {
		_, err := fmt.Fprintf(w, "%s%s", pad, c.Comment("<!--%s-->", n.Text()))
		return err
	}
	var b strings.Builder
	b.WriteString(pad)
	b.WriteString(c.Sep("<") + c.Tag("%s", typ.Tag))
	for _, p := range typ.Properties {
		if p.Key == schema.TextContent {
			continue
		}
		raw, ok := n.AttrOK(p.Key)
		if !ok {
			continue
		}
		b.WriteString(" " + c.Field("%s", p.Key) + c.Sep("=") + c.Value(`"%s"`, escText(raw)))
	}
	if n.Text() == "" && len(n.Children()) == 0 {
		b.WriteString(c.Sep("/>"))
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString(c.Sep(">"))
	if n.Text() != "" {
		b.WriteString(c.Value("%s", escText(n.Text())))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if len(n.Children()) > 0 {
		for _, child := range n.Children() {
			if _, err := io.WriteString(w, nl); err != nil {
				return err
			}
			if err := encodeColored(child, w, es, depth+1); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, nl+pad); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, c.Sep("</")+c.Tag("%s", typ.Tag)+c.Sep(">"))
	return err
}

func escText(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
