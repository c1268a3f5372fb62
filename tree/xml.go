package tree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/fomod-tools/fomod-designer/schema"
)

// WriteXML renders the subtree rooted at n as XML. An empty indent
// produces a compact single-line form (the shape used for hidden-node
// snapshots); otherwise every element starts on its own line, indented
// by one copy of indent per depth.
func (n *Node) WriteXML(w io.Writer, indent string) error {
	bw := bufio.NewWriter(w)
	if err := writeNode(bw, n, 0, indent); err != nil {
		return err
	}
	return bw.Flush()
}

// XMLString returns the compact serialization of the subtree rooted at
// n. This is the exact form stored in hidden-node snapshots.
func (n *Node) XMLString() string {
	var b strings.Builder
	_ = n.WriteXML(&b, "")
	return b.String()
}

func writeNode(w *bufio.Writer, n *Node, depth int, indent string) error {
	pad := ""
	nl := ""
	if indent != "" {
		pad = strings.Repeat(indent, depth)
		nl = "\n"
	}
	if n.typ.IsComment() {
		_, err := fmt.Fprintf(w, "%s<!--%s-->", pad, n.text)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s<%s", pad, n.typ.Tag); err != nil {
		return err
	}
	for _, p := range n.typ.Properties {
		if p.Key == schema.TextContent {
			continue
		}
		raw, ok := n.attrs[p.Key]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="`, p.Key); err != nil {
			return err
		}
		if err := xml.EscapeText(w, []byte(raw)); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}
	if n.text == "" && len(n.children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}
	if err := w.WriteByte('>'); err != nil {
		return err
	}
	if n.text != "" {
		if err := xml.EscapeText(w, []byte(n.text)); err != nil {
			return err
		}
	}
	if len(n.children) == 0 {
		_, err := fmt.Fprintf(w, "</%s>", n.typ.Tag)
		return err
	}
	for _, c := range n.children {
		if _, err := w.WriteString(nl); err != nil {
			return err
		}
		if err := writeNode(w, c, depth+1, indent); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s%s</%s>", nl, pad, n.typ.Tag)
	return err
}

// DecodeElement builds the node for an already consumed start element of
// the given type, recursively consuming the decoder through the matching
// end element. Element tags outside the type's allowed children are
// rejected; unknown attributes are ignored; whitespace-only text is
// dropped; ordinary comments become comment children.
func DecodeElement(d *xml.Decoder, start xml.StartElement, typ *schema.NodeType) (*Node, error) {
	n := New(typ)
	for _, a := range start.Attr {
		n.attrs[attrKey(a.Name)] = a.Value
	}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ct := typ.ChildType(t.Name.Local)
			if ct == nil {
				return nil, fmt.Errorf("%w: <%s> under <%s>", ErrUnknownTag, t.Name.Local, typ.Tag)
			}
			child, err := DecodeElement(d, t, ct)
			if err != nil {
				return nil, err
			}
			child.parent = n
			n.children = append(n.children, child)
		case xml.CharData:
			text.Write(t)
		case xml.Comment:
			c := NewComment(string(t))
			c.parent = n
			n.children = append(n.children, c)
		case xml.EndElement:
			n.text = strings.TrimSpace(text.String())
			n.ParseAttribs()
			return n, nil
		}
	}
}

// ParseSnippet parses a single serialized element (or comment) in the
// context of parent, resolving its type among parent's allowed children.
func ParseSnippet(data []byte, parent *Node) (*Node, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.Comment:
			return NewComment(string(t)), nil
		case xml.StartElement:
			ct := parent.typ.ChildType(t.Name.Local)
			if ct == nil {
				return nil, fmt.Errorf("%w: <%s> under <%s>", ErrUnknownTag, t.Name.Local, parent.typ.Tag)
			}
			return DecodeElement(d, t, ct)
		}
	}
}

// attrKey normalizes a decoded attribute name back to the literal form
// the registries declare. The config root's xsi attributes are the only
// namespaced names in the grammar.
func attrKey(name xml.Name) string {
	switch name.Space {
	case "":
		return name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	case schema.XSINamespace:
		return "xsi:" + name.Local
	}
	return name.Space + ":" + name.Local
}
