package tree

import (
	"strings"

	"github.com/fomod-tools/fomod-designer/schema"
)

// labelMax caps derived text labels, matching the editor's list view.
const labelMax = 40

// Node is one element (or comment) of a FOMOD document, bound to its
// schema descriptor for life. Children are owned by their parent; the
// parent pointer is navigation only.
type Node struct {
	typ    *schema.NodeType
	parent *Node

	// children is the visible document order. Hidden nodes live in
	// hidden until un-hidden and never appear here.
	children []*Node
	hidden   []*Node

	// attrs and text mirror the serializable form of props; WriteAttribs
	// and ParseAttribs convert between the two.
	attrs map[string]string
	text  string
	props map[string]*schema.Value

	// label is the derived display label per the type's LabelRule;
	// nameOverride, when non-empty, wins over it and is what the
	// metadata side channel persists.
	label        string
	nameOverride string
	userRank     string
	isHidden     bool
}

// New constructs a detached node of the given type with all properties
// at their defaults.
func New(typ *schema.NodeType) *Node {
	n := &Node{
		typ:      typ,
		attrs:    map[string]string{},
		props:    map[string]*schema.Value{},
		userRank: defaultRank,
	}
	for _, p := range typ.Properties {
		n.props[p.Key] = p.New()
	}
	n.updateLabel()
	return n
}

// NewComment constructs a detached comment node carrying text.
func NewComment(text string) *Node {
	n := New(schema.Comment)
	n.props[schema.TextContent].Set(text)
	n.text = text
	n.updateLabel()
	return n
}

// Type returns the node's schema descriptor.
func (n *Node) Type() *schema.NodeType { return n.typ }

// Parent returns the owning parent, nil for document roots and detached
// nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the visible children in document order. The slice is
// owned by the node; callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// HiddenChildren returns the children currently detached as hidden.
func (n *Node) HiddenChildren() []*Node { return n.hidden }

// IsHidden reports whether the node is detached from its parent's
// visible order.
func (n *Node) IsHidden() bool { return n.isHidden }

// Prop returns the typed value for key, or nil if the node's type does
// not declare it.
func (n *Node) Prop(key string) *schema.Value { return n.props[key] }

// Text returns the node's raw text content.
func (n *Node) Text() string { return n.text }

// Attr returns the raw attribute value for key.
func (n *Node) Attr(key string) string { return n.attrs[key] }

// AttrOK returns the raw attribute value for key and whether it has
// been materialized at all.
func (n *Node) AttrOK(key string) (string, bool) {
	raw, ok := n.attrs[key]
	return raw, ok
}

// DisplayLabel returns the node's current display label: the metadata
// override if one is set, otherwise the label derived per the type's
// rule.
func (n *Node) DisplayLabel() string {
	if n.nameOverride != "" {
		return n.nameOverride
	}
	return n.label
}

// SetDisplayLabel overrides the display label. An empty string clears
// the override, falling back to the derived label. The override is
// persisted on the next SaveMetadata.
func (n *Node) SetDisplayLabel(label string) {
	n.nameOverride = label
}

// ParseAttribs reads the raw attribute and text strings into the node's
// typed properties and refreshes the display label.
func (n *Node) ParseAttribs() {
	for _, p := range n.typ.Properties {
		if p.Key == schema.TextContent {
			n.props[p.Key].Set(n.text)
			continue
		}
		raw, ok := n.attrs[p.Key]
		if !ok {
			continue
		}
		n.props[p.Key].Set(raw)
	}
	n.updateLabel()
}

// WriteAttribs writes the typed property values back into the raw
// attribute and text strings, in descriptor order. While the node is
// hidden this also re-persists the parent's metadata so the stored
// snapshot stays current.
func (n *Node) WriteAttribs() {
	n.attrs = make(map[string]string, len(n.typ.Properties))
	for _, p := range n.typ.Properties {
		v := n.props[p.Key]
		if p.Key == schema.TextContent {
			n.text = v.String()
			continue
		}
		n.attrs[p.Key] = v.String()
	}
	if n.isHidden && n.parent != nil {
		n.parent.SaveMetadata()
	}
}

// Root returns the root of the tree containing n.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Visit walks the visible subtree rooted at n. f is called once per node
// before its children (isPost false) and once after (isPost true).
func (n *Node) Visit(f func(n *Node, isPost bool)) {
	f(n, false)
	for _, c := range n.children {
		c.Visit(f)
	}
	f(n, true)
}

func (n *Node) updateLabel() {
	rule := n.typ.Label
	switch rule.Mode {
	case schema.LabelProp:
		if v := n.props[rule.Prop]; v != nil && v.String() != "" {
			n.label = v.String()
			return
		}
	case schema.LabelBasename:
		if v := n.props[rule.Prop]; v != nil && v.String() != "" {
			n.label = pathBase(v.String())
			return
		}
	case schema.LabelText:
		if t := strings.TrimSpace(n.text); t != "" {
			n.label = truncate(t, labelMax)
			return
		}
	}
	n.label = n.typ.Name
}

// pathBase returns the final segment of a path using either separator,
// since FOMOD sources are authored on Windows as often as not.
func pathBase(p string) string {
	p = strings.TrimRight(p, `/\`)
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
