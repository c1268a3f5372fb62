package schema

import "slices"

// LabelMode selects how a node derives its display label from its current
// values.
type LabelMode int

const (
	// LabelDefault uses the descriptor's display name.
	LabelDefault LabelMode = iota
	// LabelProp uses the value of the attribute named by LabelRule.Prop
	// when non-empty.
	LabelProp
	// LabelBasename uses the final path segment of the attribute named by
	// LabelRule.Prop when non-empty.
	LabelBasename
	// LabelText uses the element's text content when non-empty.
	LabelText
)

// LabelRule pairs a LabelMode with the attribute it reads, if any.
type LabelRule struct {
	Mode LabelMode
	Prop string
}

// NodeType is the immutable descriptor for one element tag of the FOMOD
// grammar. Descriptors are pure data; all behavior lives in the tree
// package.
type NodeType struct {
	// Tag is the grammar element name and the descriptor's identity
	// within its registry. Tags are only unique per parent context:
	// "pattern", "patterns", "type" and "dependencies" each occur twice
	// in the config grammar with different child sets.
	Tag string

	// Name is the default display label for nodes of this type.
	Name string

	// MaxInstances bounds the number of same-typed siblings under one
	// parent. 0 means unbounded.
	MaxInstances int

	// Rank fixes this type's position among its schema-defined siblings.
	// Ranks are compared as strings, composed with the per-node user
	// rank into the sibling sort key. Empty means "0".
	Rank string

	// MaxChildren caps the total number of non-comment children,
	// regardless of type. 0 means no cap. Only typeDescriptor uses it,
	// to enforce its either-group at edit time.
	MaxChildren int

	AllowedChildren  []*NodeType
	RequiredChildren []*NodeType
	EitherGroup      []*NodeType
	AtLeastOneGroup  []*NodeType

	// Properties maps, in serialization order, attribute names (plus at
	// most one TextContent entry) to their scalar descriptors.
	Properties []*Prop

	// NameEditable reports whether a user may override the display label.
	NameEditable bool

	// Label selects the display-label derivation for this type.
	Label LabelRule

	comment bool
}

// Comment is the pseudo-type bound to XML comment nodes. Comments are
// admitted under every element and are exempt from cardinality checks.
var Comment = &NodeType{
	Tag:        "<!---->",
	Name:       "Comment",
	Rank:       "0",
	Properties: []*Prop{Text(TextContent, "Comment")},
	Label:      LabelRule{Mode: LabelText},
	comment:    true,
}

// IsComment reports whether t is the comment pseudo-type.
func (t *NodeType) IsComment() bool { return t.comment }

// Allows reports whether child's type may appear under t. Comments are
// always allowed.
func (t *NodeType) Allows(child *NodeType) bool {
	if child.comment {
		return true
	}
	return slices.Contains(t.AllowedChildren, child)
}

// ChildType resolves a child element tag in the context of t. It returns
// nil for tags t does not admit.
func (t *NodeType) ChildType(tag string) *NodeType {
	for _, c := range t.AllowedChildren {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Prop returns the property descriptor for key, or nil.
func (t *NodeType) Prop(key string) *Prop {
	for _, p := range t.Properties {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// HasText reports whether t carries a text-content property.
func (t *NodeType) HasText() bool { return t.Prop(TextContent) != nil }

// SortRank returns the schema rank, normalizing the empty default.
func (t *NodeType) SortRank() string {
	if t.Rank == "" {
		return "0"
	}
	return t.Rank
}

// Registry is one of the two FOMOD grammars, identified by its root
// descriptor. Registries are read-only and safely shared.
type Registry struct {
	Root *NodeType
}
