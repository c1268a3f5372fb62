package tree

import (
	"fmt"
	"strings"

	"github.com/fomod-tools/fomod-designer/schema"
)

// ViolationKind classifies a completeness violation.
type ViolationKind int

const (
	// MissingRequired: a required child type has no instance.
	MissingRequired ViolationKind = iota
	// MissingEither: no member of the either-group is present.
	MissingEither
	// ConflictEither: more than one member of the either-group is present.
	ConflictEither
	// MissingAtLeastOne: no member of the at-least-one group is present.
	MissingAtLeastOne
)

// Violation reports one unmet completeness constraint on one node.
type Violation struct {
	Node  *Node
	Kind  ViolationKind
	Types []*schema.NodeType
}

func (v Violation) String() string {
	names := make([]string, len(v.Types))
	for i, t := range v.Types {
		names[i] = "<" + t.Tag + ">"
	}
	tag := v.Node.Type().Tag
	switch v.Kind {
	case MissingRequired:
		return fmt.Sprintf("<%s> is missing required child %s", tag, names[0])
	case MissingEither:
		return fmt.Sprintf("<%s> needs exactly one of %s", tag, strings.Join(names, ", "))
	case ConflictEither:
		return fmt.Sprintf("<%s> has more than one of %s", tag, strings.Join(names, ", "))
	case MissingAtLeastOne:
		return fmt.Sprintf("<%s> needs at least one of %s", tag, strings.Join(names, ", "))
	}
	return fmt.Sprintf("<%s> violates an unknown constraint", tag)
}

// Validate reports every unmet required-children, either-group and
// at-least-one constraint in the visible subtree rooted at n. It is a
// read-only advisory check: interactive edits legitimately pass through
// incomplete states, so completeness is only consulted on demand,
// typically before serialization.
func Validate(n *Node) []Violation {
	var out []Violation
	n.Visit(func(node *Node, isPost bool) {
		if isPost || node.typ.IsComment() {
			return
		}
		out = append(out, validateNode(node)...)
	})
	return out
}

func validateNode(n *Node) []Violation {
	var out []Violation
	for _, req := range n.typ.RequiredChildren {
		if countType(n, req) == 0 {
			out = append(out, Violation{Node: n, Kind: MissingRequired, Types: []*schema.NodeType{req}})
		}
	}
	if g := n.typ.EitherGroup; len(g) > 0 {
		present := 0
		for _, t := range g {
			if countType(n, t) > 0 {
				present++
			}
		}
		switch {
		case present == 0:
			out = append(out, Violation{Node: n, Kind: MissingEither, Types: g})
		case present > 1:
			out = append(out, Violation{Node: n, Kind: ConflictEither, Types: g})
		}
	}
	if g := n.typ.AtLeastOneGroup; len(g) > 0 {
		present := 0
		for _, t := range g {
			present += countType(n, t)
		}
		if present == 0 {
			out = append(out, Violation{Node: n, Kind: MissingAtLeastOne, Types: g})
		}
	}
	return out
}

func countType(n *Node, t *schema.NodeType) int {
	count := 0
	for _, c := range n.children {
		if c.typ == t {
			count++
		}
	}
	return count
}
