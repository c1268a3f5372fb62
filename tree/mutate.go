package tree

import "slices"

// CanAddChild reports whether child may be added to n right now: its
// type must be admitted by n's descriptor and adding it must not exceed
// the type's sibling cardinality. Comments are always admissible. Pure
// predicate, no side effects.
func (n *Node) CanAddChild(child *Node) bool {
	if child.typ.IsComment() {
		return true
	}
	if !n.typ.Allows(child.typ) {
		return false
	}
	if limit := child.typ.MaxInstances; limit > 0 {
		count := 0
		for _, c := range n.children {
			if c.typ == child.typ {
				count++
			}
		}
		if count >= limit {
			return false
		}
	}
	if limit := n.typ.MaxChildren; limit > 0 {
		count := 0
		for _, c := range n.children {
			if !c.typ.IsComment() {
				count++
			}
		}
		if count >= limit {
			return false
		}
	}
	return true
}

// AddChild appends child to n's visible children, materializes the
// child's attributes and loads any metadata the child's subtree carries.
// It is a no-op returning false when CanAddChild rejects the child.
func (n *Node) AddChild(child *Node) bool {
	if !n.CanAddChild(child) {
		return false
	}
	child.parent = n
	n.children = append(n.children, child)
	child.WriteAttribs()
	loadSubtree(child)
	return true
}

// RemoveChild removes child from n's visible children, detaching it.
// It reports whether child was present. The parent's metadata is not
// touched; callers needing persistence call SaveMetadata explicitly.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// SetHidden detaches the node from its parent's visible order (hide) or
// restores it (un-hide), persisting the parent's metadata either way.
// The node and its descendants are never destroyed; while hidden, the
// full serialized subtree is retained in the parent's metadata. Callers
// should re-sort the parent after un-hiding. Roots cannot be hidden,
// and neither can children of a type that never carries metadata: the
// snapshot would have nowhere to live and the node would vanish on
// serialize.
func (n *Node) SetHidden(hide bool) {
	p := n.parent
	if p == nil || hide == n.isHidden {
		return
	}
	if hide && len(p.typ.AllowedChildren) == 0 && !p.typ.HasText() {
		return
	}
	n.isHidden = hide
	if hide {
		if i := slices.Index(p.children, n); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
		p.hidden = append(p.hidden, n)
	} else {
		if i := slices.Index(p.hidden, n); i >= 0 {
			p.hidden = slices.Delete(p.hidden, i, i+1)
		}
		p.children = append(p.children, n)
	}
	p.SaveMetadata()
}
