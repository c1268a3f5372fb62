package tree

import (
	"slices"
	"strings"
)

// defaultRank is the neutral user rank: seven zeros, so every rank
// string compares fixed-width.
const defaultRank = "0000000"

// SortKey returns the composite sibling ordering key: the type's schema
// rank joined with the node's user rank. Keys compare as strings, which
// is why both parts are fixed width.
func (n *Node) SortKey() string {
	return n.typ.SortRank() + "." + n.userRank
}

// UserRank returns the node's manual ordering rank.
func (n *Node) UserRank() string { return n.userRank }

// SetUserRank assigns a manual ordering rank, left-padded with zeros to
// the fixed width. Empty resets to the default. The rank takes effect on
// the next Sort and is persisted on the next SaveMetadata.
func (n *Node) SetUserRank(rank string) {
	n.userRank = padRank(rank)
}

// Sort stable-sorts the visible children of every node in the subtree
// rooted at n, ascending by SortKey. Sorting a sorted subtree is a
// no-op. Call after any operation that introduces nodes whose rank is
// unknown relative to their new siblings, notably un-hiding and bulk
// subtree insertion.
func (n *Node) Sort() {
	for _, c := range n.children {
		c.Sort()
	}
	if len(n.children) > 1 {
		slices.SortStableFunc(n.children, func(a, b *Node) int {
			return strings.Compare(a.SortKey(), b.SortKey())
		})
	}
}

func padRank(rank string) string {
	if rank == "" {
		return defaultRank
	}
	if len(rank) >= len(defaultRank) {
		return rank
	}
	return strings.Repeat("0", len(defaultRank)-len(rank)) + rank
}
