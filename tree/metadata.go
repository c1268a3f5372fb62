package tree

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/fomod-tools/fomod-designer/debug"
	"github.com/fomod-tools/fomod-designer/schema"
)

// MetadataSentinel prefixes the comment that carries a node's hidden
// editor state. Comments without the prefix are ordinary user comments
// and the codec leaves them untouched.
const MetadataSentinel = "<designer.metadata.do.not.edit>"

// metadata is the encoded mapping stored after the sentinel. The JSON
// keys are part of the on-disk format.
type metadata struct {
	Name        string   `json:"name,omitempty"`
	UserSort    string   `json:"user_sort,omitempty"`
	HiddenNodes []string `json:"hidden_nodes,omitempty"`
}

func (m *metadata) empty() bool {
	return m.Name == "" && m.UserSort == "" && len(m.HiddenNodes) == 0
}

// IsMetadataComment reports whether n is a sentinel-marked metadata
// carrier rather than user content.
func IsMetadataComment(n *Node) bool {
	return n.typ.IsComment() && strings.HasPrefix(n.text, MetadataSentinel)
}

// LoadMetadata scans n's immediate children for the first sentinel
// comment and
// applies the decoded state: display-label override, user rank, and
// reconstruction of hidden subtrees from their stored snapshots. A
// malformed payload counts as no metadata; a snapshot that no longer
// re-parses is skipped while the rest of the metadata still applies.
// Idempotent: hidden subtrees are only reconstructed when none exist.
func (n *Node) LoadMetadata() {
	if n.typ.IsComment() {
		return
	}
	var meta metadata
	for _, c := range n.children {
		if !IsMetadataComment(c) {
			continue
		}
		// only the first sentinel is the carrier; later ones are noise
		payload := strings.TrimSpace(strings.TrimPrefix(c.text, MetadataSentinel))
		if err := json.Unmarshal([]byte(Unescape(payload)), &meta); err != nil {
			if debug.Meta() {
				debug.Logf("tree: dropping undecodable metadata on <%s>: %v", n.typ.Tag, err)
			}
			meta = metadata{}
		}
		break
	}
	if meta.Name != "" {
		n.nameOverride = meta.Name
	}
	if meta.UserSort != "" {
		n.userRank = padRank(meta.UserSort)
	}
	if len(n.hidden) == 0 && len(meta.HiddenNodes) > 0 {
		for _, snap := range meta.HiddenNodes {
			child, err := ParseSnippet([]byte(Unescape(snap)), n)
			if err != nil {
				if debug.Meta() {
					debug.Logf("tree: skipping corrupt hidden snapshot on <%s>: %v", n.typ.Tag, err)
				}
				continue
			}
			child.parent = n
			child.isHidden = true
			loadSubtree(child)
			n.hidden = append(n.hidden, child)
		}
		n.Sort()
	}
}

// SaveMetadata recomputes n's metadata mapping from current state and
// flushes it into the sentinel comment child: updated in place, removed
// when the mapping empties, or appended when first needed. Leaf types
// with neither children nor text content never acquire the comment.
// Hidden subtrees have their own metadata saved before being
// snapshotted, so nested state stays current.
func (n *Node) SaveMetadata() {
	if n.typ.IsComment() {
		return
	}
	var meta metadata
	meta.Name = n.nameOverride
	if n.userRank != defaultRank {
		meta.UserSort = padRank(n.userRank)
	}
	for _, h := range n.hidden {
		saveSubtree(h)
		meta.HiddenNodes = append(meta.HiddenNodes, Escape(h.XMLString()))
	}

	if len(n.typ.AllowedChildren) == 0 && !n.typ.HasText() {
		return
	}
	var existing *Node
	for _, c := range n.children {
		if IsMetadataComment(c) {
			existing = c
			break
		}
	}
	switch {
	case existing != nil && meta.empty():
		n.RemoveChild(existing)
	case existing != nil:
		existing.text = encodeMetadata(&meta)
		existing.props[schema.TextContent].Set(existing.text)
		existing.updateLabel()
	case !meta.empty():
		n.AddChild(NewComment(encodeMetadata(&meta)))
	}
}

// encodeMetadata renders the sentinel comment text. The payload is
// escaped as a whole so that no label or snapshot can smuggle a "--"
// into the enclosing comment.
func encodeMetadata(m *metadata) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.Encode(m)
	payload := strings.TrimRight(buf.String(), "\n")
	return MetadataSentinel + " " + Escape(payload)
}

// LoadMetadataTree runs LoadMetadata over the whole subtree rooted at
// n, children first.
func (n *Node) LoadMetadataTree() { loadSubtree(n) }

// SaveMetadataTree runs SaveMetadata over the whole subtree rooted at
// n, children first.
func (n *Node) SaveMetadataTree() { saveSubtree(n) }

// loadSubtree loads metadata over a whole subtree, children first.
func loadSubtree(n *Node) {
	for _, c := range n.children {
		loadSubtree(c)
	}
	n.LoadMetadata()
}

// saveSubtree saves metadata over a whole subtree, children first.
func saveSubtree(n *Node) {
	for _, c := range n.children {
		saveSubtree(c)
	}
	n.SaveMetadata()
}
