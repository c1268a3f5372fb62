// Package tree provides the mutable document model for FOMOD installer
// descriptors.
//
// # Overview
//
// A Document is a pair of Node trees, one per installer file. Every Node
// is bound at construction to a schema.NodeType descriptor and owns its
// children exclusively; parent references are non-owning and exist only
// for navigation. All mutation goes through Node methods: AddChild,
// RemoveChild, SetHidden, WriteAttribs. Structural rejections are
// reported as boolean results, never as errors, so an interactive caller
// can surface them without risking tree invariants.
//
// # Metadata
//
// Editor-only state with no place in the public FOMOD schema (custom
// display labels, manual sibling ordering, temporarily hidden subtrees)
// is persisted out of band, inside a sentinel-marked XML comment child.
// LoadMetadata and SaveMetadata are the codec for that side channel; both
// are idempotent and neither ever fails on malformed payloads. Hidden
// subtrees are stored as escaped XML snapshots so that the enclosing
// comment stays well formed; see Escape.
//
// # Ordering
//
// Sibling order is significant and equals document order. Sort reorders
// every subtree by the composite key "schema rank" + "." + "user rank",
// compared as fixed-width strings. Mutations never re-sort implicitly;
// callers re-sort after operations that introduce nodes of unknown
// relative position, such as unhiding.
//
// # Thread Safety
//
// Nodes and Documents are not safe for concurrent use. Serialize all
// access to one Document. The schema registries are read-only and may be
// shared freely.
//
// # Related Packages
//
//   - github.com/fomod-tools/fomod-designer/schema - node-type descriptors
//   - github.com/fomod-tools/fomod-designer/parse - files to Documents
//   - github.com/fomod-tools/fomod-designer/encode - Documents to files
package tree
