// Package schema holds the static node-type registries for the two FOMOD
// installer documents, info.xml and ModuleConfig.xml.
//
// # Overview
//
// The FOMOD grammar is fixed: each element tag has a descriptor giving its
// cardinality among siblings, the set of child types it admits, which of
// those are required, and how its attributes and text content are typed.
// The registries are the single source of truth for every validation and
// sort decision made on a document tree; no type information is ever
// inferred from the runtime tree itself.
//
// Two disjoint grammars exist, one per file:
//
//	info := schema.NewInfo()     // <fomod> metadata document
//	config := schema.NewConfig() // <config> install-logic document
//
// Both constructors return fresh, fully wired descriptor graphs. A
// registry is immutable after construction and safe to share between any
// number of documents.
//
// # Properties
//
// Each descriptor carries an ordered list of Prop descriptors, one per
// attribute plus optionally one for the element's own text content (keyed
// by TextContent). A Prop stamps out Value instances that validate and
// format exactly one scalar: free text, an enumerated choice, a bounded
// integer, a filesystem path, an RGB colour, or a condition-flag
// label/value. Value.Set never fails; out-of-range input is clamped or
// replaced by the descriptor's default.
//
// # Related Packages
//
//   - github.com/fomod-tools/fomod-designer/tree - document nodes bound to descriptors
//   - github.com/fomod-tools/fomod-designer/parse - builds trees against the registries
package schema
