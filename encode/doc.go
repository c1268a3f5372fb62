// Package encode renders FOMOD document trees back to XML text.
//
// # Usage
//
//	// Write a whole package back to disk
//	err := encode.Serialize(doc, "/path/to/package")
//
//	// Encode one tree with options
//	err := encode.Encode(doc.Config, w, encode.EncodeIndent(4))
//
// Serialize flushes the metadata side channel before rendering, so the
// written files carry every custom label, manual rank and hidden
// subtree. Attribute order follows the schema descriptors and values
// are emitted exactly as stored.
//
// # Related Packages
//
//   - github.com/fomod-tools/fomod-designer/tree - the document model
//   - github.com/fomod-tools/fomod-designer/parse - text back to trees
package encode
