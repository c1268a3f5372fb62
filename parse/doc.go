// Package parse builds FOMOD document trees from file text.
//
// # Usage
//
//	// Parse a whole package (fomod/info.xml + fomod/ModuleConfig.xml)
//	doc, err := parse.Parse("/path/to/package")
//
//	// Parse one document from raw bytes
//	info, err := parse.ParseInfo(data)
//	config, err := parse.ParseConfig(data)
//
// Trees come back fully constructed against the schema registries,
// metadata-loaded and sorted. Elements the grammar does not admit are
// rejected, never silently kept; unknown attributes are ignored.
//
// # Related Packages
//
//   - github.com/fomod-tools/fomod-designer/tree - the document model
//   - github.com/fomod-tools/fomod-designer/encode - trees back to text
package parse
