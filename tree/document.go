package tree

import (
	"path/filepath"

	"github.com/fomod-tools/fomod-designer/debug"
	"github.com/fomod-tools/fomod-designer/schema"
)

// Standard on-disk layout of a FOMOD package: both documents live in a
// fomod/ directory under the package root.
const (
	FomodDir   = "fomod"
	InfoFile   = "info.xml"
	ConfigFile = "ModuleConfig.xml"
)

// PackageInfoPath returns the info.xml location under a package root.
func PackageInfoPath(root string) string {
	return filepath.Join(root, FomodDir, InfoFile)
}

// PackageConfigPath returns the ModuleConfig.xml location under a
// package root.
func PackageConfigPath(root string) string {
	return filepath.Join(root, FomodDir, ConfigFile)
}

// Document pairs the two root nodes of one FOMOD package: the <fomod>
// metadata tree from info.xml and the <config> install-logic tree from
// ModuleConfig.xml.
type Document struct {
	Info   *Node
	Config *Node
}

// NewDocument returns a Document with fresh, empty roots built from the
// given registries. Root attributes (the config schema pins) are
// materialized immediately; parsed documents instead keep whatever
// attributes the input carried.
func NewDocument(info, config *schema.Registry) *Document {
	d := &Document{
		Info:   New(info.Root),
		Config: New(config.Root),
	}
	d.Info.WriteAttribs()
	d.Config.WriteAttribs()
	return d
}

// Roots returns both roots, Info first.
func (d *Document) Roots() []*Node { return []*Node{d.Info, d.Config} }

// LoadMetadata loads the metadata side channel over both trees,
// children before parents.
func (d *Document) LoadMetadata() {
	for _, r := range d.Roots() {
		loadSubtree(r)
	}
}

// SaveMetadata flushes the metadata side channel over both trees,
// children before parents. Serializers must call this before rendering.
func (d *Document) SaveMetadata() {
	for _, r := range d.Roots() {
		saveSubtree(r)
	}
}

// Sort re-sorts every subtree of both documents.
func (d *Document) Sort() {
	if debug.Sort() {
		debug.Logf("tree: sorting both document trees")
	}
	d.Info.Sort()
	d.Config.Sort()
}

// Validate reports completeness violations across both documents.
func (d *Document) Validate() []Violation {
	out := Validate(d.Info)
	return append(out, Validate(d.Config)...)
}
