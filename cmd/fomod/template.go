package main

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/fomod-tools/fomod-designer/schema"
	"github.com/fomod-tools/fomod-designer/tree"
)

// Template seeds a fresh package's metadata.
type Template struct {
	Name        string   `yaml:"name"`
	Author      string   `yaml:"author"`
	Version     string   `yaml:"version"`
	ID          string   `yaml:"id"`
	Website     string   `yaml:"website"`
	Description string   `yaml:"description"`
	Categories  []string `yaml:"categories"`
}

// DefaultTemplate names the package after its directory.
func DefaultTemplate(pkgDir string) *Template {
	return &Template{Name: filepath.Base(filepath.Clean(pkgDir))}
}

// LoadTemplate reads a YAML project template.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tmpl := &Template{}
	if err := yaml.Unmarshal(data, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// Document builds a skeleton Document from the template: populated
// info metadata plus a config with the module name set, ready for the
// editor to grow install logic under.
func (t *Template) Document() *tree.Document {
	doc := tree.NewDocument(schema.NewInfo(), schema.NewConfig())

	add := func(parent *tree.Node, tag, text string) *tree.Node {
		n := tree.New(parent.Type().ChildType(tag))
		if text != "" {
			n.Prop(schema.TextContent).Set(text)
		}
		parent.AddChild(n)
		return n
	}
	addIf := func(parent *tree.Node, tag, text string) {
		if text != "" {
			add(parent, tag, text)
		}
	}
	add(doc.Info, "Name", t.Name)
	addIf(doc.Info, "Author", t.Author)
	addIf(doc.Info, "Version", t.Version)
	addIf(doc.Info, "Id", t.ID)
	addIf(doc.Info, "Website", t.Website)
	addIf(doc.Info, "Description", t.Description)
	if len(t.Categories) > 0 {
		groups := add(doc.Info, "Groups", "")
		for _, cat := range t.Categories {
			add(groups, "element", cat)
		}
	}

	moduleName := tree.New(doc.Config.Type().ChildType("moduleName"))
	moduleName.Prop(schema.TextContent).Set(t.Name)
	doc.Config.AddChild(moduleName)

	doc.Sort()
	return doc
}
