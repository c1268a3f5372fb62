package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fomod-tools/fomod-designer/schema"
	"github.com/fomod-tools/fomod-designer/tree"
)

const infoDoc = `<?xml version="1.0" encoding="utf-8"?>
<fomod>
  <Name>Example Mod</Name>
  <Author>someone</Author>
  <Version>1.2.0</Version>
  <Description>Does things.</Description>
  <Groups>
    <element>Gameplay</element>
    <element>Immersion</element>
  </Groups>
</fomod>
`

const configDoc = `<?xml version="1.0" encoding="utf-8"?>
<config xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="http://qconsulting.ca/fo3/ModConfig5.0.xsd">
  <moduleName>Example Mod</moduleName>
  <installSteps order="Explicit">
    <installStep name="Choose">
      <optionalFileGroups order="Explicit">
        <group name="Main" type="SelectExactlyOne">
          <plugins order="Explicit">
            <plugin name="Full">
              <description>Everything.</description>
              <files>
                <file source="full.esp"/>
              </files>
              <typeDescriptor>
                <type name="Recommended"/>
              </typeDescriptor>
            </plugin>
            <plugin name="Lite">
              <description>Less.</description>
              <typeDescriptor>
                <type name="Optional"/>
              </typeDescriptor>
            </plugin>
          </plugins>
        </group>
      </optionalFileGroups>
    </installStep>
  </installSteps>
</config>
`

func TestParseInfo(t *testing.T) {
	n, err := ParseInfo([]byte(infoDoc))
	require.NoError(t, err)
	require.Equal(t, "fomod", n.Type().Tag)

	byTag := map[string]*tree.Node{}
	for _, c := range n.Children() {
		byTag[c.Type().Tag] = c
	}
	require.Equal(t, "Example Mod", byTag["Name"].Text())
	require.Equal(t, "1.2.0", byTag["Version"].Text())
	require.Len(t, byTag["Groups"].Children(), 2)
	require.Equal(t, "Gameplay", byTag["Groups"].Children()[0].Text())

	// text-labelled types derive their label from content
	require.Equal(t, "Example Mod", byTag["Name"].DisplayLabel())
	require.Equal(t, "Author", byTag["Author"].DisplayLabel())
}

func TestParseConfig(t *testing.T) {
	n, err := ParseConfig([]byte(configDoc))
	require.NoError(t, err)
	require.Equal(t, "config", n.Type().Tag)

	var plugins []*tree.Node
	n.Visit(func(node *tree.Node, isPost bool) {
		if !isPost && node.Type().Tag == "plugin" {
			plugins = append(plugins, node)
		}
	})
	require.Len(t, plugins, 2)
	require.Equal(t, "Full", plugins[0].DisplayLabel())
	require.Equal(t, "Recommended",
		plugins[0].Children()[2].Children()[0].Prop("name").String())

	require.Empty(t, tree.Validate(n))
}

func TestParseWrongRoot(t *testing.T) {
	_, err := ParseInfo([]byte(configDoc))
	require.ErrorIs(t, err, ErrRootTag)
	_, err = ParseConfig([]byte(infoDoc))
	require.ErrorIs(t, err, ErrRootTag)
}

func TestParseNoRoot(t *testing.T) {
	_, err := ParseConfig([]byte("<?xml version=\"1.0\"?>\n<!-- nothing here -->\n"))
	require.ErrorIs(t, err, ErrNoRoot)
}

func TestParseUnknownTag(t *testing.T) {
	doc := `<config><moduleName>x</moduleName><surprise/></config>`
	_, err := ParseConfig([]byte(doc))
	require.Error(t, err)
	require.True(t, errors.Is(err, tree.ErrUnknownTag))
}

func TestParsePackage(t *testing.T) {
	dir := t.TempDir()
	fomodDir := filepath.Join(dir, tree.FomodDir)
	require.NoError(t, os.MkdirAll(fomodDir, 0o755))
	require.NoError(t, os.WriteFile(tree.PackageInfoPath(dir), []byte(infoDoc), 0o644))
	require.NoError(t, os.WriteFile(tree.PackageConfigPath(dir), []byte(configDoc), 0o644))

	doc, err := Parse(dir)
	require.NoError(t, err)
	require.Equal(t, "fomod", doc.Info.Type().Tag)
	require.Equal(t, "config", doc.Config.Type().Tag)
	require.Empty(t, doc.Validate())
}

func TestParsePackageMissingFile(t *testing.T) {
	_, err := Parse(t.TempDir())
	require.Error(t, err)
}

func TestParseCustomRegistry(t *testing.T) {
	leaf := &schema.NodeType{
		Tag: "leaf", Name: "Leaf",
		Properties: []*schema.Prop{schema.Text(schema.TextContent, "Leaf")},
	}
	root := &schema.NodeType{
		Tag: "root", Name: "Root",
		AllowedChildren: []*schema.NodeType{leaf},
	}
	n, err := ParseConfig([]byte(`<root><leaf>hi</leaf></root>`),
		WithConfigRegistry(&schema.Registry{Root: root}))
	require.NoError(t, err)
	require.Equal(t, "hi", n.Children()[0].Text())
}

func TestParseSortsOnLoad(t *testing.T) {
	doc := `<config>
  <installSteps><installStep name="s"><optionalFileGroups><group name="g" type="SelectAny"><plugins><plugin name="p"><description>d</description><typeDescriptor><type name="Optional"/></typeDescriptor></plugin></plugins></group></optionalFileGroups></installStep></installSteps>
  <moduleName>x</moduleName>
</config>`
	n, err := ParseConfig([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "moduleName", n.Children()[0].Type().Tag)
	require.Equal(t, "installSteps", n.Children()[1].Type().Tag)
}
