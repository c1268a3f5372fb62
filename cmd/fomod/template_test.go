package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fomod-tools/fomod-designer/tree"
)

func TestDefaultTemplate(t *testing.T) {
	tmpl := DefaultTemplate("/some/where/MyMod/")
	require.Equal(t, "MyMod", tmpl.Name)
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Example Mod
author: someone
version: 1.0.0
categories:
- Gameplay
- Immersion
`), 0o644))
	tmpl, err := LoadTemplate(path)
	require.NoError(t, err)
	require.Equal(t, "Example Mod", tmpl.Name)
	require.Equal(t, "someone", tmpl.Author)
	require.Len(t, tmpl.Categories, 2)
}

func TestTemplateDocument(t *testing.T) {
	tmpl := &Template{
		Name:       "Example Mod",
		Author:     "someone",
		Categories: []string{"Gameplay"},
	}
	doc := tmpl.Document()

	byTag := map[string]*tree.Node{}
	for _, c := range doc.Info.Children() {
		byTag[c.Type().Tag] = c
	}
	require.Equal(t, "Example Mod", byTag["Name"].Text())
	require.Equal(t, "someone", byTag["Author"].Text())
	require.NotContains(t, byTag, "Version")
	require.Equal(t, "Gameplay", byTag["Groups"].Children()[0].Text())

	require.Len(t, doc.Config.Children(), 1)
	require.Equal(t, "Example Mod", doc.Config.Children()[0].Text())
}
