package tree

import (
	"testing"

	"github.com/fomod-tools/fomod-designer/schema"
)

// mustAdd resolves tag among parent's allowed children, adds a fresh
// node of that type and fails the test if either step is refused.
func mustAdd(t *testing.T, parent *Node, tag string) *Node {
	t.Helper()
	ct := parent.Type().ChildType(tag)
	if ct == nil {
		t.Fatalf("<%s> does not admit <%s>", parent.Type().Tag, tag)
	}
	n := New(ct)
	if !parent.AddChild(n) {
		t.Fatalf("AddChild(<%s>) refused under <%s>", tag, parent.Type().Tag)
	}
	return n
}

// newPlugin builds a minimal complete plugin subtree under plugins.
func newPlugin(t *testing.T, plugins *Node, name string) *Node {
	t.Helper()
	plugin := mustAdd(t, plugins, "plugin")
	plugin.Prop("name").Set(name)
	plugin.WriteAttribs()
	mustAdd(t, plugin, "description")
	td := mustAdd(t, plugin, "typeDescriptor")
	mustAdd(t, td, "type")
	return plugin
}

// newGroupTree builds config -> installSteps -> installStep ->
// optionalFileGroups -> group -> plugins and returns the plugins node.
func newGroupTree(t *testing.T) (config, plugins *Node) {
	t.Helper()
	config = New(schema.NewConfig().Root)
	steps := mustAdd(t, config, "installSteps")
	step := mustAdd(t, steps, "installStep")
	groups := mustAdd(t, step, "optionalFileGroups")
	group := mustAdd(t, groups, "group")
	plugins = mustAdd(t, group, "plugins")
	return config, plugins
}
