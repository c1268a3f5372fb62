package tree

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

// reparse serializes root and decodes it back against the same
// descriptor, metadata included, as a save/open cycle would.
func reparse(t *testing.T, root *Node) *Node {
	t.Helper()
	root.SaveMetadataTree()
	data := []byte(root.XMLString())
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			t.Fatalf("no root element in %q: %v", data, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		n, err := DecodeElement(d, start, root.Type())
		if err != nil {
			t.Fatalf("decode %q: %v", data, err)
		}
		n.LoadMetadataTree()
		n.Sort()
		return n
	}
}

func TestMetadataAbsentByDefault(t *testing.T) {
	config, plugins := newGroupTree(t)
	newPlugin(t, plugins, "Alpha")
	config.SaveMetadataTree()
	out := config.XMLString()
	if strings.Contains(out, MetadataSentinel) {
		t.Errorf("untouched tree grew a metadata comment:\n%s", out)
	}
}

func TestMetadataNameRoundTrip(t *testing.T) {
	config, plugins := newGroupTree(t)
	p := newPlugin(t, plugins, "Alpha")
	p.SetDisplayLabel("the good one")

	got := reparse(t, config)
	p2 := findPlugin(t, got, "Alpha")
	if p2.DisplayLabel() != "the good one" {
		t.Errorf("DisplayLabel() = %q after round trip", p2.DisplayLabel())
	}

	// clearing the override drops the comment again
	p2.SetDisplayLabel("")
	p2.SaveMetadata()
	if strings.Contains(p2.XMLString(), MetadataSentinel) {
		t.Error("metadata comment survives a cleared override")
	}
}

func TestMetadataUserRankRoundTrip(t *testing.T) {
	config, plugins := newGroupTree(t)
	a := newPlugin(t, plugins, "Alpha")
	newPlugin(t, plugins, "Beta")
	a.SetUserRank("9")

	got := reparse(t, config)
	a2 := findPlugin(t, got, "Alpha")
	if a2.UserRank() != "0000009" {
		t.Errorf("UserRank() = %q, want 0000009", a2.UserRank())
	}
	kids := visibleElems(findPlugins(t, got))
	// Beta keeps the default rank, so it now sorts before Alpha
	if last := kids[len(kids)-1]; last != a2 {
		t.Error("user-ranked plugin not sorted last after reload")
	}
}

func TestMetadataHiddenRoundTrip(t *testing.T) {
	config, plugins := newGroupTree(t)
	a := newPlugin(t, plugins, "Alpha")
	newPlugin(t, plugins, "Beta")
	a.SetHidden(true)

	got := reparse(t, config)
	plugins2 := findPlugins(t, got)
	if len(plugins2.HiddenChildren()) != 1 {
		t.Fatalf("hidden children = %d, want 1", len(plugins2.HiddenChildren()))
	}
	h := plugins2.HiddenChildren()[0]
	if !h.IsHidden() || h.Parent() != plugins2 {
		t.Error("reconstructed hidden node badly attached")
	}
	if h.Prop("name").String() != "Alpha" {
		t.Errorf("hidden plugin name = %q", h.Prop("name").String())
	}
	if len(h.Children()) != 2 {
		t.Errorf("hidden subtree children = %d, want 2", len(h.Children()))
	}

	h.SetHidden(false)
	plugins2.Sort()
	if strings.Contains(plugins2.XMLString(), MetadataSentinel) {
		// nothing else recorded, so the comment must be gone
		t.Error("metadata comment survives un-hide")
	}
}

func TestMetadataHostileLabel(t *testing.T) {
	// a label containing comment delimiters must not corrupt the document
	config, plugins := newGroupTree(t)
	p := newPlugin(t, plugins, "Alpha")
	label := `--> <!-- broken " label ~o`
	p.SetDisplayLabel(label)

	got := reparse(t, config)
	p2 := findPlugin(t, got, "Alpha")
	if p2.DisplayLabel() != label {
		t.Errorf("DisplayLabel() = %q, want %q", p2.DisplayLabel(), label)
	}
}

func TestMetadataHiddenNested(t *testing.T) {
	// hidden state inside an already hidden subtree survives the nesting
	config, plugins := newGroupTree(t)
	a := newPlugin(t, plugins, "Alpha")
	img := New(a.Type().ChildType("image"))
	if !a.AddChild(img) {
		t.Fatal("image refused under plugin")
	}
	img.SetHidden(true)
	a.SetHidden(true)

	got := reparse(t, config)
	plugins2 := findPlugins(t, got)
	if len(plugins2.HiddenChildren()) != 1 {
		t.Fatal("outer hidden node lost")
	}
	h := plugins2.HiddenChildren()[0]
	if len(h.HiddenChildren()) != 1 {
		t.Fatal("inner hidden node lost")
	}
	if h.HiddenChildren()[0].Type().Tag != "image" {
		t.Errorf("inner hidden tag = %q", h.HiddenChildren()[0].Type().Tag)
	}
}

func TestMetadataCorruptPayload(t *testing.T) {
	raw := `<plugins><!--` + MetadataSentinel + ` {not json--><plugin name="A"/></plugins>`
	_, plugins := newGroupTree(t)
	parent := plugins.Parent() // group admits plugins
	n, err := ParseSnippet([]byte(raw), parent)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n.LoadMetadataTree()
	if n.DisplayLabel() != "Plugins" {
		t.Errorf("corrupt metadata changed label to %q", n.DisplayLabel())
	}
	if len(n.HiddenChildren()) != 0 {
		t.Error("corrupt metadata grew hidden children")
	}
}

func TestMetadataFirstSentinelWins(t *testing.T) {
	// only the first sentinel is honored; a later malformed one must not
	// wipe the decoded state
	raw := `<plugin name="A">` +
		`<!--` + MetadataSentinel + ` {"name":"good"}-->` +
		`<!--` + MetadataSentinel + ` {broken-->` +
		`<description>d</description>` +
		`<typeDescriptor><type name="Optional"/></typeDescriptor>` +
		`</plugin>`
	_, plugins := newGroupTree(t)
	n, err := ParseSnippet([]byte(raw), plugins)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n.LoadMetadataTree()
	if n.DisplayLabel() != "good" {
		t.Errorf("DisplayLabel() = %q, want override from first sentinel", n.DisplayLabel())
	}
}

func TestLeafTypesNeverCarryMetadata(t *testing.T) {
	_, plugins := newGroupTree(t)
	p := newPlugin(t, plugins, "Alpha")
	img := New(p.Type().ChildType("image"))
	if !p.AddChild(img) {
		t.Fatal("image refused under plugin")
	}
	img.SetDisplayLabel("renamed")
	img.SaveMetadata()
	if len(img.Children()) != 0 {
		t.Error("childless, textless type acquired a metadata comment")
	}
}

func findPlugins(t *testing.T, config *Node) *Node {
	t.Helper()
	var found *Node
	config.Visit(func(n *Node, isPost bool) {
		if !isPost && n.Type().Tag == "plugins" {
			found = n
		}
	})
	if found == nil {
		t.Fatal("no <plugins> in tree")
	}
	return found
}

func findPlugin(t *testing.T, config *Node, name string) *Node {
	t.Helper()
	var found *Node
	config.Visit(func(n *Node, isPost bool) {
		if !isPost && n.Type().Tag == "plugin" && n.Prop("name").String() == name {
			found = n
		}
	})
	if found == nil {
		t.Fatalf("no plugin named %q in tree", name)
	}
	return found
}

func visibleElems(n *Node) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if !c.Type().IsComment() {
			out = append(out, c)
		}
	}
	return out
}
