package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fomod-tools/fomod-designer/schema"
)

func tags(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Type().Tag
	}
	return out
}

func TestSortSchemaRank(t *testing.T) {
	config := New(schema.NewConfig().Root)
	// insertion order deliberately reversed from schema rank
	mustAdd(t, config, "installSteps")
	mustAdd(t, config, "requiredInstallFiles")
	mustAdd(t, config, "moduleDependencies")
	mustAdd(t, config, "moduleImage")
	mustAdd(t, config, "moduleName")

	config.Sort()
	want := []string{
		"moduleName", "moduleImage", "moduleDependencies",
		"requiredInstallFiles", "installSteps",
	}
	if diff := cmp.Diff(want, tags(config.Children())); diff != "" {
		t.Errorf("child order (-want +got):\n%s", diff)
	}
}

func TestSortUserRank(t *testing.T) {
	_, plugins := newGroupTree(t)
	a := newPlugin(t, plugins, "Alpha")
	b := newPlugin(t, plugins, "Beta")
	c := newPlugin(t, plugins, "Gamma")

	c.SetUserRank("1")
	a.SetUserRank("2")
	plugins.Sort()

	want := []*Node{b, c, a} // default 0000000, then 0000001, 0000002
	for i, n := range plugins.Children() {
		if n != want[i] {
			t.Fatalf("position %d holds %q, want %q",
				i, n.DisplayLabel(), want[i].DisplayLabel())
		}
	}
}

func TestSortStableAndIdempotent(t *testing.T) {
	_, plugins := newGroupTree(t)
	var order []*Node
	for _, name := range []string{"One", "Two", "Three", "Four"} {
		order = append(order, newPlugin(t, plugins, name))
	}
	plugins.Sort()
	plugins.Sort()
	for i, n := range plugins.Children() {
		if n != order[i] {
			t.Fatalf("equal-key order disturbed at %d", i)
		}
	}
}

func TestSortKeyWidth(t *testing.T) {
	tests := []struct {
		rank string
		want string
	}{
		{"", "0000000"},
		{"7", "0000007"},
		{"123", "0000123"},
		{"12345678", "12345678"},
	}
	for _, tt := range tests {
		if got := padRank(tt.rank); got != tt.want {
			t.Errorf("padRank(%q) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestSortKeyComposition(t *testing.T) {
	config := New(schema.NewConfig().Root)
	name := mustAdd(t, config, "moduleName")
	if got := name.SortKey(); got != "1.0000000" {
		t.Errorf("SortKey() = %q, want 1.0000000", got)
	}
	name.SetUserRank("42")
	if got := name.SortKey(); got != "1.0000042" {
		t.Errorf("SortKey() = %q, want 1.0000042", got)
	}
}
