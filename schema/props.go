package schema

import (
	"strconv"
	"strings"
)

// TextContent is the reserved pseudo-property key denoting an element's
// own text content rather than an attribute.
const TextContent = "<node_text>"

// PropKind identifies the validation/formatting policy of a Prop.
type PropKind int

const (
	TextKind PropKind = iota
	HTMLKind
	ComboKind
	IntKind
	FileKind
	FolderKind
	ColourKind
	FlagLabelKind
	FlagValueKind
)

// Prop describes one scalar of a node type: a single attribute, or the
// element text content when Key is TextContent. Prop is shared, immutable
// descriptor data; per-node state lives in Value.
type Prop struct {
	Key     string
	Name    string
	Kind    PropKind
	Default string

	// Choices constrains ComboKind values; the first entry doubles as
	// the default when Default is empty.
	Choices []string

	// Min and Max bound IntKind values.
	Min, Max int

	// Editable is false for machine-managed attributes such as the
	// schema-location pin on the config root.
	Editable bool
}

// Text returns a free-text property descriptor.
func Text(key, name string) *Prop {
	return &Prop{Key: key, Name: name, Kind: TextKind, Editable: true}
}

// Fixed returns a non-editable text property pinned to def.
func Fixed(key, name, def string) *Prop {
	return &Prop{Key: key, Name: name, Kind: TextKind, Default: def}
}

// HTML returns a rich-text property descriptor. The value is stored
// verbatim; the kind only signals editors to offer an HTML view.
func HTML(key, name string) *Prop {
	return &Prop{Key: key, Name: name, Kind: HTMLKind, Editable: true}
}

// Combo returns an enumerated property descriptor over choices.
func Combo(key, name string, choices ...string) *Prop {
	return &Prop{Key: key, Name: name, Kind: ComboKind, Choices: choices, Editable: true}
}

// Int returns a bounded integer property descriptor.
func Int(key, name string, min, max, def int) *Prop {
	return &Prop{
		Key: key, Name: name, Kind: IntKind,
		Min: min, Max: max, Default: strconv.Itoa(def),
		Editable: true,
	}
}

// File returns a file-path property descriptor.
func File(key, name string) *Prop {
	return &Prop{Key: key, Name: name, Kind: FileKind, Editable: true}
}

// Folder returns a folder-path property descriptor.
func Folder(key, name string) *Prop {
	return &Prop{Key: key, Name: name, Kind: FolderKind, Editable: true}
}

// Colour returns an RRGGBB colour property descriptor.
func Colour(key, name, def string) *Prop {
	return &Prop{Key: key, Name: name, Kind: ColourKind, Default: def, Editable: true}
}

// FlagLabel returns a condition-flag label property descriptor.
func FlagLabel(key, name string) *Prop {
	return &Prop{Key: key, Name: name, Kind: FlagLabelKind, Editable: true}
}

// FlagValue returns a condition-flag value property descriptor.
func FlagValue(key, name string) *Prop {
	return &Prop{Key: key, Name: name, Kind: FlagValueKind, Editable: true}
}

// New stamps out a Value holding p's default.
func (p *Prop) New() *Value {
	v := &Value{prop: p}
	v.raw = p.defaultRaw()
	return v
}

func (p *Prop) defaultRaw() string {
	if p.Default != "" {
		return p.Default
	}
	if p.Kind == ComboKind && len(p.Choices) > 0 {
		return p.Choices[0]
	}
	return ""
}

// Value is the typed holder for one property of one node. Set never
// fails: input a descriptor cannot represent is clamped or replaced by
// the default, per the descriptor's policy.
type Value struct {
	prop *Prop
	raw  string
}

// Prop returns the descriptor this value belongs to.
func (v *Value) Prop() *Prop { return v.prop }

// Set stores raw after applying the descriptor's policy.
func (v *Value) Set(raw string) {
	switch v.prop.Kind {
	case ComboKind:
		for _, c := range v.prop.Choices {
			if c == raw {
				v.raw = raw
				return
			}
		}
		v.raw = v.prop.defaultRaw()
	case IntKind:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			v.raw = v.prop.defaultRaw()
			return
		}
		if n < v.prop.Min {
			n = v.prop.Min
		}
		if n > v.prop.Max {
			n = v.prop.Max
		}
		v.raw = strconv.Itoa(n)
	case ColourKind:
		if isColour(raw) {
			v.raw = raw
			return
		}
		v.raw = v.prop.defaultRaw()
	default:
		v.raw = raw
	}
}

// String renders the value back to its raw serializable form.
func (v *Value) String() string { return v.raw }

// Int returns the value as an integer, or the descriptor default when it
// does not parse. Meaningful for IntKind only.
func (v *Value) Int() int {
	n, err := strconv.Atoi(v.raw)
	if err != nil {
		n, _ = strconv.Atoi(v.prop.defaultRaw())
	}
	return n
}

func isColour(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
