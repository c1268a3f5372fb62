package schema

// NewInfo builds the registry for the info.xml grammar: flat package
// metadata under a single <fomod> root.
func NewInfo() *Registry {
	name := &NodeType{
		Tag: "Name", Name: "Name", MaxInstances: 1,
		Properties: []*Prop{Text(TextContent, "Name")},
		Label:      LabelRule{Mode: LabelText},
	}
	author := &NodeType{
		Tag: "Author", Name: "Author", MaxInstances: 1,
		Properties: []*Prop{Text(TextContent, "Author")},
	}
	version := &NodeType{
		Tag: "Version", Name: "Version", MaxInstances: 1,
		Properties: []*Prop{Text(TextContent, "Version")},
	}
	id := &NodeType{
		Tag: "Id", Name: "ID", MaxInstances: 1,
		Properties: []*Prop{Text(TextContent, "ID")},
	}
	website := &NodeType{
		Tag: "Website", Name: "Website", MaxInstances: 1,
		Properties: []*Prop{Text(TextContent, "Website")},
	}
	description := &NodeType{
		Tag: "Description", Name: "Description", MaxInstances: 1,
		Properties: []*Prop{Text(TextContent, "Description")},
		Label:      LabelRule{Mode: LabelText},
	}
	element := &NodeType{
		Tag: "element", Name: "Category",
		Properties: []*Prop{Text(TextContent, "Category")},
		Label:      LabelRule{Mode: LabelText},
	}
	groups := &NodeType{
		Tag: "Groups", Name: "Categories Group", MaxInstances: 1,
		AllowedChildren: []*NodeType{element},
	}

	root := &NodeType{
		Tag: "fomod", Name: "Info", MaxInstances: 1,
		AllowedChildren: []*NodeType{
			name, author, description, id, groups, version, website,
		},
	}
	return &Registry{Root: root}
}
