package schema

// XSINamespace and ConfigSchemaLocation pin the config root's attributes
// to the values the consuming mod managers expect.
const (
	XSINamespace         = "http://www.w3.org/2001/XMLSchema-instance"
	ConfigSchemaLocation = "http://qconsulting.ca/fo3/ModConfig5.0.xsd"
)

var pluginTypes = []string{
	"Required", "Recommended", "Optional", "CouldBeUsable", "NotUsable",
}

func installProps(src *Prop) []*Prop {
	return []*Prop{
		src,
		Text("destination", "Destination"),
		Int("priority", "Priority", 0, 99, 0),
		Combo("alwaysInstall", "Always Install", "false", "true"),
		Combo("installIfUsable", "Install If Usable", "false", "true"),
	}
}

// NewConfig builds the registry for the ModuleConfig.xml grammar. The
// dependency set under moduleDependencies, dependencies and visible is
// self-recursive through the nested dependencies type, so those edges
// are wired after construction.
func NewConfig() *Registry {
	operator := Combo("operator", "Type", "And", "Or")
	order := Combo("order", "Order", "Ascending", "Descending", "Explicit")

	fileDep := &NodeType{
		Tag: "fileDependency", Name: "File Dependency",
		Properties: []*Prop{
			Text("file", "File"),
			Combo("state", "State", "Active", "Inactive", "Missing"),
		},
	}
	flagDep := &NodeType{
		Tag: "flagDependency", Name: "Flag Dependency",
		Properties: []*Prop{
			FlagLabel("flag", "Label"),
			FlagValue("value", "Value"),
		},
	}
	gameDep := &NodeType{
		Tag: "gameDependency", Name: "Game Dependency", MaxInstances: 1,
		Properties: []*Prop{Text("version", "Version")},
	}
	nestedDeps := &NodeType{
		Tag: "dependencies", Name: "Dependencies",
		Properties: []*Prop{operator},
	}
	depSet := []*NodeType{fileDep, flagDep, gameDep, nestedDeps}
	nestedDeps.AllowedChildren = depSet

	dependencies := &NodeType{
		Tag: "dependencies", Name: "Dependencies", MaxInstances: 1,
		Rank:            "1",
		AllowedChildren: depSet,
		Properties:      []*Prop{operator},
	}
	moduleDeps := &NodeType{
		Tag: "moduleDependencies", Name: "Mod Dependencies", MaxInstances: 1,
		Rank:            "3",
		AllowedChildren: depSet,
		Properties:      []*Prop{operator},
	}
	visible := &NodeType{
		Tag: "visible", Name: "Visibility", MaxInstances: 1,
		Rank:            "1",
		AllowedChildren: depSet,
		Properties:      []*Prop{operator},
	}

	file := &NodeType{
		Tag: "file", Name: "File",
		Properties: installProps(File("source", "Source")),
		Label:      LabelRule{Mode: LabelBasename, Prop: "source"},
	}
	folder := &NodeType{
		Tag: "folder", Name: "Folder",
		Properties: installProps(Folder("source", "Source")),
		Label:      LabelRule{Mode: LabelBasename, Prop: "source"},
	}
	reqFiles := &NodeType{
		Tag: "requiredInstallFiles", Name: "Mod Requirements", MaxInstances: 1,
		Rank:            "4",
		AllowedChildren: []*NodeType{file, folder},
	}

	moduleName := &NodeType{
		Tag: "moduleName", Name: "Name", MaxInstances: 1,
		Rank: "1",
		Properties: []*Prop{
			Text(TextContent, "Name"),
			Combo("position", "Position", "Left", "Right", "RightOfImage"),
			Colour("colour", "Colour", "000000"),
		},
	}
	moduleImage := &NodeType{
		Tag: "moduleImage", Name: "Image", MaxInstances: 1,
		Rank: "2",
		Properties: []*Prop{
			File("path", "Path"),
			Combo("showImage", "Show Image", "true", "false"),
			Combo("showFade", "Show Fade", "true", "false"),
			Int("height", "Height", -1, 9999, -1),
		},
	}

	description := &NodeType{
		Tag: "description", Name: "Description", MaxInstances: 1,
		Rank:       "1",
		Properties: []*Prop{HTML(TextContent, "Description")},
		Label:      LabelRule{Mode: LabelText},
	}
	image := &NodeType{
		Tag: "image", Name: "Image", MaxInstances: 1,
		Rank:       "2",
		Properties: []*Prop{File("path", "Path")},
	}
	flag := &NodeType{
		Tag: "flag", Name: "Flag",
		Properties: []*Prop{
			FlagLabel("name", "Label"),
			Text(TextContent, "Value"),
		},
		Label: LabelRule{Mode: LabelProp, Prop: "name"},
	}
	conditionFlags := &NodeType{
		Tag: "conditionFlags", Name: "Flags", MaxInstances: 1,
		Rank:             "3",
		AllowedChildren:  []*NodeType{flag},
		RequiredChildren: []*NodeType{flag},
	}

	pluginType := &NodeType{
		Tag: "type", Name: "Type", MaxInstances: 1,
		Rank:       "2",
		Properties: []*Prop{Combo("name", "Type", pluginTypes...)},
		Label:      LabelRule{Mode: LabelProp, Prop: "name"},
	}
	defaultType := &NodeType{
		Tag: "defaultType", Name: "Default Type", MaxInstances: 1,
		Rank:       "1",
		Properties: []*Prop{Combo("name", "Type", pluginTypes...)},
		Label:      LabelRule{Mode: LabelProp, Prop: "name"},
	}
	installPattern := &NodeType{
		Tag: "pattern", Name: "Pattern",
		AllowedChildren:  []*NodeType{pluginType, dependencies},
		RequiredChildren: []*NodeType{pluginType, dependencies},
		NameEditable:     true,
	}
	installPatterns := &NodeType{
		Tag: "patterns", Name: "Patterns", MaxInstances: 1,
		Rank:             "2",
		AllowedChildren:  []*NodeType{installPattern},
		RequiredChildren: []*NodeType{installPattern},
	}
	dependencyType := &NodeType{
		Tag: "dependencyType", Name: "Dependency Type", MaxInstances: 1,
		AllowedChildren:  []*NodeType{installPatterns, defaultType},
		RequiredChildren: []*NodeType{installPatterns, defaultType},
	}
	typeDescriptor := &NodeType{
		Tag: "typeDescriptor", Name: "Type Descriptor", MaxInstances: 1,
		Rank:            "4",
		MaxChildren:     1,
		AllowedChildren: []*NodeType{dependencyType, pluginType},
		EitherGroup:     []*NodeType{dependencyType, pluginType},
	}

	files := &NodeType{
		Tag: "files", Name: "Files", MaxInstances: 1,
		Rank:            "3",
		AllowedChildren: []*NodeType{file, folder},
	}
	plugin := &NodeType{
		Tag: "plugin", Name: "Plugin",
		AllowedChildren: []*NodeType{
			description, image, files, conditionFlags, typeDescriptor,
		},
		RequiredChildren: []*NodeType{description, typeDescriptor},
		Properties:       []*Prop{Text("name", "Name")},
		Label:            LabelRule{Mode: LabelProp, Prop: "name"},
	}
	plugins := &NodeType{
		Tag: "plugins", Name: "Plugins", MaxInstances: 1,
		AllowedChildren:  []*NodeType{plugin},
		RequiredChildren: []*NodeType{plugin},
		Properties:       []*Prop{order},
	}
	group := &NodeType{
		Tag: "group", Name: "Group",
		AllowedChildren:  []*NodeType{plugins},
		RequiredChildren: []*NodeType{plugins},
		Properties: []*Prop{
			Text("name", "Name"),
			Combo("type", "Type",
				"SelectAny", "SelectAtMostOne", "SelectExactlyOne",
				"SelectAll", "SelectAtLeastOne"),
		},
		Label: LabelRule{Mode: LabelProp, Prop: "name"},
	}
	optGroups := &NodeType{
		Tag: "optionalFileGroups", Name: "Option Group", MaxInstances: 1,
		Rank:             "2",
		AllowedChildren:  []*NodeType{group},
		RequiredChildren: []*NodeType{group},
		Properties:       []*Prop{order},
	}
	installStep := &NodeType{
		Tag: "installStep", Name: "Install Step",
		AllowedChildren:  []*NodeType{visible, optGroups},
		RequiredChildren: []*NodeType{optGroups},
		Properties:       []*Prop{Text("name", "Name")},
		Label:            LabelRule{Mode: LabelProp, Prop: "name"},
	}
	installSteps := &NodeType{
		Tag: "installSteps", Name: "Installation Steps", MaxInstances: 1,
		Rank:             "5",
		AllowedChildren:  []*NodeType{installStep},
		RequiredChildren: []*NodeType{installStep},
		Properties:       []*Prop{order},
	}

	condPattern := &NodeType{
		Tag: "pattern", Name: "Pattern",
		AllowedChildren:  []*NodeType{files, dependencies},
		RequiredChildren: []*NodeType{files, dependencies},
		NameEditable:     true,
	}
	condPatterns := &NodeType{
		Tag: "patterns", Name: "Patterns", MaxInstances: 1,
		AllowedChildren:  []*NodeType{condPattern},
		RequiredChildren: []*NodeType{condPattern},
	}
	condInstall := &NodeType{
		Tag: "conditionalFileInstalls", Name: "Conditional Installation", MaxInstances: 1,
		Rank:             "6",
		AllowedChildren:  []*NodeType{condPatterns},
		RequiredChildren: []*NodeType{condPatterns},
	}

	root := &NodeType{
		Tag: "config", Name: "Config", MaxInstances: 1,
		AllowedChildren: []*NodeType{
			moduleName, moduleImage, moduleDeps,
			installSteps, reqFiles, condInstall,
		},
		RequiredChildren: []*NodeType{moduleName},
		AtLeastOneGroup: []*NodeType{
			moduleDeps, installSteps, reqFiles, condInstall,
		},
		Properties: []*Prop{
			Fixed("xmlns:xsi", "XSI Namespace", XSINamespace),
			Fixed("xsi:noNamespaceSchemaLocation", "Schema Location", ConfigSchemaLocation),
		},
	}
	return &Registry{Root: root}
}
