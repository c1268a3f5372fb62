package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/fomod-tools/fomod-designer/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// encOpts enables colors when forced or when w is a terminal, in the
// spirit of not surprising pipes.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ValidateConfig struct {
	*MainConfig

	Validate *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='spaces per nesting level'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Info bool `cli:"name=i aliases=info desc='show info.xml instead of ModuleConfig.xml'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type NewConfig struct {
	*MainConfig

	Template string `cli:"name=t aliases=template desc='project template (yaml)'"`

	New *cli.Command
}
