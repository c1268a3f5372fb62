package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fomod-tools/fomod-designer/encode"
	"github.com/fomod-tools/fomod-designer/parse"
	"github.com/fomod-tools/fomod-designer/tree"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: validate takes one package dir", cli.ErrUsage)
	}
	doc, err := parse.Parse(args[0])
	if err != nil {
		return err
	}
	violations := doc.Validate()
	if len(violations) == 0 {
		fmt.Fprintln(cc.Out, "ok")
		return nil
	}
	errLabel := "error:"
	if cfg.Color || isTTY(cc.Out) {
		errLabel = color.RedString("error:")
	}
	for _, v := range violations {
		fmt.Fprintf(cc.Out, "%s %s\n", errLabel, v)
	}
	return fmt.Errorf("%d unmet constraints", len(violations))
}

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: fmt takes one package dir", cli.ErrUsage)
	}
	doc, err := parse.Parse(args[0])
	if err != nil {
		return err
	}
	doc.Sort()
	return encode.Serialize(doc, args[0], encode.EncodeIndent(cfg.Indent))
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: view takes one package dir", cli.ErrUsage)
	}
	doc, err := parse.Parse(args[0])
	if err != nil {
		return err
	}
	doc.SaveMetadata()
	root := doc.Config
	if cfg.Info {
		root = doc.Info
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two package dirs", cli.ErrUsage)
	}
	a, err := canonical(args[0])
	if err != nil {
		return err
	}
	b, err := canonical(args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.Color || isTTY(cc.Out) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(cc.Out, "%s %s\n", prefix, line)
		}
	}
	return nil
}

// canonical renders a package's two documents, sorted and metadata
// flushed, as one comparable string.
func canonical(pkg string) (string, error) {
	doc, err := parse.Parse(pkg)
	if err != nil {
		return "", err
	}
	doc.Sort()
	doc.SaveMetadata()
	var sb strings.Builder
	for _, root := range doc.Roots() {
		if err := encode.Encode(root, &sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func newRun(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: new takes one package dir", cli.ErrUsage)
	}
	tmpl := DefaultTemplate(args[0])
	if cfg.Template != "" {
		tmpl, err = LoadTemplate(cfg.Template)
		if err != nil {
			return err
		}
	}
	doc := tmpl.Document()
	if _, err := os.Stat(tree.PackageConfigPath(args[0])); err == nil {
		return fmt.Errorf("%s already has a fomod package", args[0])
	}
	return encode.Serialize(doc, args[0])
}

func isTTY(w any) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
