package encode

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fomod-tools/fomod-designer/tree"
)

// Header is the XML declaration written at the top of both documents.
const Header = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

type EncState struct {
	indent string
	header bool
	colors *Colors
}

// Encode renders the subtree rooted at n to w.
func Encode(n *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  ", header: true}
	for _, opt := range opts {
		opt(es)
	}
	if es.header {
		if _, err := io.WriteString(w, Header); err != nil {
			return err
		}
	}
	if es.colors != nil {
		if err := encodeColored(n, w, es, 0); err != nil {
			return err
		}
	} else if err := n.WriteXML(w, es.indent); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Serialize flushes metadata over doc and writes both files into the
// package's fomod directory, creating it as needed.
func Serialize(doc *tree.Document, rootPath string, opts ...EncodeOption) error {
	doc.SaveMetadata()
	dir := filepath.Join(rootPath, tree.FomodDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, tree.InfoFile), doc.Info, opts); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, tree.ConfigFile), doc.Config, opts)
}

func writeFile(path string, root *tree.Node, opts []EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(root, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
