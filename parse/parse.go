package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fomod-tools/fomod-designer/debug"
	"github.com/fomod-tools/fomod-designer/schema"
	"github.com/fomod-tools/fomod-designer/tree"
)

var (
	// ErrRootTag marks a document whose root element is not the one the
	// registry expects.
	ErrRootTag = errors.New("wrong root element")
	// ErrNoRoot marks a document with no root element at all.
	ErrNoRoot = errors.New("no root element")
)

// Parse reads a FOMOD package rooted at rootPath and returns its
// Document: both trees constructed strictly against the registries,
// metadata-loaded and sorted.
func Parse(rootPath string, opts ...ParseOption) (*tree.Document, error) {
	po := newParseOpts(opts)
	infoPath := tree.PackageInfoPath(rootPath)
	configPath := tree.PackageConfigPath(rootPath)

	infoData, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, err
	}
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	info, err := parseRoot(infoData, po.info.Root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", infoPath, err)
	}
	config, err := parseRoot(configData, po.config.Root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	doc := &tree.Document{Info: info, Config: config}
	doc.LoadMetadata()
	doc.Sort()
	return doc, nil
}

// ParseInfo parses one info.xml document from raw bytes.
func ParseInfo(data []byte, opts ...ParseOption) (*tree.Node, error) {
	po := newParseOpts(opts)
	return parseDocument(data, po.info.Root)
}

// ParseConfig parses one ModuleConfig.xml document from raw bytes.
func ParseConfig(data []byte, opts ...ParseOption) (*tree.Node, error) {
	po := newParseOpts(opts)
	return parseDocument(data, po.config.Root)
}

func parseDocument(data []byte, root *schema.NodeType) (*tree.Node, error) {
	n, err := parseRoot(data, root)
	if err != nil {
		return nil, err
	}
	n.LoadMetadataTree()
	n.Sort()
	return n, nil
}

func parseRoot(data []byte, root *schema.NodeType) (*tree.Node, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			// declaration, doctype, leading comments, whitespace
			continue
		}
		if start.Name.Local != root.Tag {
			return nil, fmt.Errorf("%w: got <%s>, want <%s>", ErrRootTag, start.Name.Local, root.Tag)
		}
		if debug.Parse() {
			debug.Logf("parse: document root <%s>", start.Name.Local)
		}
		return tree.DecodeElement(d, start, root)
	}
}
