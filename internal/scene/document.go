package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/go-boxflow/internal/stylesheet"
	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported scene file %q: want .toml, .yaml or .yml", path)
	}
}

// Document is a decoded scene file.
type Document struct {
	Window Window           `toml:"window" yaml:"window"`
	Styles stylesheet.Sheet `toml:"styles" yaml:"styles"`
	Nodes  []Node           `toml:"nodes" yaml:"nodes"`
}

// Window describes the top-level window. Width and height are shorthands
// for pixel width and height styles.
type Window struct {
	Title  string         `toml:"title" yaml:"title"`
	Width  int            `toml:"width" yaml:"width"`
	Height int            `toml:"height" yaml:"height"`
	Class  string         `toml:"class" yaml:"class"`
	Style  map[string]any `toml:"style" yaml:"style"`
}

// Node describes one button, text or panel. Only panels have children.
type Node struct {
	ID       string         `toml:"id" yaml:"id"`
	Kind     string         `toml:"kind" yaml:"kind"`
	Text     string         `toml:"text" yaml:"text"`
	Class    string         `toml:"class" yaml:"class"`
	Style    map[string]any `toml:"style" yaml:"style"`
	Children []Node         `toml:"children" yaml:"children"`
}

// Load reads and decodes a scene file.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses scene data. Unknown top-level or node fields are errors so
// typos do not silently drop content.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown field %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported scene format %q", format)
	}
	return &doc, nil
}
