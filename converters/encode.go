package converters

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported Encode formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ErrUnknownFormat is returned by Encode for an unsupported format name.
var ErrUnknownFormat = errors.New("converters: unknown format")

// Document is the encoded shape of a node/edge export.
type Document struct {
	Nodes []NodeRecord `yaml:"nodes" toml:"nodes"`
	Edges []EdgeRecord `yaml:"edges" toml:"edges"`
}

// Encode writes nodes and edges to w in the given format ("yaml" or "toml",
// case-insensitive).
func Encode(w io.Writer, format string, nodes []NodeRecord, edges []EdgeRecord) error {
	doc := Document{Nodes: nodes, Edges: edges}
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Encode(yaml): %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("Encode(toml): %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode(%q): %w", format, ErrUnknownFormat)
	}
}
