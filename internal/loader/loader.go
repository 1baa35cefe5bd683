// Package loader reads a simplicial complex from a file on disk.
//
// The format is chosen by extension: .yaml and .yml are decoded with yaml.v3,
// .toml with BurntSushi/toml, and anything else is read as face-list notation.
// A YAML or TOML document may name a builder fixture instead of (or in
// addition to) listing faces; fixture faces come first.
package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/asctree/builder"
	"github.com/katalvlaran/asctree/core"
	"github.com/katalvlaran/asctree/notation"
)

// ErrUnknownFixture is returned when a document names a fixture that the
// builder package does not ship.
var ErrUnknownFixture = errors.New("loader: unknown fixture")

// Format selects a decoder.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatNotation Format = "notation"
)

// Document is the on-disk shape of a YAML or TOML complex file.
//
//	fixture: mammal
//	mirror: true
//	faces:
//	  - [Cow, Rabbit]
type Document struct {
	Fixture string     `yaml:"fixture,omitempty" toml:"fixture,omitempty"`
	Mirror  bool       `yaml:"mirror,omitempty" toml:"mirror,omitempty"`
	Faces   [][]string `yaml:"faces,omitempty" toml:"faces,omitempty"`
}

// Complex is a loaded face list plus the tree options it asks for.
type Complex struct {
	Mirror bool
	Faces  []core.Face
}

// Tree builds the face-path tree for c.
func (c *Complex) Tree(bopts ...builder.BuilderOption) (*core.Tree, error) {
	var topts []core.TreeOption
	if c.Mirror {
		topts = append(topts, core.WithVertexMirror())
	}

	return builder.BuildTree(topts, bopts, builder.Faces(c.Faces...))
}

// FormatOf maps a file name to its decoder.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatNotation
	}
}

// Load reads the complex stored at path.
func Load(path string) (*Complex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Read(f, path, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loader: %s", path)
	}

	return c, nil
}

// Read decodes a complex from r. name is only used in error messages.
func Read(r io.Reader, name string, format Format) (*Complex, error) {
	switch format {
	case FormatNotation:
		faces, err := notation.ParseReader(name, r)
		if err != nil {
			return nil, err
		}
		return &Complex{Faces: faces}, nil
	case FormatYAML:
		doc := new(Document)
		if err := yaml.NewDecoder(r).Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return FromDocument(doc)
	case FormatTOML:
		doc := new(Document)
		if _, err := toml.NewDecoder(r).Decode(doc); err != nil {
			return nil, err
		}
		return FromDocument(doc)
	default:
		return nil, errors.Errorf("loader: unsupported format %q", format)
	}
}

// FromDocument resolves the fixture (if any) and validates every face.
func FromDocument(doc *Document) (*Complex, error) {
	c := &Complex{Mirror: doc.Mirror}
	if doc.Fixture != "" {
		faces, ok := builder.Fixture(doc.Fixture)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownFixture, "%q (known: %s)",
				doc.Fixture, strings.Join(builder.FixtureNames(), ", "))
		}
		c.Faces = append(c.Faces, faces...)
	}
	for i, labels := range doc.Faces {
		if len(labels) == 0 {
			return nil, errors.Wrapf(core.ErrInvalidFace, "face %d", i)
		}
		for _, l := range labels {
			if l == "" {
				return nil, errors.Wrapf(core.ErrEmptyLabel, "face %d", i)
			}
		}
		c.Faces = append(c.Faces, core.Face(labels).Clone())
	}

	return c, nil
}
