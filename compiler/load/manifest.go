package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML document describing a set of models.
//
//	models:
//	  - name: Post
//	    associations:
//	      - {name: author, macro: belongs_to, class_name: User}
//	    columns:
//	      - {name: id, type: integer}
//	      - {name: status, type: integer, enum: [draft, published]}
type Manifest struct {
	Models []*Schema `yaml:"models"`
}

// UnmarshalYAML implements yaml.Unmarshaler for Macro. It accepts the
// snake_case macro names as well as their camelCase spellings.
func (m *Macro) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected association macro, got %v", node.Kind)
	}
	switch strings.ToLower(strings.ReplaceAll(node.Value, "_", "")) {
	case "belongsto":
		*m = BelongsTo
	case "hasone":
		*m = HasOne
	case "hasmany":
		*m = HasMany
	default:
		return fmt.Errorf("line %d: unknown association macro %q", node.Line, node.Value)
	}
	return nil
}

// ParseManifest decodes a YAML manifest and normalises its column types.
func ParseManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load: decode manifest: %w", err)
	}
	for _, s := range m.Models {
		for _, c := range s.Columns {
			c.Type = LogicalType(c.Type)
		}
	}
	return m, nil
}

// ManifestProvider serves the models declared in a YAML manifest file.
type ManifestProvider struct {
	*Static
	Path string
}

// NewManifestProvider reads the manifest at path.
func NewManifestProvider(path string) (*ManifestProvider, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read manifest: %w", err)
	}
	m, err := ParseManifest(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	st, err := NewStatic(m.Models...)
	if err != nil {
		return nil, fmt.Errorf("load: manifest %s: %w", path, err)
	}
	return &ManifestProvider{Static: st, Path: path}, nil
}

// WriteManifest encodes the schemas as a YAML manifest.
func WriteManifest(w io.Writer, schemas []*Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&Manifest{Models: schemas}); err != nil {
		return fmt.Errorf("load: encode manifest: %w", err)
	}
	return enc.Close()
}
