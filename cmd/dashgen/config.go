package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/dashgen/compiler/gen"
)

// defaultConfigFile is read when present and no --config flag is given.
const defaultConfigFile = ".dashgen.yml"

// fileConfig is the .dashgen.yml document.
//
//	namespace: admin
//	routes: true
//	schema:
//	  manifest: db/schema.yml
//	field_types:
//	  json: Text
//	field_options:
//	  float: {decimals: 3}
//	  enum:
//	    collection: !code '->(field) { {{ .Class }}.{{ pluralize .Attribute }}.values }'
type fileConfig struct {
	Namespace       string                  `yaml:"namespace"`
	Routes          *bool                   `yaml:"routes"`
	Root            string                  `yaml:"root"`
	RoutesFile      string                  `yaml:"routes_file"`
	SkipExisting    bool                    `yaml:"skip_existing"`
	CollectionLimit *int                    `yaml:"collection_limit"`
	Workers         int                     `yaml:"workers"`
	Schema          sourceConfig            `yaml:"schema"`
	FieldTypes      map[string]string       `yaml:"field_types"`
	FieldOptions    map[string]optionValues `yaml:"field_options"`
}

// sourceConfig selects the schema source. Exactly one source must be set.
type sourceConfig struct {
	Manifest string `yaml:"manifest"`
	GraphQL  string `yaml:"graphql"`
	Snapshot string `yaml:"snapshot"`
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	// Schema is the database schema inspected by the driver source.
	Schema string `yaml:"schema"`
}

// Custom YAML tags of option values.
const (
	tagCode   = "!code"
	tagSymbol = "!sym"
)

// optionValues is an ordered YAML mapping of field options.
type optionValues gen.FieldOptions

// UnmarshalYAML implements yaml.Unmarshaler. Mapping order is kept as
// the rendering order.
func (o *optionValues) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field options must be a mapping", node.Line)
	}
	opts := make(optionValues, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		value, err := optionValue(v)
		if err != nil {
			return err
		}
		opts = append(opts, gen.FieldOption{Name: k.Value, Value: value})
	}
	*o = opts
	return nil
}

func optionValue(node *yaml.Node) (any, error) {
	switch node.Tag {
	case tagCode:
		return gen.Code(node.Value), nil
	case tagSymbol:
		return gen.Symbol(node.Value), nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return v, nil
}

// readConfig reads the config file at path. A missing default file is
// not an error.
func readConfig(path string, explicit bool) (*fileConfig, error) {
	cfg := &fileConfig{}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// options returns the generator options of the file.
func (c *fileConfig) options() []gen.Option {
	var opts []gen.Option
	if c.Namespace != "" {
		opts = append(opts, gen.WithNamespace(c.Namespace))
	}
	if c.Routes != nil {
		opts = append(opts, gen.WithRoutes(*c.Routes))
	}
	if c.Root != "" {
		opts = append(opts, gen.WithRoot(c.Root))
	}
	if c.RoutesFile != "" {
		opts = append(opts, gen.WithRoutesFile(c.RoutesFile))
	}
	if c.SkipExisting {
		opts = append(opts, gen.WithSkipExisting(true))
	}
	if c.CollectionLimit != nil {
		opts = append(opts, gen.WithCollectionLimit(*c.CollectionLimit))
	}
	if c.Workers != 0 {
		opts = append(opts, gen.WithWorkers(c.Workers))
	}
	for t, name := range c.FieldTypes {
		opts = append(opts, gen.WithFieldType(gen.ColumnType(t), name))
	}
	for t, values := range c.FieldOptions {
		opts = append(opts, gen.WithFieldOptions(gen.ColumnType(t), values...))
	}
	return opts
}
