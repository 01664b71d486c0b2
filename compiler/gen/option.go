package gen

import (
	"errors"
	"log/slog"
	"maps"
	"regexp"
)

// Option configures code generation.
type Option func(*Config) error

// namespaceRe matches valid namespaces, e.g. "admin" or "admin/v2".
var namespaceRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*(/[a-z_][a-z0-9_]*)*$`)

// WithNamespace sets the namespace of the generated controllers and routes.
func WithNamespace(ns string) Option {
	return func(c *Config) error {
		if !namespaceRe.MatchString(ns) {
			return NewConfigError("Namespace", ns, "namespace must be a snake_case path such as admin or admin/v2")
		}
		c.Namespace = ns
		return nil
	}
}

// WithRoutes enables or disables the route insertion.
func WithRoutes(enabled bool) Option {
	return func(c *Config) error {
		c.Routes = enabled
		return nil
	}
}

// WithRoot sets the application root directory.
// All generated paths are relative to it.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Root", nil, "root directory cannot be empty")
		}
		c.Root = dir
		return nil
	}
}

// WithRoutesFile sets the routes file path, relative to the root.
func WithRoutesFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("RoutesFile", nil, "routes file cannot be empty")
		}
		c.RoutesFile = path
		return nil
	}
}

// WithSkipExisting keeps existing artifacts instead of overwriting them.
func WithSkipExisting(skip bool) Option {
	return func(c *Config) error {
		c.SkipExisting = skip
		return nil
	}
}

// WithCollectionLimit sets the number of attributes shown on index pages.
// Zero shows all attributes.
func WithCollectionLimit(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("CollectionLimit", n, "collection limit cannot be negative")
		}
		c.CollectionLimit = n
		return nil
	}
}

// WithFieldType maps a column type to a field descriptor name.
func WithFieldType(t ColumnType, name string) Option {
	return func(c *Config) error {
		if t == TypeNone || name == "" {
			return NewConfigError("FieldTypes", t, "column type and descriptor name cannot be empty")
		}
		if c.FieldTypes == nil {
			c.FieldTypes = make(map[ColumnType]string)
		}
		c.FieldTypes[t] = name
		return nil
	}
}

// WithFieldOptions merges options over the default options of a column type.
func WithFieldOptions(t ColumnType, opts ...FieldOption) Option {
	return func(c *Config) error {
		if t == TypeNone {
			return NewConfigError("FieldOptions", nil, "column type cannot be empty")
		}
		for _, o := range opts {
			if o.Name == "" {
				return NewConfigError("FieldOptions", t, "option name cannot be empty")
			}
		}
		if c.FieldOptions == nil {
			c.FieldOptions = make(map[ColumnType]FieldOptions)
		}
		c.FieldOptions[t] = c.FieldOptions[t].Merge(opts)
		return nil
	}
}

// WithWorkers sets the number of models rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithWriter sets the artifact writer.
func WithWriter(w Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return NewConfigError("Writer", nil, "writer cannot be nil")
		}
		c.Writer = w
		return nil
	}
}

// WithPatcher sets the text patcher used for the route insertion.
func WithPatcher(p Patcher) Option {
	return func(c *Config) error {
		if p == nil {
			return NewConfigError("Patcher", nil, "patcher cannot be nil")
		}
		c.Patcher = p
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clone returns a copy of the config. Option tables are copied.
func (c *Config) Clone() *Config {
	cc := *c
	cc.FieldTypes = maps.Clone(c.FieldTypes)
	cc.FieldOptions = maps.Clone(c.FieldOptions)
	return &cc
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
