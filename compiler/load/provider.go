package load

import (
	"context"
	"fmt"
	"sort"

	"github.com/syssam/dashgen"
)

// Provider resolves model names into loaded schemas. It replaces a
// process-wide class registry: everything the generator knows about a
// model comes through this interface.
type Provider interface {
	// Load returns the schema of the named model, or a dashgen.NotFoundError.
	Load(ctx context.Context, name string) (*Schema, error)
	// Models returns the names of all known models, sorted.
	Models(ctx context.Context) ([]string, error)
}

// Static is an in-memory Provider.
type Static struct {
	schemas map[string]*Schema
}

// NewStatic returns a provider serving the given schemas.
// It fails if a schema is invalid or declared twice.
func NewStatic(schemas ...*Schema) (*Static, error) {
	p := &Static{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := p.schemas[s.Name]; ok {
			return nil, fmt.Errorf("load: schema %q redeclared", s.Name)
		}
		p.schemas[s.Name] = s
	}
	return p, nil
}

// MustStatic is like NewStatic but panics on error.
func MustStatic(schemas ...*Schema) *Static {
	p, err := NewStatic(schemas...)
	if err != nil {
		panic(err)
	}
	return p
}

// Load implements Provider.
func (p *Static) Load(_ context.Context, name string) (*Schema, error) {
	s, ok := p.schemas[name]
	if !ok {
		return nil, dashgen.NewNotFoundErrorWithName("model", name)
	}
	return s, nil
}

// Models implements Provider.
func (p *Static) Models(context.Context) ([]string, error) {
	names := make([]string, 0, len(p.schemas))
	for name := range p.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Schemas returns all schemas sorted by name.
func (p *Static) Schemas() []*Schema {
	names, _ := p.Models(context.Background())
	schemas := make([]*Schema, 0, len(names))
	for _, n := range names {
		schemas = append(schemas, p.schemas[n])
	}
	return schemas
}

// All returns every schema known by the provider, sorted by name.
func All(ctx context.Context, p Provider) ([]*Schema, error) {
	names, err := p.Models(ctx)
	if err != nil {
		return nil, err
	}
	schemas := make([]*Schema, 0, len(names))
	for _, n := range names {
		s, err := p.Load(ctx, n)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}
