package gen

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/syssam/dashgen/compiler/load"
)

// Generator generates the dashboard artifacts of models loaded from a
// schema provider.
//
// Example:
//
//	g, err := gen.NewGenerator(provider, gen.WithNamespace("admin"))
//	if err != nil {
//		return err
//	}
//	res, err := g.Generate(ctx, "Post")
type Generator struct {
	provider load.Provider
	cfg      *Config
	mapper   *Mapper
	writer   Writer
	patcher  Patcher
	runID    string
	log      *slog.Logger
}

// NewGenerator creates a generator reading models from p.
func NewGenerator(p load.Provider, opts ...Option) (*Generator, error) {
	if p == nil {
		return nil, NewConfigError("Provider", nil, "schema provider cannot be nil")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	log := cfg.logger().With("run", runID)
	g := &Generator{
		provider: p,
		cfg:      cfg,
		mapper:   NewMapper(cfg.FieldTypes, cfg.FieldOptions),
		writer:   cfg.Writer,
		patcher:  cfg.Patcher,
		runID:    runID,
		log:      log,
	}
	if g.writer == nil {
		g.writer = NewFileWriter(cfg.Root).WithSkipExisting(cfg.SkipExisting).WithLogger(log)
	}
	if g.patcher == nil {
		g.patcher = FilePatcher{}
	}
	return g, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() *Config { return g.cfg }

// RunID returns the id all log records of this generator are tagged with.
func (g *Generator) RunID() string { return g.runID }

// Provider returns the schema provider.
func (g *Generator) Provider() load.Provider { return g.provider }

// Fields resolves the field of every exposed attribute of s, in
// attribute order.
func (g *Generator) Fields(s *load.Schema) ([]Field, error) {
	class := NewNames(s.Name).ClassName
	attrs := Attributes(s)
	fields := make([]Field, 0, len(attrs))
	for _, attr := range attrs {
		d := g.mapper.Resolve(s, attr)
		expr, err := d.Expression(CodeContext{Class: class, Attribute: attr})
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{
			Attribute:  attr,
			Key:        AttrName(attr),
			Type:       d.Type,
			Expression: expr,
		})
	}
	return fields, nil
}

// Plan holds the rendered artifacts of one model. Nothing is written
// until the plan is applied.
type Plan struct {
	// Model is the model name as known by the provider.
	Model string
	// Names holds the naming variants of the model.
	Names Names
	// Fields holds the resolved dashboard fields.
	Fields []Field
	// Artifacts holds the rendered dashboard and controller.
	Artifacts []Artifact
	// Route is the route insertion, nil if routes are disabled.
	Route *RoutePatch
}

// Plan loads the model and renders its artifacts. An unknown model
// fails before anything is rendered or written.
func (g *Generator) Plan(ctx context.Context, model string) (*Plan, error) {
	s, err := g.provider.Load(ctx, model)
	if err != nil {
		return nil, err
	}
	fields, err := g.Fields(s)
	if err != nil {
		return nil, err
	}
	names := NewNames(s.Name)
	dashboard, err := execute(DashboardTemplate, &DashboardData{
		Names:      names,
		Fields:     fields,
		Collection: keys(CollectionAttributes(s, g.cfg.CollectionLimit)),
		Show:       keys(Attributes(s)),
		Form:       keys(FormAttributes(s)),
	})
	if err != nil {
		return nil, err
	}
	controller, err := execute(ControllerTemplate, &ControllerData{
		Names:  names,
		Module: ModuleName(g.cfg.Namespace),
	})
	if err != nil {
		return nil, err
	}
	p := &Plan{
		Model:  s.Name,
		Names:  names,
		Fields: fields,
		Artifacts: []Artifact{
			{Kind: "dashboard", Path: g.cfg.DashboardPath(names), Content: dashboard},
			{Kind: "controller", Path: g.cfg.ControllerPath(names), Content: controller},
		},
	}
	if g.cfg.Routes {
		p.Route = &RoutePatch{
			File:      g.cfg.RoutesFile,
			Namespace: g.cfg.Namespace,
			Resource:  names.PluralRouteName(),
		}
	}
	g.log.Debug("model resolved", "model", s.Name, "attributes", len(fields))
	return p, nil
}

// Result reports what applying a plan did.
type Result struct {
	// Written holds the paths of the written artifacts.
	Written []string
	// Skipped holds the paths of the artifacts kept as they were.
	Skipped []string
	// Routes holds the inserted route lines.
	Routes []string
}

// Merge appends the entries of other to r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Written = append(r.Written, other.Written...)
	r.Skipped = append(r.Skipped, other.Skipped...)
	r.Routes = append(r.Routes, other.Routes...)
}

// Apply writes the artifacts of the plan, then inserts its route.
func (g *Generator) Apply(ctx context.Context, p *Plan) (*Result, error) {
	res := &Result{}
	for _, a := range p.Artifacts {
		written, err := g.writer.Write(ctx, a)
		if err != nil {
			return res, err
		}
		if written {
			res.Written = append(res.Written, a.Path)
		} else {
			res.Skipped = append(res.Skipped, a.Path)
		}
	}
	if p.Route == nil {
		return res, nil
	}
	line, err := g.Route(ctx, p.Route)
	if err != nil {
		return res, err
	}
	res.Routes = append(res.Routes, line)
	return res, nil
}

// Route inserts the route line into the routes file and returns the
// inserted line. The routes file must exist and declare the namespace.
func (g *Generator) Route(ctx context.Context, r *RoutePatch) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := g.cfg.path(r.File)
	sentinel := r.Sentinel()
	src, err := os.ReadFile(path)
	if err != nil {
		return "", NewPatchError(path, sentinel.String(), err)
	}
	text := r.Text(src)
	if err := g.patcher.InsertAfter(path, sentinel, text); err != nil {
		return "", err
	}
	line := strings.TrimSpace(text)
	g.log.Info("insert route", "path", r.File, "line", line)
	return line, nil
}

// Generate renders and writes the artifacts of a model.
func (g *Generator) Generate(ctx context.Context, model string) (*Result, error) {
	p, err := g.Plan(ctx, model)
	if err != nil {
		return nil, err
	}
	return g.Apply(ctx, p)
}

// keys maps attributes to dashboard keys.
func keys(attrs []string) []string {
	return lo.Map(attrs, func(attr string, _ int) string { return AttrName(attr) })
}
