// Package compiler provides the entry points of dashboard generation:
// a single model, every model of a schema, or a long running watch.
package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/dashgen/compiler/gen"
	"github.com/syssam/dashgen/compiler/load"
)

// Generate generates the dashboard, the controller and the route of
// one model.
func Generate(ctx context.Context, p load.Provider, model string, opts ...gen.Option) (*gen.Result, error) {
	g, err := gen.NewGenerator(p, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, model)
}

// Install generates every model known by the provider. Models are
// rendered in parallel; artifacts are written and routes inserted
// sequentially, in model order, once all of them rendered.
func Install(ctx context.Context, p load.Provider, opts ...gen.Option) (*gen.Result, error) {
	g, err := gen.NewGenerator(p, opts...)
	if err != nil {
		return nil, err
	}
	models, err := p.Models(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := plan(ctx, g, models)
	if err != nil {
		return nil, err
	}
	res := &gen.Result{}
	for _, pl := range plans {
		r, err := g.Apply(ctx, pl)
		res.Merge(r)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// plan renders the given models in parallel.
func plan(ctx context.Context, g *gen.Generator, models []string) ([]*gen.Plan, error) {
	plans := make([]*gen.Plan, len(models))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Config().Workers)
	for i, m := range models {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				pl, err := g.Plan(ctx, m)
				plans[i] = pl
				return err
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}
