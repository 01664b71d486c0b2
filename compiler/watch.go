package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/dashgen/compiler/gen"
	"github.com/syssam/dashgen/compiler/load"
)

// DefaultDebounce is the quiet period after a change before regenerating.
const DefaultDebounce = 100 * time.Millisecond

// OpenFunc opens a provider for a schema file.
type OpenFunc func(path string) (load.Provider, error)

// Watcher regenerates dashboards and controllers when a schema file
// changes. Routes are never inserted by a watcher.
type Watcher struct {
	// Path is the watched schema file.
	Path string
	// Open loads the schema file.
	Open OpenFunc
	// Models are the regenerated models. Empty means all models.
	Models []string
	// Options configure the generator.
	Options []gen.Option
	// Debounce is the quiet period after a change. Defaults to DefaultDebounce.
	Debounce time.Duration
	// OnGenerate is called after every generation, if set.
	OnGenerate func(*gen.Result, error)
}

// Watch generates the models once, then regenerates them on every
// change of the schema file until ctx is done.
func Watch(ctx context.Context, path string, open OpenFunc, models []string, opts ...gen.Option) error {
	w := &Watcher{Path: path, Open: open, Models: models, Options: opts}
	return w.Run(ctx)
}

// Run runs the watcher until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Open == nil {
		return gen.NewConfigError("Open", nil, "watcher requires an open function")
	}
	cfg, err := gen.NewConfig(w.Options...)
	if err != nil {
		return err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("compiler: create watcher: %w", err)
	}
	defer fw.Close()
	// Editors often replace files, so the directory is watched.
	if err := fw.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("compiler: watch %s: %w", w.Path, err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w.generate(ctx, log)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.Path) || !isWriteOrCreate(event.Op) {
				continue
			}
			log.Debug("schema changed", "path", event.Name, "op", event.Op.String())
			pending = time.After(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Error("watch schema", "path", w.Path, "error", err)
		case <-pending:
			pending = nil
			w.generate(ctx, log)
		}
	}
}

func isWriteOrCreate(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create)
}

// generate reloads the schema and regenerates the models.
func (w *Watcher) generate(ctx context.Context, log *slog.Logger) {
	res, err := w.regenerate(ctx)
	if err != nil {
		log.Error("regenerate", "path", w.Path, "error", err)
	}
	if w.OnGenerate != nil {
		w.OnGenerate(res, err)
	}
}

func (w *Watcher) regenerate(ctx context.Context) (*gen.Result, error) {
	p, err := w.Open(w.Path)
	if err != nil {
		return nil, err
	}
	opts := append(append([]gen.Option{}, w.Options...), gen.WithRoutes(false))
	g, err := gen.NewGenerator(p, opts...)
	if err != nil {
		return nil, err
	}
	models := w.Models
	if len(models) == 0 {
		if models, err = p.Models(ctx); err != nil {
			return nil, err
		}
	}
	var (
		res  = &gen.Result{}
		errs []error
	)
	for _, m := range models {
		r, err := g.Generate(ctx, m)
		res.Merge(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("compiler: generate %s: %w", m, err))
		}
	}
	return res, errors.Join(errs...)
}
