package gen

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Artifact is a generated file destined for a path relative to the root.
type Artifact struct {
	// Kind is the artifact kind ("dashboard", "controller").
	Kind string
	// Path is the output path, relative to the application root.
	Path string
	// Content is the rendered file content.
	Content []byte
}

// Writer writes rendered artifacts.
type Writer interface {
	// Write writes the artifact. It reports false if the artifact
	// was skipped.
	Write(ctx context.Context, a Artifact) (bool, error)
}

// WriterMetrics tracks write statistics.
type WriterMetrics struct {
	FilesWritten int
	FilesSkipped int
	TotalBytes   int64
	WriteTime    int64 // nanoseconds
}

// FileWriter writes artifacts to the filesystem under a root directory.
type FileWriter struct {
	root         string
	skipExisting bool
	log          *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewFileWriter creates a new file writer rooted at dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{root: dir, log: slog.Default()}
}

// WithSkipExisting keeps files that already exist.
func (w *FileWriter) WithSkipExisting(skip bool) *FileWriter {
	w.skipExisting = skip
	return w
}

// WithLogger sets the logger.
func (w *FileWriter) WithLogger(l *slog.Logger) *FileWriter {
	if l != nil {
		w.log = l
	}
	return w
}

// Metrics returns a copy of the write metrics.
func (w *FileWriter) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write implements Writer.
func (w *FileWriter) Write(ctx context.Context, a Artifact) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	start := time.Now()
	path := filepath.Join(w.root, a.Path)
	if w.skipExisting {
		switch _, err := os.Stat(path); {
		case err == nil:
			w.log.Info("skip existing artifact", "kind", a.Kind, "path", a.Path)
			w.record(func(m *WriterMetrics) { m.FilesSkipped++ })
			return false, nil
		case !errors.Is(err, fs.ErrNotExist):
			return false, NewGenerationError("write", a.Path, "stat", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, NewGenerationError("write", a.Path, "create directory", err)
	}
	if err := os.WriteFile(path, a.Content, 0o644); err != nil {
		return false, NewGenerationError("write", a.Path, "", err)
	}
	w.log.Info("write artifact", "kind", a.Kind, "path", a.Path, "bytes", len(a.Content))
	w.record(func(m *WriterMetrics) {
		m.FilesWritten++
		m.TotalBytes += int64(len(a.Content))
		m.WriteTime += time.Since(start).Nanoseconds()
	})
	return true, nil
}

func (w *FileWriter) record(f func(*WriterMetrics)) {
	w.mu.Lock()
	f(&w.metrics)
	w.mu.Unlock()
}
