package load

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is the version of the snapshot encoding.
const SnapshotVersion = 1

// Snapshot is a msgpack-encoded dump of the schemas served by a provider.
// It lets generation run without access to the original schema source
// (typically a database).
type Snapshot struct {
	Version int       `msgpack:"version"`
	Models  []*Schema `msgpack:"models"`
}

// TakeSnapshot loads every model of the provider.
func TakeSnapshot(ctx context.Context, p Provider) (*Snapshot, error) {
	schemas, err := All(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Version: SnapshotVersion, Models: schemas}, nil
}

// WriteSnapshot encodes the snapshot to w.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("load: encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot from r.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	s := &Snapshot{}
	if err := msgpack.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("load: decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("load: unsupported snapshot version %d", s.Version)
	}
	return s, nil
}

// NewSnapshotProvider reads the snapshot file at path.
func NewSnapshotProvider(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open snapshot: %w", err)
	}
	defer f.Close()
	s, err := ReadSnapshot(f)
	if err != nil {
		return nil, err
	}
	return NewStatic(s.Models...)
}
