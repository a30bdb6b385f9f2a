package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathbench/simulation"
)

// Sentinel errors.
var (
	// ErrNotInitialized is returned by every operation before Init.
	ErrNotInitialized = errors.New("store: not initialized")
	// ErrPathRequired is returned by file-backed stores without a path.
	ErrPathRequired = errors.New("store: path is required")
	// ErrUnsupportedBackend is returned by NewStore for unknown kinds.
	ErrUnsupportedBackend = errors.New("store: unsupported backend")
)

// Backend names accepted by NewStore.
const (
	KindMemory = "memory"
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Summary is the listing entry for one stored run.
type Summary struct {
	RunID      uuid.UUID
	Algorithm  string
	StartedAt  time.Time
	Iterations int
	Agents     int
}

// Store persists simulation reports keyed by run ID.
type Store interface {
	Init(ctx context.Context) error
	SaveReport(ctx context.Context, r simulation.Report) error
	// LoadReport returns ok == false when no run has the given ID.
	LoadReport(ctx context.Context, id uuid.UUID) (r simulation.Report, ok bool, err error)
	// ListReports returns every stored run, oldest first.
	ListReports(ctx context.Context) ([]Summary, error)
	Close() error
}

// NewStore returns an uninitialized store of the given kind. path is the
// directory for json and the database file for sqlite; memory ignores it.
func NewStore(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindMemory:
		return NewMemoryStore(), nil
	case KindJSON:
		return NewJSONStore(path), nil
	case KindSQLite:
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, kind)
	}
}

type sink struct{ s Store }

// NewSink adapts s to simulation.Sink. s must already be initialized.
func NewSink(s Store) simulation.Sink { return sink{s: s} }

func (k sink) Save(ctx context.Context, r simulation.Report) error {
	return k.s.SaveReport(ctx, r)
}

func summarize(r simulation.Report) Summary {
	return Summary{
		RunID:      r.RunID,
		Algorithm:  r.Algorithm,
		StartedAt:  r.StartedAt,
		Iterations: r.Iterations,
		Agents:     len(r.Agents),
	}
}

func sortSummaries(out []Summary) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].RunID.String() < out[j].RunID.String()
	})
}
