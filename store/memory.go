package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathbench/benchmark"
	"github.com/katalvlaran/pathbench/simulation"
)

// MemoryStore keeps reports in a map. Saved reports are deep-copied so later
// mutation by the caller does not leak in.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]simulation.Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reports == nil {
		s.reports = make(map[uuid.UUID]simulation.Report)
	}
	return nil
}

func (s *MemoryStore) SaveReport(_ context.Context, r simulation.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reports == nil {
		return ErrNotInitialized
	}
	s.reports[r.RunID] = copyReport(r)
	return nil
}

func (s *MemoryStore) LoadReport(_ context.Context, id uuid.UUID) (simulation.Report, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.reports == nil {
		return simulation.Report{}, false, ErrNotInitialized
	}
	r, ok := s.reports[id]
	if !ok {
		return simulation.Report{}, false, nil
	}
	return copyReport(r), true, nil
}

func (s *MemoryStore) ListReports(_ context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.reports == nil {
		return nil, ErrNotInitialized
	}
	out := make([]Summary, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, summarize(r))
	}
	sortSummaries(out)
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

func copyReport(r simulation.Report) simulation.Report {
	agents := make(map[int]*benchmark.PathData, len(r.Agents))
	for i, d := range r.Agents {
		agents[i] = benchmark.FromRecord(d.Record())
	}
	r.Agents = agents
	return r
}
