package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathbench/simulation"
)

// JSONStore writes one indented <run-id>.json file per run into a directory.
type JSONStore struct {
	dir string

	mu    sync.Mutex
	ready bool
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

// Init creates the directory when missing.
func (s *JSONStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return ErrPathRequired
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	s.ready = true
	return nil
}

// SaveReport writes to a temporary file and renames it into place, so a
// reader never sees a partial report.
func (s *JSONStore) SaveReport(_ context.Context, r simulation.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return ErrNotInitialized
	}
	payload, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report %s: %w", r.RunID, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(payload, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write report %s: %w", r.RunID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", r.RunID, err)
	}
	if err := os.Rename(tmp.Name(), s.file(r.RunID)); err != nil {
		return fmt.Errorf("publish report %s: %w", r.RunID, err)
	}
	return nil
}

func (s *JSONStore) LoadReport(_ context.Context, id uuid.UUID) (simulation.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return simulation.Report{}, false, ErrNotInitialized
	}
	r, err := readReport(s.file(id))
	if errors.Is(err, os.ErrNotExist) {
		return simulation.Report{}, false, nil
	}
	if err != nil {
		return simulation.Report{}, false, err
	}
	return r, true, nil
}

func (s *JSONStore) ListReports(_ context.Context) ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, ErrNotInitialized
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read report dir: %w", err)
	}

	var out []Summary
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := uuid.Parse(strings.TrimSuffix(name, ".json")); err != nil {
			continue
		}
		r, err := readReport(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(r))
	}
	sortSummaries(out)
	return out, nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) file(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

func readReport(path string) (simulation.Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return simulation.Report{}, err
	}
	var r simulation.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return simulation.Report{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return r, nil
}
