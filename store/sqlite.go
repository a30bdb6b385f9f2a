package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathbench/benchmark"
	"github.com/katalvlaran/pathbench/simulation"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	algorithm TEXT NOT NULL,
	config TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	finished_at INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	regenerations INTEGER NOT NULL DEFAULT 0,
	ticks INTEGER NOT NULL DEFAULT 0,
	agents INTEGER NOT NULL,
	jump_cache TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL,
	agent INTEGER NOT NULL,
	iteration INTEGER NOT NULL,
	wcf REAL NOT NULL,
	memory INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	steps INTEGER NOT NULL,
	path_cost INTEGER NOT NULL,
	PRIMARY KEY(run_id, agent, iteration),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// SQLiteStore keeps reports in a SQLite database file.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database, applies pragmas and migrates the schema.
// Calling Init on an open store is a no-op.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrPathRequired
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, stmt := range pragmas {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return fmt.Errorf("set sqlite pragma %q: %w", stmt, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate schema: %w", err)
	}

	s.db = db
	return nil
}

// SaveReport upserts the run row and replaces its samples in one transaction.
func (s *SQLiteStore) SaveReport(ctx context.Context, r simulation.Report) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	cfg, err := json.Marshal(r.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	cache, err := json.Marshal(r.JumpCache)
	if err != nil {
		return fmt.Errorf("encode jump cache: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := r.RunID.String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, algorithm, config, started_at, finished_at, iterations, regenerations, ticks, agents, jump_cache)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			algorithm = excluded.algorithm,
			config = excluded.config,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			iterations = excluded.iterations,
			regenerations = excluded.regenerations,
			ticks = excluded.ticks,
			agents = excluded.agents,
			jump_cache = excluded.jump_cache
	`, id, r.Algorithm, string(cfg), r.StartedAt.UnixNano(), r.FinishedAt.UnixNano(),
		r.Iterations, r.Regenerations, r.Ticks, len(r.Agents), string(cache))
	if err != nil {
		return fmt.Errorf("save run %s: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM samples WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("clear samples %s: %w", id, err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (run_id, agent, iteration, wcf, memory, elapsed_ns, steps, path_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare samples: %w", err)
	}
	defer stmt.Close()

	for agent, d := range r.Agents {
		for it := 0; it < d.Len(); it++ {
			smp := d.Sample(it)
			if _, err := stmt.ExecContext(ctx, id, agent, it, smp.WCF, int64(smp.Memory),
				smp.Elapsed.Nanoseconds(), smp.Steps, smp.PathCost); err != nil {
				return fmt.Errorf("save sample agent=%d iteration=%d: %w", agent, it, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) LoadReport(ctx context.Context, id uuid.UUID) (simulation.Report, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return simulation.Report{}, false, err
	}

	var (
		r                 simulation.Report
		cfg, cache        string
		started, finished int64
		agents            int
	)
	err = db.QueryRowContext(ctx, `
		SELECT algorithm, config, started_at, finished_at, iterations, regenerations, ticks, agents, jump_cache
		FROM runs WHERE id = ?
	`, id.String()).Scan(&r.Algorithm, &cfg, &started, &finished, &r.Iterations, &r.Regenerations, &r.Ticks, &agents, &cache)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return simulation.Report{}, false, nil
		}
		return simulation.Report{}, false, fmt.Errorf("load run %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(cfg), &r.Config); err != nil {
		return simulation.Report{}, false, fmt.Errorf("decode config %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(cache), &r.JumpCache); err != nil {
		return simulation.Report{}, false, fmt.Errorf("decode jump cache %s: %w", id, err)
	}
	r.RunID = id
	r.StartedAt = time.Unix(0, started)
	r.FinishedAt = time.Unix(0, finished)
	r.Agents = make(map[int]*benchmark.PathData, agents)
	for i := 0; i < agents; i++ {
		r.Agents[i] = &benchmark.PathData{}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT agent, wcf, memory, elapsed_ns, steps, path_cost
		FROM samples WHERE run_id = ?
		ORDER BY agent, iteration
	`, id.String())
	if err != nil {
		return simulation.Report{}, false, fmt.Errorf("load samples %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			agent           int
			smp             benchmark.Sample
			memory, elapsed int64
		)
		if err := rows.Scan(&agent, &smp.WCF, &memory, &elapsed, &smp.Steps, &smp.PathCost); err != nil {
			return simulation.Report{}, false, fmt.Errorf("scan sample: %w", err)
		}
		smp.Memory = uint64(memory)
		smp.Elapsed = time.Duration(elapsed)
		d, ok := r.Agents[agent]
		if !ok {
			d = &benchmark.PathData{}
			r.Agents[agent] = d
		}
		d.Append(smp)
	}
	if err := rows.Err(); err != nil {
		return simulation.Report{}, false, fmt.Errorf("iterate samples: %w", err)
	}

	return r, true, nil
}

func (s *SQLiteStore) ListReports(ctx context.Context) ([]Summary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, algorithm, started_at, iterations, agents
		FROM runs ORDER BY started_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			id      string
			started int64
			sum     Summary
		)
		if err := rows.Scan(&id, &sum.Algorithm, &started, &sum.Iterations, &sum.Agents); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if sum.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		sum.StartedAt = time.Unix(0, started)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}
