// Package store persists simulation reports.
//
// Three backends share the Store interface:
//
//   - memory: process-local map, for tests and dry runs.
//   - json:   one pretty-printed <run-id>.json file per run in a directory;
//     each agent's PathData is written as its benchmark.Record.
//   - sqlite: a single database file (modernc.org/sqlite, no cgo) with a
//     runs table and one samples row per agent per iteration.
//
// NewStore picks a backend by name; NewSink adapts any Store to the
// simulation.Sink a Simulator flushes its report to on completion.
package store
