// SPDX-License-Identifier: MIT

// Package store persists experiment trials and per-graph reports.
//
// Backends:
//   - memory: maps guarded by a RWMutex; the default.
//   - sqlite: modernc.org/sqlite (pure Go), tables trials and reports.
//   - text:   appends the classic results/results_simple.txt and
//     analysis/success_rate_simple.txt files and keeps trials in memory.
//
// Every backend must be Init'ed before use and is safe for concurrent use.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotInitialized indicates a call before Init or after Close.
	ErrNotInitialized = errors.New("store: not initialized")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("store: unknown backend")

	// ErrPathRequired indicates a file-backed store without a path.
	ErrPathRequired = errors.New("store: path is required")
)

// TrialRecord is one optimizer run inside an experiment trial.
type TrialRecord struct {
	RunID      string
	Graph      string
	Trial      int
	Colors     int
	Success    bool
	Fitness    int
	Iterations int
	Duration   time.Duration
}

// GraphReport aggregates all trials of one graph in one run.
// Times and Iterations hold successful runs only; SuccessRate holds one
// 0/1 entry per run.
type GraphReport struct {
	RunID       string
	Graph       string
	Times       []time.Duration
	Iterations  []int
	SuccessRate []int
	BestColors  int
}

// Store is the persistence contract used by the experiment driver.
type Store interface {
	Init(ctx context.Context) error
	SaveTrial(ctx context.Context, rec TrialRecord) error
	SaveReport(ctx context.Context, rep GraphReport) error
	// Trials returns the records of runID in insertion order.
	Trials(ctx context.Context, runID string) ([]TrialRecord, error)
	// Reports returns the reports of runID in insertion order.
	Reports(ctx context.Context, runID string) ([]GraphReport, error)
	Close() error
}

// Backend names accepted by New.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
	KindText   = "text"
)

// New returns an uninitialized store for kind. path is the database file
// for sqlite and the output root directory for text; memory ignores it.
func New(kind, path string) (Store, error) {
	switch kind {
	case "", KindMemory:
		return NewMemoryStore(), nil
	case KindSQLite:
		if path == "" {
			return nil, fmt.Errorf("store.New(%s): %w", kind, ErrPathRequired)
		}
		return NewSQLiteStore(path), nil
	case KindText:
		if path == "" {
			return nil, fmt.Errorf("store.New(%s): %w", kind, ErrPathRequired)
		}
		return NewTextStore(path), nil
	default:
		return nil, fmt.Errorf("store.New(%q): %w", kind, ErrUnknownBackend)
	}
}
