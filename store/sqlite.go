// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists to a single SQLite database file.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and creates missing tables. It is idempotent.
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
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveTrial(ctx context.Context, rec TrialRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO trials (run_id, graph, trial, colors, success, fitness, iterations, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.RunID, rec.Graph, rec.Trial, rec.Colors, rec.Success, rec.Fitness, rec.Iterations, int64(rec.Duration))
	return err
}

// reportPayload holds the series columns of a report as one JSON blob.
type reportPayload struct {
	TimesNS     []int64 `json:"times_ns"`
	Iterations  []int   `json:"iterations"`
	SuccessRate []int   `json:"success_rate"`
}

func (s *SQLiteStore) SaveReport(ctx context.Context, rep GraphReport) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	p := reportPayload{
		TimesNS:     make([]int64, len(rep.Times)),
		Iterations:  rep.Iterations,
		SuccessRate: rep.SuccessRate,
	}
	for i, d := range rep.Times {
		p.TimesNS[i] = int64(d)
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO reports (run_id, graph, best_colors, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, graph) DO UPDATE SET
			best_colors = excluded.best_colors,
			payload = excluded.payload
	`, rep.RunID, rep.Graph, rep.BestColors, payload)
	return err
}

func (s *SQLiteStore) Trials(ctx context.Context, runID string) ([]TrialRecord, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, graph, trial, colors, success, fitness, iterations, duration_ns
		FROM trials WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrialRecord
	for rows.Next() {
		var (
			rec TrialRecord
			ns  int64
		)
		if err := rows.Scan(&rec.RunID, &rec.Graph, &rec.Trial, &rec.Colors, &rec.Success,
			&rec.Fitness, &rec.Iterations, &ns); err != nil {
			return nil, err
		}
		rec.Duration = time.Duration(ns)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Reports(ctx context.Context, runID string) ([]GraphReport, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, graph, best_colors, payload
		FROM reports WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GraphReport
	for rows.Next() {
		var (
			rep     GraphReport
			payload []byte
			p       reportPayload
		)
		if err := rows.Scan(&rep.RunID, &rep.Graph, &rep.BestColors, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("decode report %s/%s: %w", rep.RunID, rep.Graph, err)
		}
		rep.Times = make([]time.Duration, len(p.TimesNS))
		for i, ns := range p.TimesNS {
			rep.Times[i] = time.Duration(ns)
		}
		rep.Iterations = p.Iterations
		rep.SuccessRate = p.SuccessRate
		out = append(out, rep)
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

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS trials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			graph TEXT NOT NULL,
			trial INTEGER NOT NULL,
			colors INTEGER NOT NULL,
			success BOOLEAN NOT NULL,
			fitness INTEGER NOT NULL,
			iterations INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS trials_run ON trials (run_id);
		CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			graph TEXT NOT NULL,
			best_colors INTEGER NOT NULL,
			payload BLOB NOT NULL,
			UNIQUE (run_id, graph)
		);
	`)
	return err
}
