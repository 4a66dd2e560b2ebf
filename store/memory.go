// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps everything in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	trials      map[string][]TrialRecord
	reports     map[string][]GraphReport
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init resets the store to empty.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.trials = make(map[string][]TrialRecord)
	s.reports = make(map[string][]GraphReport)
	return nil
}

func (s *MemoryStore) SaveTrial(_ context.Context, rec TrialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.trials[rec.RunID] = append(s.trials[rec.RunID], rec)
	return nil
}

func (s *MemoryStore) SaveReport(_ context.Context, rep GraphReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	s.reports[rep.RunID] = append(s.reports[rep.RunID], cloneReport(rep))
	return nil
}

func (s *MemoryStore) Trials(_ context.Context, runID string) ([]TrialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	return slices.Clone(s.trials[runID]), nil
}

func (s *MemoryStore) Reports(_ context.Context, runID string) ([]GraphReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]GraphReport, 0, len(s.reports[runID]))
	for _, rep := range s.reports[runID] {
		out = append(out, cloneReport(rep))
	}
	return out, nil
}

// Close drops all data.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false
	s.trials = nil
	s.reports = nil
	return nil
}

func cloneReport(rep GraphReport) GraphReport {
	rep.Times = slices.Clone(rep.Times)
	rep.Iterations = slices.Clone(rep.Iterations)
	rep.SuccessRate = slices.Clone(rep.SuccessRate)
	return rep
}
