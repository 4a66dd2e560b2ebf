// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Output files of the text backend, relative to its root.
const (
	ResultsFile     = "results/results_simple.txt"
	SuccessRateFile = "analysis/success_rate_simple.txt"
)

// TextStore appends human-readable reports under a root directory and
// keeps trials and reports in memory for querying.
//
// For every report, ResultsFile receives three lines (graph name, success
// times in seconds, success iteration counts) and SuccessRateFile receives
// "<graph>:" followed by the 0/1 series. Series use bracketed,
// comma-separated lists.
type TextStore struct {
	root string
	mem  *MemoryStore

	// mu serializes file appends.
	mu sync.Mutex
}

func NewTextStore(root string) *TextStore {
	return &TextStore{root: root, mem: NewMemoryStore()}
}

// Init creates the output directories.
func (s *TextStore) Init(ctx context.Context) error {
	if s.root == "" {
		return ErrPathRequired
	}
	for _, f := range []string{ResultsFile, SuccessRateFile} {
		if err := os.MkdirAll(filepath.Join(s.root, filepath.Dir(f)), 0o755); err != nil {
			return err
		}
	}
	return s.mem.Init(ctx)
}

func (s *TextStore) SaveTrial(ctx context.Context, rec TrialRecord) error {
	return s.mem.SaveTrial(ctx, rec)
}

func (s *TextStore) SaveReport(ctx context.Context, rep GraphReport) error {
	if err := s.mem.SaveReport(ctx, rep); err != nil {
		return err
	}

	secs := make([]string, len(rep.Times))
	for i, d := range rep.Times {
		secs[i] = formatSeconds(d.Seconds())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := rep.Graph + "\n" + list(secs) + "\n" + list(ints(rep.Iterations)) + "\n"
	if err := s.appendFile(ResultsFile, results); err != nil {
		return err
	}
	return s.appendFile(SuccessRateFile, rep.Graph+":\n"+list(ints(rep.SuccessRate))+"\n")
}

func (s *TextStore) Trials(ctx context.Context, runID string) ([]TrialRecord, error) {
	return s.mem.Trials(ctx, runID)
}

func (s *TextStore) Reports(ctx context.Context, runID string) ([]GraphReport, error) {
	return s.mem.Reports(ctx, runID)
}

func (s *TextStore) Close() error {
	return s.mem.Close()
}

func (s *TextStore) appendFile(name, body string) error {
	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return fmt.Errorf("append %s: %w", name, err)
	}
	return f.Close()
}

func list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func ints(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}
	return out
}

// formatSeconds prints the shortest exact decimal, always with a fraction.
func formatSeconds(s float64) string {
	out := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
