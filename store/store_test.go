package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gacolor/store"
)

// ContractSuite runs the Store contract against one backend.
type ContractSuite struct {
	suite.Suite
	kind  string
	store store.Store
	ctx   context.Context
}

func (s *ContractSuite) SetupTest() {
	s.ctx = context.Background()
	path := ""
	switch s.kind {
	case store.KindSQLite:
		path = filepath.Join(s.T().TempDir(), "gacolor.db")
	case store.KindText:
		path = s.T().TempDir()
	}

	st, err := store.New(s.kind, path)
	s.Require().NoError(err)
	s.Require().NoError(st.Init(s.ctx))
	s.store = st
}

func (s *ContractSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func TestMemoryContract(t *testing.T) { suite.Run(t, &ContractSuite{kind: store.KindMemory}) }
func TestSQLiteContract(t *testing.T) { suite.Run(t, &ContractSuite{kind: store.KindSQLite}) }
func TestTextContract(t *testing.T)   { suite.Run(t, &ContractSuite{kind: store.KindText}) }

func sampleTrials(runID string) []store.TrialRecord {
	return []store.TrialRecord{
		{RunID: runID, Graph: "myciel3.col", Trial: 1, Colors: 4, Success: true, Fitness: 0, Iterations: 3, Duration: 2 * time.Millisecond},
		{RunID: runID, Graph: "myciel3.col", Trial: 1, Colors: 3, Success: false, Fitness: 2, Iterations: 10001, Duration: time.Second},
		{RunID: runID, Graph: "queen5_5.col", Trial: 1, Colors: 5, Success: true, Fitness: 0, Iterations: 77, Duration: 15 * time.Millisecond},
	}
}

func (s *ContractSuite) TestTrialsRoundTrip() {
	want := sampleTrials("run-a")
	for _, rec := range want {
		s.Require().NoError(s.store.SaveTrial(s.ctx, rec))
	}
	s.Require().NoError(s.store.SaveTrial(s.ctx, store.TrialRecord{RunID: "run-b", Graph: "other"}))

	got, err := s.store.Trials(s.ctx, "run-a")
	s.Require().NoError(err)
	s.Require().Equal(want, got)

	none, err := s.store.Trials(s.ctx, "missing")
	s.Require().NoError(err)
	s.Require().Empty(none)
}

func (s *ContractSuite) TestReportsRoundTrip() {
	rep := store.GraphReport{
		RunID:       "run-a",
		Graph:       "myciel3.col",
		Times:       []time.Duration{2 * time.Millisecond, 3 * time.Millisecond},
		Iterations:  []int{3, 9},
		SuccessRate: []int{1, 0, 1, 0},
		BestColors:  4,
	}
	s.Require().NoError(s.store.SaveReport(s.ctx, rep))

	got, err := s.store.Reports(s.ctx, "run-a")
	s.Require().NoError(err)
	s.Require().Equal([]store.GraphReport{rep}, got)

	// Mutating the caller's slices must not leak into the store.
	rep.Iterations[0] = 999
	got, err = s.store.Reports(s.ctx, "run-a")
	s.Require().NoError(err)
	s.Require().Equal(3, got[0].Iterations[0])
}

func TestNew(t *testing.T) {
	st, err := store.New("", "")
	require.NoError(t, err)
	require.IsType(t, &store.MemoryStore{}, st)

	_, err = store.New(store.KindSQLite, "")
	require.ErrorIs(t, err, store.ErrPathRequired)

	_, err = store.New(store.KindText, "")
	require.ErrorIs(t, err, store.ErrPathRequired)

	_, err = store.New("postgres", "x")
	require.ErrorIs(t, err, store.ErrUnknownBackend)
}

func TestNotInitialized(t *testing.T) {
	ctx := context.Background()
	for _, st := range []store.Store{
		store.NewMemoryStore(),
		store.NewSQLiteStore(filepath.Join(t.TempDir(), "x.db")),
		store.NewTextStore(t.TempDir()),
	} {
		require.ErrorIs(t, st.SaveTrial(ctx, store.TrialRecord{}), store.ErrNotInitialized)
		require.ErrorIs(t, st.SaveReport(ctx, store.GraphReport{}), store.ErrNotInitialized)
		_, err := st.Trials(ctx, "x")
		require.ErrorIs(t, err, store.ErrNotInitialized)
		require.NoError(t, st.Close())
	}
}

func TestSQLiteStore_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gacolor.db")

	first := store.NewSQLiteStore(path)
	require.NoError(t, first.Init(ctx))
	require.NoError(t, first.Init(ctx), "Init is idempotent")
	for _, rec := range sampleTrials("run-a") {
		require.NoError(t, first.SaveTrial(ctx, rec))
	}
	rep := store.GraphReport{RunID: "run-a", Graph: "g", BestColors: 5, Times: []time.Duration{}, Iterations: []int{}, SuccessRate: []int{0}}
	require.NoError(t, first.SaveReport(ctx, rep))
	rep.BestColors = 4
	require.NoError(t, first.SaveReport(ctx, rep), "a report is upserted per graph")
	require.NoError(t, first.Close())

	second := store.NewSQLiteStore(path)
	require.NoError(t, second.Init(ctx))
	t.Cleanup(func() { _ = second.Close() })

	trials, err := second.Trials(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, trials, 3)

	reps, err := second.Reports(ctx, "run-a")
	require.NoError(t, err)
	require.Len(t, reps, 1)
	require.Equal(t, 4, reps[0].BestColors)
}
