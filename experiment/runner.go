// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gacolor/coloring"
	"github.com/katalvlaran/gacolor/gcol"
	"github.com/katalvlaran/gacolor/store"
)

// DefaultTrials is the number of trials per instance.
const DefaultTrials = 50

// Option customizes a Runner.
type Option func(*Runner)

// WithTrials sets the number of trials per instance. Panics on n < 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("experiment: WithTrials(%d)", n))
	}
	return func(r *Runner) { r.trials = n }
}

// WithOptions sets the base optimizer options for every run.
func WithOptions(opts coloring.Options) Option {
	return func(r *Runner) { r.opts = opts }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithRunID fixes the run id instead of generating a UUID.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// Runner executes experiments against a Store.
type Runner struct {
	store  store.Store
	trials int
	opts   coloring.Options
	logger *slog.Logger
	runID  string

	// runs counts optimizer runs; it feeds seed derivation.
	runs uint64
}

// NewRunner returns a Runner writing to st (which must be initialized).
// Defaults: DefaultTrials, coloring.DefaultOptions, slog.Default, a fresh
// UUID run id.
func NewRunner(st store.Store, opts ...Option) *Runner {
	if st == nil {
		panic("experiment: NewRunner(nil store)")
	}
	r := &Runner{
		store:  st,
		trials: DefaultTrials,
		opts:   coloring.DefaultOptions(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}
	r.logger = r.logger.With(slog.String("component", "experiment"), slog.String("run_id", r.runID))

	return r
}

// RunID returns the id stamped on every record of this runner.
func (r *Runner) RunID() string { return r.runID }

// Run processes instances in order and returns one report per processed
// instance. Instances too small for the optimizer are skipped with a
// warning. On context cancellation Run returns the reports completed so far
// together with ctx.Err(); the interrupted instance is not reported.
func (r *Runner) Run(ctx context.Context, instances []*gcol.Instance) ([]store.GraphReport, error) {
	reports := make([]store.GraphReport, 0, len(instances))
	for _, inst := range instances {
		rep, err := r.runInstance(ctx, inst)
		if errors.Is(err, coloring.ErrDegenerateGraph) {
			r.logger.Warn("skipping instance", slog.String("graph", inst.Name), slog.Any("err", err))
			continue
		}
		if err != nil {
			return reports, err
		}
		if err := r.store.SaveReport(ctx, rep); err != nil {
			return reports, fmt.Errorf("save report %s: %w", inst.Name, err)
		}
		reports = append(reports, rep)
		r.logger.Info("instance done",
			slog.String("graph", rep.Graph),
			slog.Int("best_colors", rep.BestColors),
			slog.Int("successes", len(rep.Times)),
			slog.Int("runs", len(rep.SuccessRate)))
	}

	return reports, nil
}

// runInstance executes all trials of one instance.
func (r *Runner) runInstance(ctx context.Context, inst *gcol.Instance) (store.GraphReport, error) {
	rep := store.GraphReport{
		RunID:       r.runID,
		Graph:       inst.Name,
		Times:       []time.Duration{},
		Iterations:  []int{},
		SuccessRate: []int{},
	}

	for trial := 1; trial <= r.trials; trial++ {
		for colors := inst.Colors; colors >= 1; colors-- {
			if err := ctx.Err(); err != nil {
				return rep, err
			}

			rec, err := r.attempt(inst, trial, colors)
			if err != nil {
				return rep, err
			}
			if err := r.store.SaveTrial(ctx, rec); err != nil {
				return rep, fmt.Errorf("save trial %s/%d: %w", inst.Name, trial, err)
			}

			r.logger.Debug("run",
				slog.String("graph", inst.Name),
				slog.Int("trial", trial),
				slog.Int("colors", colors),
				slog.Bool("success", rec.Success),
				slog.Int("fitness", rec.Fitness),
				slog.Int("iterations", rec.Iterations),
				slog.Duration("elapsed", rec.Duration))

			if !rec.Success {
				rep.SuccessRate = append(rep.SuccessRate, 0)
				break
			}
			rep.SuccessRate = append(rep.SuccessRate, 1)
			rep.Times = append(rep.Times, rec.Duration)
			rep.Iterations = append(rep.Iterations, rec.Iterations)
			if rep.BestColors == 0 || colors < rep.BestColors {
				rep.BestColors = colors
			}
		}
	}

	return rep, nil
}

// attempt runs the optimizer once with the given palette size.
func (r *Runner) attempt(inst *gcol.Instance, trial, colors int) (store.TrialRecord, error) {
	opts := r.opts
	if opts.Rand == nil {
		opts.Seed = coloring.DeriveSeed(r.opts.Seed, r.runs)
	}
	r.runs++

	opt, err := coloring.New(inst.Graph, colors, opts)
	if err != nil {
		return store.TrialRecord{}, fmt.Errorf("%s: %w", inst.Name, err)
	}
	res := opt.Optimize()

	return store.TrialRecord{
		RunID:      r.runID,
		Graph:      inst.Name,
		Trial:      trial,
		Colors:     colors,
		Success:    res.Reason == coloring.StopTarget,
		Fitness:    res.Best.Fitness,
		Iterations: res.Iterations,
		Duration:   res.Elapsed,
	}, nil
}
