// SPDX-License-Identifier: MIT

// Package experiment drives repeated coloring searches over a set of
// benchmark instances and persists the outcome.
//
// Protocol per instance:
//   - Run Trials trials.
//   - A trial starts at the instance's declared color count. Every success
//     (the optimizer stops on its target) records the run and retries with
//     one color fewer. The first failure ends the trial, and so does
//     success with a single color.
//   - Every optimizer run is saved as a store.TrialRecord; one
//     store.GraphReport per instance aggregates the runs.
//
// Runs are sequential. The context is checked before every optimizer run.
// When the base options carry no explicit Rand, each run gets its own seed
// derived from Options.Seed and a run counter, so a whole experiment is
// reproducible from one seed.
package experiment
