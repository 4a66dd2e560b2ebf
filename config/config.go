// SPDX-License-Identifier: MIT

// Package config loads gacolor settings from YAML.
//
// Every section has defaults (see Default); a file only needs the keys it
// overrides. Durations use Go syntax ("1500ms", "2m").
//
//	optimizer:
//	  generation_size: 50
//	  mutation_rate: 0.7
//	  reproduction_size: 25
//	  tournament_k: 4
//	  elite_size: 3
//	  max_iterations: 10000
//	  target: 0
//	  seed: 1
//	  crossover: one_point
//	  time_limit: 0s
//	experiment:
//	  trials: 50
//	  directed: false
//	  skip_duplicates: true
//	store:
//	  kind: memory
//	  path: ""
//	log:
//	  level: info
//	  format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gacolor/coloring"
	"github.com/katalvlaran/gacolor/experiment"
	"github.com/katalvlaran/gacolor/store"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root document.
type Config struct {
	Optimizer  Optimizer  `yaml:"optimizer"`
	Experiment Experiment `yaml:"experiment"`
	Store      Store      `yaml:"store"`
	Log        Log        `yaml:"log"`
}

// Optimizer mirrors coloring.Options.
type Optimizer struct {
	GenerationSize   int           `yaml:"generation_size"`
	MutationRate     float64       `yaml:"mutation_rate"`
	ReproductionSize int           `yaml:"reproduction_size"`
	TournamentK      int           `yaml:"tournament_k"`
	EliteSize        int           `yaml:"elite_size"`
	MaxIterations    int           `yaml:"max_iterations"`
	Target           int           `yaml:"target"`
	Seed             int64         `yaml:"seed"`
	Crossover        string        `yaml:"crossover"`
	TimeLimit        time.Duration `yaml:"time_limit"`
}

// Experiment configures the benchmark driver and instance loading.
type Experiment struct {
	Trials         int  `yaml:"trials"`
	Directed       bool `yaml:"directed"`
	SkipDuplicates bool `yaml:"skip_duplicates"`
}

// Store selects the persistence backend.
type Store struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	o := coloring.DefaultOptions()
	return Config{
		Optimizer: Optimizer{
			GenerationSize:   o.GenerationSize,
			MutationRate:     o.MutationRate,
			ReproductionSize: o.ReproductionSize,
			TournamentK:      o.TournamentK,
			EliteSize:        o.EliteSize,
			MaxIterations:    o.MaxIterations,
			Target:           o.Target,
			Seed:             o.Seed,
			Crossover:        o.Crossover.String(),
		},
		Experiment: Experiment{Trials: experiment.DefaultTrials, SkipDuplicates: true},
		Store:      Store{Kind: store.KindMemory},
		Log:        Log{Level: "info", Format: "text"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result. Unknown keys
// are rejected. Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section. Optimizer values are checked by building
// the options and letting the coloring package judge them.
func (c Config) Validate() error {
	opts, err := c.Options()
	if err != nil {
		return err
	}
	if err := coloring.ValidateOptions(opts); err != nil {
		return fmt.Errorf("optimizer: %w: %w", ErrInvalid, err)
	}
	if c.Experiment.Trials < 1 {
		return fmt.Errorf("experiment.trials=%d: %w", c.Experiment.Trials, ErrInvalid)
	}
	switch c.Store.Kind {
	case store.KindMemory:
	case store.KindSQLite, store.KindText:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path required for %s: %w", c.Store.Kind, ErrInvalid)
		}
	default:
		return fmt.Errorf("store.kind=%q: %w", c.Store.Kind, ErrInvalid)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalid)
	}
	return nil
}

// Options converts the optimizer section.
func (c Config) Options() (coloring.Options, error) {
	o := c.Optimizer
	opts := coloring.Options{
		GenerationSize:   o.GenerationSize,
		MutationRate:     o.MutationRate,
		ReproductionSize: o.ReproductionSize,
		TournamentK:      o.TournamentK,
		EliteSize:        o.EliteSize,
		MaxIterations:    o.MaxIterations,
		Target:           o.Target,
		Seed:             o.Seed,
		TimeLimit:        o.TimeLimit,
	}
	switch o.Crossover {
	case "", coloring.OnePoint.String():
		opts.Crossover = coloring.OnePoint
	case coloring.TwoPoint.String():
		opts.Crossover = coloring.TwoPoint
	default:
		return coloring.Options{}, fmt.Errorf("optimizer.crossover=%q: %w", o.Crossover, ErrInvalid)
	}
	return opts, nil
}

// Logger builds a slog.Logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func (l Log) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", l.Level, ErrInvalid)
	}
	return lvl, nil
}
