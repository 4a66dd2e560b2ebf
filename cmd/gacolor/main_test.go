package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gacolor/gcol"
	"github.com/katalvlaran/gacolor/store"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Usage(t *testing.T) {
	_, err := runCmd(t)
	require.ErrorContains(t, err, "missing command")

	_, err = runCmd(t, "paint")
	require.ErrorContains(t, err, "unknown command: paint")

	_, err = runCmd(t, "solve")
	require.ErrorContains(t, err, "-graph is required")

	_, err = runCmd(t, "bench")
	require.ErrorContains(t, err, "-dir is required")

	_, err = runCmd(t, "gen")
	require.ErrorContains(t, err, "-kind is required")

	_, err = runCmd(t, "gen", "-kind", "star", "-n", "5")
	require.ErrorContains(t, err, "unknown kind")

	_, err = runCmd(t, "solve", "-nope")
	require.Error(t, err)
}

func TestGen(t *testing.T) {
	out, err := runCmd(t, "gen", "-kind", "cycle", "-n", "5")
	require.NoError(t, err)

	inst, err := gcol.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 3, inst.Colors, "max degree + 1")
	assert.Equal(t, 5, inst.Vertices)
	assert.Equal(t, 5, inst.Edges)

	path := filepath.Join(t.TempDir(), "k33.col")
	_, err = runCmd(t, "gen", "-kind", "bipartite", "-n", "3", "-m", "3", "-colors", "2", "-o", path)
	require.NoError(t, err)
	inst, err = gcol.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.Colors)
	assert.Equal(t, 9, inst.Edges)

	a, err := runCmd(t, "gen", "-kind", "random", "-n", "30", "-p", "0.2", "-seed", "4")
	require.NoError(t, err)
	b, err := runCmd(t, "gen", "-kind", "random", "-n", "30", "-p", "0.2", "-seed", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c6.col")
	_, err := runCmd(t, "gen", "-kind", "cycle", "-n", "6", "-colors", "2", "-o", path)
	require.NoError(t, err)

	out, err := runCmd(t, "solve", "-graph", path, "-seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "graph: c6.col")
	assert.Contains(t, out, "colors: 2")
	assert.Contains(t, out, "fitness: 0")
	assert.Contains(t, out, "reason: target")

	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("optimizer: {max_iterations: 5}\n"), 0o644))
	out, err = runCmd(t, "solve", "-graph", path, "-colors", "1", "-config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "reason: max_iterations")
	assert.Contains(t, out, "iterations: 6")
	assert.Contains(t, out, "coloring: 1 1 1 1 1 1")
}

func TestBench_TextStore(t *testing.T) {
	dir := t.TempDir()
	graphs := filepath.Join(dir, "graphs")
	require.NoError(t, os.MkdirAll(graphs, 0o755))
	_, err := runCmd(t, "gen", "-kind", "cycle", "-n", "4", "-colors", "3", "-o", filepath.Join(graphs, "c4.col"))
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("optimizer: {max_iterations: 100}\nlog: {level: error}\n"), 0o644))

	outDir := filepath.Join(dir, "out")
	out, err := runCmd(t, "bench", "-dir", graphs, "-trials", "2", "-store", "text", "-out", outDir, "-config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "c4.col")

	rates, err := os.ReadFile(filepath.Join(outDir, store.SuccessRateFile))
	require.NoError(t, err)
	assert.Equal(t, "c4.col:\n[1, 1, 0, 1, 1, 0]\n", string(rates))
}

func TestBench_SQLiteStore(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "gen", "-kind", "complete", "-n", "4", "-o", filepath.Join(dir, "k4.col"))
	require.NoError(t, err)

	db := filepath.Join(t.TempDir(), "bench.db")
	out, err := runCmd(t, "bench", "-dir", dir, "-trials", "1", "-store", "sqlite", "-out", db)
	require.NoError(t, err)
	assert.Contains(t, out, "k4.col")

	_, err = os.Stat(db)
	require.NoError(t, err)
}
