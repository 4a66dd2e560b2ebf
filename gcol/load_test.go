package gcol_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gacolor/gcol"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myciel3.col")
	writeFile(t, path, c4)

	inst, err := gcol.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "myciel3.col", inst.Name)
	assert.Equal(t, 4, inst.Edges)

	_, err = gcol.Load(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken")
	writeFile(t, path, "2\n3 1\n1 9\n")

	_, err := gcol.Load(path)
	require.ErrorIs(t, err, gcol.ErrSyntax)
	assert.Contains(t, err.Error(), path)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.col"), c4)
	writeFile(t, filepath.Join(dir, "a.col"), "3\n3 3\n1 2\n2 3\n3 1\n")
	writeFile(t, filepath.Join(dir, "sub", "c.col"), "1\n3 0\n")
	writeFile(t, filepath.Join(dir, ".hidden", "x.col"), "garbage")
	writeFile(t, filepath.Join(dir, ".notes"), "garbage")

	insts, err := gcol.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, insts, 3)
	assert.Equal(t, "a.col", insts[0].Name)
	assert.Equal(t, "b.col", insts[1].Name)
	assert.Equal(t, "sub/c.col", insts[2].Name)
	assert.Equal(t, 3, insts[0].Colors)

	writeFile(t, filepath.Join(dir, "bad.col"), "nope")
	_, err = gcol.LoadDir(dir)
	require.ErrorIs(t, err, gcol.ErrSyntax)
}
