package gcol_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gacolor/gcol"
)

const c4 = `2
4 4
1 2
2 3
3 4
4 1
`

func TestParse_Undirected(t *testing.T) {
	inst, err := gcol.Parse(strings.NewReader(c4))
	require.NoError(t, err)

	assert.Equal(t, 2, inst.Colors)
	assert.Equal(t, 4, inst.Vertices)
	assert.Equal(t, 4, inst.Edges)
	assert.Equal(t, 4, inst.DeclaredEdges)
	assert.False(t, inst.Graph.Directed())
	assert.Equal(t, [][]int{{1, 3}, {0, 2}, {1, 3}, {2, 0}}, inst.Graph.Adjacency())
}

func TestParse_Directed(t *testing.T) {
	inst, err := gcol.Parse(strings.NewReader(c4), gcol.WithDirected(true))
	require.NoError(t, err)

	assert.True(t, inst.Graph.Directed())
	assert.Equal(t, [][]int{{1}, {2}, {3}, {0}}, inst.Graph.Adjacency())
}

func TestParse_Duplicates(t *testing.T) {
	src := "3\n3 4\n1 2\n2 1\n1 2\n\n2 3\n"

	skip, err := gcol.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, skip.Edges)
	assert.Equal(t, 4, skip.DeclaredEdges, "declared count is kept, not enforced")

	keep, err := gcol.Parse(strings.NewReader(src), gcol.WithDuplicates(false))
	require.NoError(t, err)
	assert.Equal(t, 4, keep.Edges)
	assert.Equal(t, []int{1, 1, 1}, keep.Graph.Adjacency()[0])
}

func TestParse_OptionalEdgeCount(t *testing.T) {
	inst, err := gcol.Parse(strings.NewReader("1\n3\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, inst.DeclaredEdges)
	assert.Equal(t, 0, inst.Edges)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, src, line string
	}{
		{"empty", "", "line 1"},
		{"no vertex line", "3\n", "line 2"},
		{"bad colors", "x\n3 0\n", "line 1"},
		{"zero colors", "0\n3 0\n", "line 1"},
		{"zero vertices", "2\n0 0\n", "line 2"},
		{"bad edge count", "2\n3 -1\n", "line 2"},
		{"one endpoint", "2\n3 1\n1\n", "line 3"},
		{"out of range", "2\n3 1\n1 4\n", "line 3"},
		{"zero label", "2\n3 1\n0 1\n", "line 3"},
		{"loop", "2\n3 1\n\n2 2\n", "line 4"},
		{"non-integer", "2\n3 1\n1 b\n", "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gcol.Parse(strings.NewReader(tc.src))
			require.ErrorIs(t, err, gcol.ErrSyntax)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestParse_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := gcol.Parse(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, gcol.ErrSyntax)
}

func TestWrite_RoundTrip(t *testing.T) {
	for _, directed := range []bool{false, true} {
		inst, err := gcol.Parse(strings.NewReader(c4), gcol.WithDirected(directed))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, gcol.Write(&buf, inst))

		back, err := gcol.Parse(&buf, gcol.WithDirected(directed))
		require.NoError(t, err)
		assert.Equal(t, inst.Colors, back.Colors)
		assert.Equal(t, inst.Edges, back.Edges)
		assert.Equal(t, inst.Edges, back.DeclaredEdges)
		for u := 0; u < inst.Vertices; u++ {
			for v := 0; v < inst.Vertices; v++ {
				assert.Equal(t, inst.Graph.HasEdge(u, v), back.Graph.HasEdge(u, v), "%d→%d", u, v)
			}
		}
	}
}

func TestWrite_Format(t *testing.T) {
	inst, err := gcol.Parse(strings.NewReader(c4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gcol.Write(&buf, inst))
	assert.Equal(t, "2\n4 4\n1 2\n1 4\n2 3\n3 4\n", buf.String())

	require.ErrorIs(t, gcol.Write(&buf, nil), gcol.ErrSyntax)
}
