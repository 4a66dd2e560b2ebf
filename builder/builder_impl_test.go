// Package builder_test contains functional tests for every Constructor,
// verifying order, edge counts, numbering contract and determinism.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gacolor/builder"
	"github.com/katalvlaran/gacolor/core"
)

// TestBuilders_Functional runs table-driven checks for each family.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "ring edge %d", i)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(3, 0))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 4; i++ {
					d, err := g.Degree(i)
					require.NoError(t, err)
					assert.Equal(t, 3, d)
				}
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 2))
				assert.True(t, g.HasEdge(1, 4))
				assert.False(t, g.HasEdge(0, 1), "no edge inside a side")
				assert.False(t, g.HasEdge(2, 3), "no edge inside a side")
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(4)
				require.NoError(t, err)
				assert.Equal(t, 4, d, "hub touches every rim vertex")
				assert.True(t, g.HasEdge(3, 0), "rim closes")
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(1, 4))
				assert.False(t, g.HasEdge(2, 3), "row ends do not wrap")
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_DirectedKeepsBothDirections(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 8, g.EdgeCount())
	require.True(t, g.HasEdge(1, 0))
	require.True(t, g.HasEdge(0, 1))
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Grid(0,4)", builder.Grid(0, 4), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(NaN)", builder.RandomSparse(3, math.NaN()), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) [][]int {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Adjacency()
	}

	require.Equal(t, build(7), build(7), "same seed must yield identical adjacency")
	require.NotEqual(t, build(7), build(8))
}
