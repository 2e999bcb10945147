package partitioner

import (
	"context"
	"testing"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/generator"
	"github.com/lintang-b-s/randcut/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMaxflowMinCut(t *testing.T) {
	testCases := []struct {
		name     string
		g        *datastructure.Graph
		s, t     datastructure.Index
		expected int
	}{
		{name: "across the bridge", g: generator.BridgedTriangles(), s: 0, t: 5, expected: 1},
		{name: "inside a triangle", g: generator.BridgedTriangles(), s: 0, t: 1, expected: 2},
		{name: "parallel edges add up", g: multigraph(), s: 0, t: 1, expected: 3},
		{name: "disconnected", g: datastructure.NewGraph(2), s: 0, t: 1, expected: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cut := NewDinicMaxFlow(tt.g).ComputeMaxflowMinCut(tt.s, tt.t)
			assert.Equal(t, tt.expected, cut.Size())
			assert.Equal(t, tt.g.CutSize(cut.Sides()), cut.Size())
			assert.False(t, cut.Side(tt.s))
			assert.True(t, cut.Side(tt.t))
		})
	}
}

func TestExactMinCut(t *testing.T) {
	cycle, err := generator.Cycle(9)
	require.NoError(t, err)
	complete, err := generator.Complete(7)
	require.NoError(t, err)
	barbell, err := generator.Barbell(6)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		g        *datastructure.Graph
		expected int
	}{
		{name: "triangle", g: generator.Triangle(), expected: 2},
		{name: "bridged triangles", g: generator.BridgedTriangles(), expected: 1},
		{name: "cycle", g: cycle, expected: 2},
		{name: "complete", g: complete, expected: 6},
		{name: "barbell", g: barbell, expected: 1},
		{name: "multigraph", g: multigraph(), expected: 2},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cut, err := ExactMinCut(tt.g, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cut.Size())
		})
	}

	_, err = ExactMinCut(datastructure.NewGraph(1), 1)
	assert.ErrorIs(t, err, util.ErrConfiguration)
}

func TestKargerAgreesWithExactMinCut(t *testing.T) {
	rd := util.NewRand(21)
	for i := 0; i < 10; i++ {
		g, err := generator.ErdosRenyi(12, 0.35, rd)
		require.NoError(t, err)

		exact, err := ExactMinCut(g, 2)
		require.NoError(t, err)

		trials, err := TrialsForConfidence(g.NumberOfVertices(), 0.9999)
		require.NoError(t, err)
		res, err := NewKarger(g, WithTrials(trials), WithSeed(uint64(i+1))).MinCut(context.Background())
		require.NoError(t, err)

		assert.Equal(t, exact.Size(), res.Size(), "graph %d", i)
	}
}
