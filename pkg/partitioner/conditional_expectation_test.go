package partitioner

import (
	"testing"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/generator"
	"github.com/lintang-b-s/randcut/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalExpectationMaxCut(t *testing.T) {
	path, err := generator.Path(5)
	require.NoError(t, err)
	cycle, err := generator.Cycle(5)
	require.NoError(t, err)
	complete, err := generator.Complete(6)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		g           *datastructure.Graph
		expectedMin int
		expected    int // exact result of the greedy, -1 when only the bound is checked
	}{
		{name: "bridged triangles", g: generator.BridgedTriangles(), expectedMin: 4, expected: -1},
		// bipartite inputs are cut completely when visited in path order
		{name: "path", g: path, expectedMin: 2, expected: 4},
		{name: "triangle", g: generator.Triangle(), expectedMin: 2, expected: 2},
		{name: "odd cycle", g: cycle, expectedMin: 3, expected: 4},
		{name: "complete 6", g: complete, expectedMin: 8, expected: -1},
		{name: "no edges", g: datastructure.NewGraph(4), expectedMin: 0, expected: 0},
		{name: "no vertices", g: datastructure.NewGraph(0), expectedMin: 0, expected: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cut := ConditionalExpectationMaxCut(tt.g)

			assert.Equal(t, tt.g.CutSize(cut.Sides()), cut.Size())
			assert.GreaterOrEqual(t, cut.Size(), tt.expectedMin)
			assert.GreaterOrEqual(t, 2*cut.Size(), tt.g.NumberOfEdges())
			if tt.expected >= 0 {
				assert.Equal(t, tt.expected, cut.Size())
			}
		})
	}
}

func TestConditionalExpectationMaxCutIsDeterministic(t *testing.T) {
	g, err := generator.ErdosRenyi(60, 0.2, util.NewRand(3))
	require.NoError(t, err)

	a := ConditionalExpectationMaxCut(g)
	b := ConditionalExpectationMaxCut(g)
	assert.Equal(t, a.Sides(), b.Sides())
}

func TestConditionalExpectationMaxCutSelfLoops(t *testing.T) {
	// two self-loops and one real edge: only the real edge can be cut
	g := datastructure.NewGraph(2)
	g.AddEdge(0, 0)
	g.AddEdge(1, 1)
	g.AddEdge(0, 1)

	var cut *Cut
	require.NotPanics(t, func() { cut = ConditionalExpectationMaxCut(g) })
	assert.Equal(t, 1, cut.Size())
}

func TestConditionalExpectationMaxCutRandomGraphs(t *testing.T) {
	rd := util.NewRand(11)
	for _, n := range []int{1, 2, 5, 17, 40, 90} {
		for _, p := range []float64{0, 0.05, 0.3, 0.7, 1} {
			g, err := generator.ErdosRenyi(n, p, rd)
			require.NoError(t, err)

			cut := ConditionalExpectationMaxCut(g)
			assert.GreaterOrEqual(t, 2*cut.Size(), g.NumberOfEdges(), "n=%d p=%.2f", n, p)
		}
	}
}

// FuzzConditionalExpectationMaxCut reads pairs of bytes as edges over up to 16 vertices, so
// parallel edges and self-loops are generated too.
func FuzzConditionalExpectationMaxCut(f *testing.F) {
	f.Add(uint8(3), []byte{0, 1, 1, 2, 2, 0})
	f.Add(uint8(6), []byte{0, 1, 1, 2, 2, 0, 3, 4, 4, 5, 5, 3, 2, 3})
	f.Add(uint8(2), []byte{0, 0, 1, 1, 0, 1, 0, 1})
	f.Add(uint8(5), []byte{})

	f.Fuzz(func(t *testing.T, nv uint8, data []byte) {
		n := int(nv%16) + 1
		g := datastructure.NewGraph(n)
		for i := 0; i+1 < len(data); i += 2 {
			g.AddEdge(datastructure.Index(int(data[i])%n), datastructure.Index(int(data[i+1])%n))
		}

		cut := ConditionalExpectationMaxCut(g)
		if cut.Size() != g.CutSize(cut.Sides()) {
			t.Fatalf("reported cut %d, recount %d", cut.Size(), g.CutSize(cut.Sides()))
		}
		if 2*cut.Size() < g.NumberOfEdges()-g.NumberOfSelfLoops() {
			t.Fatalf("cut %d below half of %d cuttable edges", cut.Size(), g.NumberOfEdges()-g.NumberOfSelfLoops())
		}
	})
}
