package partitioner

import (
	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
)

/*
ConditionalExpectationMaxCut derandomizes RandomCut with the method of conditional expectations.

Vertices are fixed in order 0..n-1. With the sides of 0..v-1 fixed and the rest still random,
every edge to an unassigned vertex crosses with probability 1/2 whatever side v takes, so the
conditional expectation only depends on v's edges to already assigned neighbors. v takes the label
opposite to the majority of those neighbors (ties, including 0/0, go to false), which never lowers
the conditional expectation. It starts at |E|/2, hence 2*cut >= |E|.

A self-loop never crosses any cut, so with self-loops present the bound is taken over the other
edges only.

time complexity: O(N + M)
*/
func ConditionalExpectationMaxCut(g *datastructure.Graph) *Cut {
	n := g.NumberOfVertices()

	var (
		side     = make([]bool, n)
		assigned = make([]bool, n)
		// neighbors already fixed on each label, one count per parallel edge
		trueNeighbors  = make([]int, n)
		falseNeighbors = make([]int, n)
	)

	for v := datastructure.Index(0); v < datastructure.Index(n); v++ {
		crossIfFalse := trueNeighbors[v]
		crossIfTrue := falseNeighbors[v]

		side[v] = crossIfTrue > crossIfFalse
		assigned[v] = true

		g.ForNeighborsOf(v, func(w datastructure.Index) {
			if assigned[w] {
				return
			}
			if side[v] {
				trueNeighbors[w]++
			} else {
				falseNeighbors[w]++
			}
		})
	}

	cut := g.CutSize(side)
	cuttable := g.NumberOfEdges() - g.NumberOfSelfLoops()
	util.AssertInvariant(2*cut >= cuttable,
		util.Fields{"cut": cut, "edges": g.NumberOfEdges(), "self_loops": g.NumberOfEdges() - cuttable},
		"conditional expectation max cut fell below |E|/2")

	return NewCut(side, cut)
}
