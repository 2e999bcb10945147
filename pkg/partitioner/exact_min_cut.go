package partitioner

import (
	"github.com/lintang-b-s/randcut/pkg/concurrent"
	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
)

// EXACT_MIN_CUT_MAX_VERTICES bounds the graphs ExactMinCut is used on by callers that pick it
// automatically (demo, verification).
const EXACT_MIN_CUT_MAX_VERTICES = 2000

type sinkResult struct {
	sink datastructure.Index
	cut  *Cut
	err  error
}

/*
ExactMinCut computes a global minimum cut with n-1 max flow computations: vertex 0 lies on one side
of every cut, so the minimum over all sinks t of the minimum 0-t cut is the global minimum. The sink
jobs run on a worker pool, each on its own residual network; ties go to the lowest sink.

Used as ground truth for the Karger estimate on small graphs.

time complexity: O(N * M^(3/2)) with unit capacities.
*/
func ExactMinCut(g *datastructure.Graph, workers int) (*Cut, error) {
	n := g.NumberOfVertices()
	if n < 2 {
		return nil, util.NewErrorf(util.ErrConfiguration, util.Fields{"n": n},
			"a cut needs at least 2 vertices")
	}

	sinks := make([]datastructure.Index, 0, n-1)
	for t := datastructure.Index(1); t < datastructure.Index(n); t++ {
		sinks = append(sinks, t)
	}

	computeMinCut := func(t datastructure.Index) sinkResult {
		res := sinkResult{sink: t}
		res.err = util.CatchInvariant(func() error {
			res.cut = NewDinicMaxFlow(g).ComputeMaxflowMinCut(0, t)
			return nil
		})
		return res
	}

	var best *sinkResult
	for _, res := range concurrent.RunAll[datastructure.Index, sinkResult](workers, sinks, computeMinCut) {
		if res.err != nil {
			return nil, res.err
		}
		if best == nil || res.cut.Size() < best.cut.Size() ||
			(res.cut.Size() == best.cut.Size() && res.sink < best.sink) {
			r := res
			best = &r
		}
	}

	if recount := g.CutSize(best.cut.Sides()); recount != best.cut.Size() {
		return nil, util.NewErrorf(util.ErrInvariantViolation,
			util.Fields{"flow": best.cut.Size(), "recount": recount, "sink": best.sink},
			"max flow does not match the cut it induces")
	}
	return best.cut, nil
}
