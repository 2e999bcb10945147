package partitioner

import (
	"context"
	"strings"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
	"golang.org/x/exp/rand"
)

// SamplingStrategy selects how a contraction trial picks the next edge to contract.
type SamplingStrategy uint8

const (
	// UniformEdge picks every remaining edge with the same probability, as Karger's analysis
	// requires: a super-node is chosen with probability proportional to its incident edge count.
	UniformEdge SamplingStrategy = iota
	// VertexThenNeighbor picks a surviving super-node uniformly, then one of its edge endpoints
	// uniformly. Only uniform over edges when every super-node has the same degree, so the
	// 2/(n(n-1)) per-trial success bound does not hold for it.
	VertexThenNeighbor
)

func (s SamplingStrategy) String() string {
	switch s {
	case UniformEdge:
		return "uniform_edge"
	case VertexThenNeighbor:
		return "vertex_then_neighbor"
	default:
		return "unknown"
	}
}

func ParseSamplingStrategy(s string) (SamplingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform_edge", "uniform":
		return UniformEdge, nil
	case "vertex_then_neighbor", "vertex":
		return VertexThenNeighbor, nil
	default:
		return UniformEdge, util.NewErrorf(util.ErrConfiguration, util.Fields{"strategy": s},
			"unknown sampling strategy")
	}
}

/*
contractionState is the private, mutable state of one contraction trial.

Super-nodes are addressed by the dense index of their representative vertex. neighbors[s] is the
neighbor multiset of super-node s; its entries are original vertex ids resolved through the
merged-into table ds, so merging v into u never rewrites other super-nodes' lists.

invariant: sum(len(neighbors[s])) over surviving s == 2*remainingEdges, and no list of a surviving
super-node holds an entry resolving to itself.
*/
type contractionState struct {
	graph          *datastructure.Graph
	ds             *datastructure.DisjointSet
	neighbors      [][]datastructure.Index
	survivors      []datastructure.Index
	position       []int // position of a representative in survivors
	remainingEdges int
}

func newContractionState(g *datastructure.Graph) *contractionState {
	n := g.NumberOfVertices()
	cs := &contractionState{
		graph:     g,
		ds:        datastructure.NewDisjointSet(n),
		neighbors: make([][]datastructure.Index, n),
		survivors: make([]datastructure.Index, n),
		position:  make([]int, n),
	}

	entries := 0
	for u := datastructure.Index(0); u < datastructure.Index(n); u++ {
		adj := g.GetNeighbors(u)
		list := make([]datastructure.Index, 0, len(adj))
		for _, v := range adj {
			if v != u {
				list = append(list, v)
			}
		}
		cs.neighbors[u] = list
		cs.survivors[u] = u
		cs.position[u] = int(u)
		entries += len(list)
	}
	cs.remainingEdges = entries / 2
	return cs
}

func (cs *contractionState) numberOfSurvivors() int {
	return len(cs.survivors)
}

// pickEdge returns the endpoints (as super-nodes) of the next edge to contract. remainingEdges
// must be positive.
func (cs *contractionState) pickEdge(rd *rand.Rand, strategy SamplingStrategy) (datastructure.Index, datastructure.Index) {
	switch strategy {
	case VertexThenNeighbor:
		nonEmpty := 0
		for _, s := range cs.survivors {
			if len(cs.neighbors[s]) > 0 {
				nonEmpty++
			}
		}
		k := rd.Intn(nonEmpty)
		for _, s := range cs.survivors {
			if len(cs.neighbors[s]) == 0 {
				continue
			}
			if k == 0 {
				list := cs.neighbors[s]
				return s, cs.ds.Find(list[rd.Intn(len(list))])
			}
			k--
		}
	default:
		// each remaining edge owns exactly two list entries, one in each endpoint's list
		r := rd.Intn(2 * cs.remainingEdges)
		for _, s := range cs.survivors {
			list := cs.neighbors[s]
			if r < len(list) {
				return s, cs.ds.Find(list[r])
			}
			r -= len(list)
		}
	}

	util.AssertInvariant(false, util.Fields{"remaining_edges": cs.remainingEdges, "survivors": len(cs.survivors)},
		"edge selection ran past the neighbor lists")
	return 0, 0
}

// merge contracts super-node v into super-node u.
func (cs *contractionState) merge(v, u datastructure.Index) {
	before := len(cs.survivors)

	cs.neighbors[u] = append(cs.neighbors[u], cs.neighbors[v]...)
	cs.neighbors[v] = nil
	root, merged := cs.ds.MergeInto(v, u)
	util.AssertInvariant(merged && root == u, util.Fields{"u": u, "v": v},
		"contracted edge joins a super-node with itself")

	last := len(cs.survivors) - 1
	pos := cs.position[v]
	cs.survivors[pos] = cs.survivors[last]
	cs.position[cs.survivors[pos]] = pos
	cs.survivors = cs.survivors[:last]
	cs.position[v] = -1

	// drop self-loops: entries that now resolve to u, i.e. the former u-v parallel edges
	kept := cs.neighbors[u][:0]
	removed := 0
	for _, x := range cs.neighbors[u] {
		if cs.ds.Find(x) == u {
			removed++
			continue
		}
		kept = append(kept, x)
	}
	cs.neighbors[u] = kept
	cs.remainingEdges -= removed / 2

	util.AssertInvariant(removed >= 2 && removed%2 == 0,
		util.Fields{"u": u, "v": v, "removed": removed}, "self-loop entries after a merge must come in pairs")
	util.AssertInvariant(len(cs.survivors) == before-1,
		util.Fields{"before": before, "after": len(cs.survivors)}, "surviving super-node count did not drop by one")
}

// CONTRACT_CANCEL_CHECK_INTERVAL is the number of merges between two checks of the trial context.
const CONTRACT_CANCEL_CHECK_INTERVAL = 64

// contract merges super-nodes until two remain, or until no edge is left (disconnected input).
// It stops early with ctx.Err() once ctx is done.
func (cs *contractionState) contract(ctx context.Context, rd *rand.Rand, strategy SamplingStrategy) error {
	for merges := 0; len(cs.survivors) > 2 && cs.remainingEdges > 0; merges++ {
		if merges%CONTRACT_CANCEL_CHECK_INTERVAL == 0 && util.StopConcurrentOperation(ctx) {
			return ctx.Err()
		}
		u, v := cs.pickEdge(rd, strategy)
		cs.merge(v, u)
	}
	return nil
}

// cut puts the super-node of survivors[0] on the false side and everything else on the true side.
// With two survivors the edges between them are exactly survivors[0]'s neighbor list; with more
// survivors no edge is left and the cut is empty.
func (cs *contractionState) cut() *Cut {
	n := cs.graph.NumberOfVertices()
	first := cs.survivors[0]

	side := make([]bool, n)
	for x := datastructure.Index(0); x < datastructure.Index(n); x++ {
		side[x] = cs.ds.Find(x) != first
	}

	size := len(cs.neighbors[first])
	if len(cs.survivors) == 2 {
		util.AssertInvariant(size == len(cs.neighbors[cs.survivors[1]]),
			util.Fields{"first": size, "second": len(cs.neighbors[cs.survivors[1]])},
			"the two remaining super-nodes disagree on the cut size")
	}
	util.AssertInvariant(size == cs.graph.CutSize(side),
		util.Fields{"contracted": size, "recount": cs.graph.CutSize(side)},
		"contraction result is not a cut of the input graph")

	return NewCut(side, size)
}

// KargerTrial runs one randomized edge contraction down to two super-nodes and returns the cut
// between them. The input graph is only read.
//
// time complexity: O(N * (N + M) * α(N)) for UniformEdge, the linear scan per pick dominates.
func KargerTrial(g *datastructure.Graph, rd *rand.Rand, strategy SamplingStrategy) (*Cut, error) {
	return kargerTrial(context.Background(), g, rd, strategy)
}

func kargerTrial(ctx context.Context, g *datastructure.Graph, rd *rand.Rand, strategy SamplingStrategy) (*Cut, error) {
	if g.NumberOfVertices() < 2 {
		return nil, util.NewErrorf(util.ErrConfiguration, util.Fields{"n": g.NumberOfVertices()},
			"a cut needs at least 2 vertices")
	}

	cs := newContractionState(g)
	if err := cs.contract(ctx, rd, strategy); err != nil {
		return nil, err
	}
	return cs.cut(), nil
}
