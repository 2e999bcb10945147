package partitioner

import (
	"container/list"
	"math"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
)

const (
	INVALID_LEVEL = -1
)

type flowArc struct {
	to       datastructure.Index
	capacity int
	flow     int
}

// flowNetwork is the residual network of an undirected multigraph: every non-loop edge (u,v) becomes
// the arcs u->v and v->u with capacity 1, stored at 2i and 2i+1 so each is the reverse of the other.
type flowNetwork struct {
	arcs     []flowArc
	outArcs  [][]int
	level    []int
	lastEdge []int
}

func newFlowNetwork(g *datastructure.Graph) *flowNetwork {
	n := g.NumberOfVertices()
	fn := &flowNetwork{
		arcs:     make([]flowArc, 0, 2*g.NumberOfEdges()),
		outArcs:  make([][]int, n),
		level:    make([]int, n),
		lastEdge: make([]int, n),
	}
	g.ForEachEdge(func(_ int, e datastructure.Edge) {
		if e.IsSelfLoop() {
			return
		}
		u, v := e.GetU(), e.GetV()
		fn.outArcs[u] = append(fn.outArcs[u], len(fn.arcs))
		fn.arcs = append(fn.arcs, flowArc{to: v, capacity: 1})
		fn.outArcs[v] = append(fn.outArcs[v], len(fn.arcs))
		fn.arcs = append(fn.arcs, flowArc{to: u, capacity: 1})
	})
	return fn
}

type DinicMaxFlow struct {
	network *flowNetwork
}

func NewDinicMaxFlow(g *datastructure.Graph) *DinicMaxFlow {
	return &DinicMaxFlow{network: newFlowNetwork(g)}
}

func (dmf *DinicMaxFlow) bfsLevelGraph(source, target datastructure.Index) bool {
	fn := dmf.network
	for v := range fn.level {
		fn.level[v] = INVALID_LEVEL
	}

	levelQueue := list.New()
	levelQueue.PushBack(source)
	fn.level[source] = 0

	for levelQueue.Len() > 0 {
		u := levelQueue.Remove(levelQueue.Front()).(datastructure.Index)
		if u == target {
			break
		}

		for _, a := range fn.outArcs[u] {
			arc := &fn.arcs[a]
			if arc.capacity-arc.flow > 0 && fn.level[arc.to] == INVALID_LEVEL {
				fn.level[arc.to] = fn.level[u] + 1
				levelQueue.PushBack(arc.to)
			}
		}
	}
	return fn.level[target] != INVALID_LEVEL
}

func (dmf *DinicMaxFlow) dfsAugmentPath(u, t datastructure.Index, f int) int {
	if u == t || f == 0 {
		return f
	}

	fn := dmf.network
	for ; fn.lastEdge[u] < len(fn.outArcs[u]); fn.lastEdge[u]++ {
		a := fn.outArcs[u][fn.lastEdge[u]]
		arc := &fn.arcs[a]
		residual := arc.capacity - arc.flow
		if residual <= 0 || fn.level[arc.to] != fn.level[u]+1 {
			continue
		}

		if pushed := dmf.dfsAugmentPath(arc.to, t, util.MinInt(residual, f)); pushed > 0 {
			arc.flow += pushed
			fn.arcs[a^1].flow -= pushed
			return pushed
		}
	}
	return 0
}

func (dmf *DinicMaxFlow) resetCurrentEdges() {
	for i := range dmf.network.lastEdge {
		dmf.network.lastEdge[i] = 0
	}
}

/*
ComputeMaxflowMinCut returns a minimum s-t cut: s and everything still reachable from s in the final
residual network on the false side, the rest on the true side. Its size is the max flow.

time complexity: O(N^2 * M), for unit capacities O(M * min(N^(2/3), M^(1/2)))
*/
func (dmf *DinicMaxFlow) ComputeMaxflowMinCut(s, t datastructure.Index) *Cut {
	maxFlow := 0
	for dmf.bfsLevelGraph(s, t) {
		dmf.resetCurrentEdges()
		for {
			flow := dmf.dfsAugmentPath(s, t, math.MaxInt)
			if flow == 0 {
				break
			}
			maxFlow += flow
		}
	}

	// the final bfs stopped without reaching t, so level marks the residual reachable set of s
	side := make([]bool, len(dmf.network.level))
	for u := range side {
		side[u] = dmf.network.level[u] == INVALID_LEVEL
	}
	return NewCut(side, maxFlow)
}
