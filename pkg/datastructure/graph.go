package datastructure

import (
	"github.com/lintang-b-s/randcut/pkg/util"
)

type Index uint32

// Edge is an undirected vertex pair. (u, v) and (v, u) describe the same edge.
type Edge struct {
	u Index
	v Index
}

func NewEdge(u, v Index) Edge {
	return Edge{u: u, v: v}
}

func (e Edge) GetU() Index {
	return e.u
}

func (e Edge) GetV() Index {
	return e.v
}

func (e Edge) IsSelfLoop() bool {
	return e.u == e.v
}

// Graph is an undirected multigraph over vertices 0..n-1. Parallel edges and self-loops are
// kept as given. adj stays symmetric with edges: every edge (u,v) contributes v to adj[u] and
// u to adj[v], so the adjacency lists hold exactly 2*len(edges) entries.
type Graph struct {
	n     int
	adj   [][]Index
	edges []Edge
}

func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		n:     n,
		adj:   make([][]Index, n),
		edges: make([]Edge, 0),
	}
}

// NewGraphFromEdges builds a graph on n vertices and rejects edges whose endpoints are out of range.
func NewGraphFromEdges(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, util.NewErrorf(util.ErrMalformedInput, util.Fields{"n": n},
			"vertex count must not be negative")
	}
	g := NewGraph(n)
	g.edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if err := g.AddEdgeChecked(e.u, e.v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddEdge appends (u, v) without any validation. Endpoints must be < NumberOfVertices().
func (g *Graph) AddEdge(u, v Index) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges = append(g.edges, NewEdge(u, v))
}

func (g *Graph) AddEdgeChecked(u, v Index) error {
	if int(u) >= g.n || int(v) >= g.n {
		return util.NewErrorf(util.ErrMalformedInput,
			util.Fields{"u": u, "v": v, "n": g.n, "edge": len(g.edges)},
			"edge endpoint out of range")
	}
	g.AddEdge(u, v)
	return nil
}

func (g *Graph) NumberOfVertices() int {
	return g.n
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) NumberOfSelfLoops() int {
	loops := 0
	for _, e := range g.edges {
		if e.IsSelfLoop() {
			loops++
		}
	}
	return loops
}

func (g *Graph) GetEdge(i int) Edge {
	return g.edges[i]
}

func (g *Graph) GetEdges() []Edge {
	return g.edges
}

func (g *Graph) ForEachEdge(handle func(i int, e Edge)) {
	for i, e := range g.edges {
		handle(i, e)
	}
}

func (g *Graph) ForNeighborsOf(u Index, handle func(v Index)) {
	for _, v := range g.adj[u] {
		handle(v)
	}
}

// GetNeighbors returns u's neighbor list, one entry per incident edge. Callers must not modify it.
func (g *Graph) GetNeighbors(u Index) []Index {
	return g.adj[u]
}

func (g *Graph) Degree(u Index) int {
	return len(g.adj[u])
}

// CutSize counts edges whose endpoints carry different labels. side must have one entry per vertex.
func (g *Graph) CutSize(side []bool) int {
	cut := 0
	for _, e := range g.edges {
		if side[e.u] != side[e.v] {
			cut++
		}
	}
	return cut
}

func (g *Graph) CutSizeChecked(side []bool) (int, error) {
	if len(side) != g.n {
		return 0, util.NewErrorf(util.ErrMalformedInput,
			util.Fields{"assignment": len(side), "n": g.n},
			"assignment length does not match vertex count")
	}
	return g.CutSize(side), nil
}

func (g *Graph) Clone() *Graph {
	adj := make([][]Index, g.n)
	for u := range g.adj {
		adj[u] = append([]Index(nil), g.adj[u]...)
	}
	return &Graph{
		n:     g.n,
		adj:   adj,
		edges: append([]Edge(nil), g.edges...),
	}
}
