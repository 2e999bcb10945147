package datastructure

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToSimpleGraph projects g onto a gonum simple undirected graph. Parallel edges collapse into one
// and self-loops are dropped, so only use it for connectivity questions.
func (g *Graph) ToSimpleGraph() *simple.UndirectedGraph {
	sg := simple.NewUndirectedGraph()
	for u := 0; u < g.n; u++ {
		sg.AddNode(simple.Node(int64(u)))
	}
	for _, e := range g.edges {
		if e.IsSelfLoop() {
			continue
		}
		from, to := int64(e.u), int64(e.v)
		if sg.HasEdgeBetween(from, to) {
			continue
		}
		sg.SetEdge(sg.NewEdge(simple.Node(from), simple.Node(to)))
	}
	return sg
}

// ConnectedComponents returns the vertex sets of g's connected components, each sorted, ordered
// by their smallest vertex.
func (g *Graph) ConnectedComponents() [][]Index {
	ccs := topo.ConnectedComponents(g.ToSimpleGraph())

	components := make([][]Index, 0, len(ccs))
	for _, cc := range ccs {
		component := make([]Index, 0, len(cc))
		for _, node := range cc {
			component = append(component, Index(node.ID()))
		}
		sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

func (g *Graph) IsConnected() bool {
	if g.n <= 1 {
		return true
	}
	return len(g.ConnectedComponents()) == 1
}
