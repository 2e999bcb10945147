package generator

import (
	"math"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
	"golang.org/x/exp/rand"
)

// Path returns 0-1-...-(n-1). Min cut 1 for n >= 2.
func Path(n int) (*datastructure.Graph, error) {
	if n < 1 {
		return nil, tooFewVertices("path", n, 1)
	}
	g := datastructure.NewGraph(n)
	for u := 0; u+1 < n; u++ {
		g.AddEdge(datastructure.Index(u), datastructure.Index(u+1))
	}
	return g, nil
}

// Cycle returns the n-cycle. Min cut 2.
func Cycle(n int) (*datastructure.Graph, error) {
	if n < 3 {
		return nil, tooFewVertices("cycle", n, 3)
	}
	g := datastructure.NewGraph(n)
	for u := 0; u < n; u++ {
		g.AddEdge(datastructure.Index(u), datastructure.Index((u+1)%n))
	}
	return g, nil
}

// Complete returns K_n. Min cut n-1.
func Complete(n int) (*datastructure.Graph, error) {
	if n < 1 {
		return nil, tooFewVertices("complete", n, 1)
	}
	g := datastructure.NewGraph(n)
	addClique(g, 0, n)
	return g, nil
}

func Triangle() *datastructure.Graph {
	g := datastructure.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	return g
}

// BridgedTriangles returns triangles {0,1,2} and {3,4,5} joined by the bridge (2,3): 7 edges,
// min cut 1.
func BridgedTriangles() *datastructure.Graph {
	g := datastructure.NewGraph(6)
	for _, e := range [][2]datastructure.Index{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {2, 3}} {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// Barbell returns two K_k joined by a single edge between vertex k-1 and vertex k. Min cut 1.
func Barbell(k int) (*datastructure.Graph, error) {
	if k < 2 {
		return nil, tooFewVertices("barbell", k, 2)
	}
	g := datastructure.NewGraph(2 * k)
	addClique(g, 0, k)
	addClique(g, k, 2*k)
	g.AddEdge(datastructure.Index(k-1), datastructure.Index(k))
	return g, nil
}

// ErdosRenyi samples G(n, p): every unordered pair {u, v}, u < v, becomes an edge independently
// with probability p. Pairs are visited in (u asc, v asc) order so a seeded rd is reproducible.
func ErdosRenyi(n int, p float64, rd *rand.Rand) (*datastructure.Graph, error) {
	if n < 1 {
		return nil, tooFewVertices("erdos_renyi", n, 1)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, util.NewErrorf(util.ErrConfiguration, util.Fields{"generator": "erdos_renyi", "p": p},
			"edge probability must be in [0, 1]")
	}
	g := datastructure.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rd.Float64() < p {
				g.AddEdge(datastructure.Index(u), datastructure.Index(v))
			}
		}
	}
	return g, nil
}

func addClique(g *datastructure.Graph, from, to int) {
	for u := from; u < to; u++ {
		for v := u + 1; v < to; v++ {
			g.AddEdge(datastructure.Index(u), datastructure.Index(v))
		}
	}
}

func tooFewVertices(generator string, n, minN int) error {
	return util.NewErrorf(util.ErrConfiguration, util.Fields{"generator": generator, "n": n, "min": minN},
		"too few vertices")
}
