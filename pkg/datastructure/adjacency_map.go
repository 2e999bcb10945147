package datastructure

import (
	"sort"

	"github.com/lintang-b-s/randcut/pkg/util"
)

// NewGraphFromAdjacencyMap converts an identifier-keyed adjacency map into a dense Graph.
// Identifiers are assigned dense indices in ascending order; the returned slice maps a dense
// index back to its identifier.
//
// Every neighbor identifier must have its own key, and the map must be symmetric: if u lists v
// k times then v lists u k times (k parallel edges). Entries of u in adj[u] are dropped, a
// self-loop never crosses a cut.
func NewGraphFromAdjacencyMap(adj map[uint32][]uint32) (*Graph, []uint32, error) {
	ids := make([]uint32, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dense := make(map[uint32]Index, len(ids))
	for i, id := range ids {
		dense[id] = Index(i)
	}

	type pair struct{ from, to uint32 }
	multiplicity := make(map[pair]int)
	for _, u := range ids {
		for _, v := range adj[u] {
			if _, ok := dense[v]; !ok {
				return nil, nil, util.NewErrorf(util.ErrMalformedInput,
					util.Fields{"vertex": u, "neighbor": v},
					"neighbor identifier has no adjacency entry")
			}
			if u == v {
				continue
			}
			multiplicity[pair{u, v}]++
		}
	}

	g := NewGraph(len(ids))
	for _, u := range ids {
		// walk neighbors in the caller's order so edge insertion order is stable
		added := make(map[uint32]bool)
		for _, v := range adj[u] {
			if u >= v || added[v] {
				continue
			}
			added[v] = true
			forward, backward := multiplicity[pair{u, v}], multiplicity[pair{v, u}]
			if forward != backward {
				return nil, nil, util.NewErrorf(util.ErrMalformedInput,
					util.Fields{"u": u, "v": v, "u_lists_v": forward, "v_lists_u": backward},
					"adjacency map is not symmetric")
			}
			for k := 0; k < forward; k++ {
				g.AddEdge(dense[u], dense[v])
			}
		}
		// v < u entries are handled from v's side; a one-sided listing shows up there too
		for _, v := range adj[u] {
			if v < u && multiplicity[pair{v, u}] == 0 {
				return nil, nil, util.NewErrorf(util.ErrMalformedInput,
					util.Fields{"u": v, "v": u, "u_lists_v": 0, "v_lists_u": multiplicity[pair{u, v}]},
					"adjacency map is not symmetric")
			}
		}
	}

	return g, ids, nil
}
