package datastructure

// DisjointSet is a union-find table over 0..n-1 where every merge has a fixed direction:
// MergeInto(v, u) redirects v's set into u's, and u's representative stays the representative.
// Used as the "merged-into" redirection table of edge contraction.
type DisjointSet struct {
	parent []Index
	size   []int
	sets   int
}

func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]Index, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range ds.parent {
		ds.parent[i] = Index(i)
		ds.size[i] = 1
	}
	return ds
}

// Find returns the representative of x, halving the path on the way.
func (ds *DisjointSet) Find(x Index) Index {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// MergeInto merges the set of v into the set of u and returns the surviving representative.
// Returns false when both are already in the same set.
func (ds *DisjointSet) MergeInto(v, u Index) (Index, bool) {
	rv, ru := ds.Find(v), ds.Find(u)
	if rv == ru {
		return ru, false
	}
	ds.parent[rv] = ru
	ds.size[ru] += ds.size[rv]
	ds.sets--
	return ru, true
}

func (ds *DisjointSet) Same(a, b Index) bool {
	return ds.Find(a) == ds.Find(b)
}

// SetSize returns the number of elements in x's set.
func (ds *DisjointSet) SetSize(x Index) int {
	return ds.size[ds.Find(x)]
}

func (ds *DisjointSet) NumberOfSets() int {
	return ds.sets
}
