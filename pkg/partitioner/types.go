package partitioner

import "github.com/lintang-b-s/randcut/pkg/datastructure"

// Cut is a bipartition of the graph's vertices plus the number of edges crossing it.
type Cut struct {
	flags []bool // side of each vertex; false is the first label
	size  int
}

func NewCut(flags []bool, size int) *Cut {
	return &Cut{flags: flags, size: size}
}

func (c *Cut) Side(u datastructure.Index) bool {
	return c.flags[u]
}

// Sides returns the side assignment. Callers must not modify it.
func (c *Cut) Sides() []bool {
	return c.flags
}

func (c *Cut) Size() int {
	return c.size
}

// PartitionSizes returns how many vertices carry the first (false) and second (true) label.
func (c *Cut) PartitionSizes() (int, int) {
	second := 0
	for _, f := range c.flags {
		if f {
			second++
		}
	}
	return len(c.flags) - second, second
}

// SidesByIdentifier maps the assignment back to identifiers, ids[i] being the identifier of
// dense vertex i (as returned by datastructure.NewGraphFromAdjacencyMap).
func (c *Cut) SidesByIdentifier(ids []uint32) map[uint32]bool {
	sides := make(map[uint32]bool, len(ids))
	for i, id := range ids {
		sides[id] = c.flags[i]
	}
	return sides
}

// MinCutResult is the smallest cut seen over all contraction trials.
type MinCutResult struct {
	*Cut
	trial  int // index of the first trial that found the cut, -1 when no trial ran
	trials int
}

func (r *MinCutResult) GetTrial() int {
	return r.trial
}

func (r *MinCutResult) GetTrials() int {
	return r.trials
}

// TrialResult is reported to a TrialObserver once a contraction trial finishes.
type TrialResult struct {
	Trial   int
	CutSize int
}

const (
	NO_TRIAL = -1
)
