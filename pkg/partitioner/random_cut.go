package partitioner

import (
	"math"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// RandomCut puts every vertex on a side chosen by an independent fair coin. Each edge crosses the
// cut with probability 1/2, so the expected cut size is |E|/2; a single call guarantees nothing.
func RandomCut(g *datastructure.Graph, rd *rand.Rand) *Cut {
	side := make([]bool, g.NumberOfVertices())
	for v := range side {
		side[v] = rd.Intn(2) == 1
	}
	return NewCut(side, g.CutSize(side))
}

type CutStatistics struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     int
	Max     int
	// Expected is |E|/2, the value Mean converges to.
	Expected float64
}

// SampleRandomCuts draws `samples` independent random cuts and summarizes their sizes.
func SampleRandomCuts(g *datastructure.Graph, rd *rand.Rand, samples int) (CutStatistics, error) {
	if samples < 1 {
		return CutStatistics{}, util.NewErrorf(util.ErrConfiguration, util.Fields{"samples": samples},
			"at least one sample is required")
	}

	sizes := make([]float64, samples)
	minCut, maxCut := math.MaxInt, 0
	for i := 0; i < samples; i++ {
		c := RandomCut(g, rd).Size()
		sizes[i] = float64(c)
		minCut = util.MinInt(minCut, c)
		maxCut = util.MaxInt(maxCut, c)
	}

	mean, std := stat.MeanStdDev(sizes, nil)
	if samples == 1 {
		std = 0
	}
	return CutStatistics{
		Samples:  samples,
		Mean:     mean,
		StdDev:   std,
		Min:      minCut,
		Max:      maxCut,
		Expected: float64(g.NumberOfEdges()) / 2,
	}, nil
}
