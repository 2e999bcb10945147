package controllers

import (
	"context"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/partitioner"
)

type CutService interface {
	MaxCut(g *datastructure.Graph) (*partitioner.Cut, error)
	RandomCut(g *datastructure.Graph, seed uint64, samples int) (*partitioner.Cut, partitioner.CutStatistics, error)
	MinCut(ctx context.Context, g *datastructure.Graph, params MinCutParams,
		observer partitioner.TrialObserver) (*partitioner.MinCutResult, error)
}

// MinCutParams are the amplification settings of a min cut request. Zero values select the
// service defaults; Confidence is only used when Trials is zero.
type MinCutParams struct {
	Trials     int
	Confidence float64
	Seed       uint64
	Strategy   partitioner.SamplingStrategy
}
