package controllers

import (
	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/partitioner"
	"github.com/lintang-b-s/randcut/pkg/util"
)

// MINCUT_MAX_VERTICES bounds the graphs accepted by the contraction endpoints. A single Karger
// trial is quadratic in the vertex count.
const MINCUT_MAX_VERTICES = 5000

type graphRequest struct {
	N     int         `json:"n" validate:"required,min=1,max=100000"`
	Edges [][2]uint32 `json:"edges" validate:"max=1000000"`
}

func (gr graphRequest) toGraph() (*datastructure.Graph, error) {
	edges := make([]datastructure.Edge, 0, len(gr.Edges))
	for _, e := range gr.Edges {
		edges = append(edges, datastructure.NewEdge(datastructure.Index(e[0]), datastructure.Index(e[1])))
	}
	return datastructure.NewGraphFromEdges(gr.N, edges)
}

type maxCutRequest struct {
	graphRequest
}

type randomCutRequest struct {
	graphRequest
	Seed    uint64 `json:"seed"`
	Samples int    `json:"samples" validate:"omitempty,min=1,max=100000"`
}

type minCutRequest struct {
	graphRequest
	Trials     int     `json:"trials" validate:"omitempty,min=1,max=100000"`
	Confidence float64 `json:"confidence" validate:"omitempty,gt=0,lt=1"`
	Seed       uint64  `json:"seed"`
	Strategy   string  `json:"strategy" validate:"omitempty,oneof=uniform_edge vertex_then_neighbor"`
}

func (request minCutRequest) toParams() (*datastructure.Graph, MinCutParams, error) {
	if request.N > MINCUT_MAX_VERTICES {
		return nil, MinCutParams{}, util.NewErrorf(util.ErrConfiguration,
			util.Fields{"n": request.N, "max": MINCUT_MAX_VERTICES}, "graph too large for karger min cut")
	}
	g, err := request.toGraph()
	if err != nil {
		return nil, MinCutParams{}, err
	}
	strategy, err := partitioner.ParseSamplingStrategy(request.Strategy)
	if err != nil {
		return nil, MinCutParams{}, err
	}
	return g, MinCutParams{
		Trials:     request.Trials,
		Confidence: request.Confidence,
		Seed:       request.Seed,
		Strategy:   strategy,
	}, nil
}

type cutResponse struct {
	CutSize      int    `json:"cut_size"`
	Sides        []bool `json:"sides"`
	PartitionOne int    `json:"partition_one"`
	PartitionTwo int    `json:"partition_two"`
}

func newCutResponse(cut *partitioner.Cut) cutResponse {
	one, two := cut.PartitionSizes()
	return cutResponse{
		CutSize:      cut.Size(),
		Sides:        cut.Sides(),
		PartitionOne: one,
		PartitionTwo: two,
	}
}

type maxCutResponse struct {
	cutResponse
	Edges      int     `json:"edges"`
	LowerBound float64 `json:"lower_bound"`
}

func NewMaxCutResponse(cut *partitioner.Cut, edges int) maxCutResponse {
	return maxCutResponse{
		cutResponse: newCutResponse(cut),
		Edges:       edges,
		LowerBound:  float64(edges) / 2,
	}
}

type statisticsResponse struct {
	Samples  int     `json:"samples"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Expected float64 `json:"expected"`
}

type randomCutResponse struct {
	cutResponse
	Statistics statisticsResponse `json:"statistics"`
}

func NewRandomCutResponse(cut *partitioner.Cut, stats partitioner.CutStatistics) randomCutResponse {
	return randomCutResponse{
		cutResponse: newCutResponse(cut),
		Statistics: statisticsResponse{
			Samples:  stats.Samples,
			Mean:     stats.Mean,
			StdDev:   stats.StdDev,
			Min:      stats.Min,
			Max:      stats.Max,
			Expected: stats.Expected,
		},
	}
}

type minCutResponse struct {
	cutResponse
	Trials                       int     `json:"trials"`
	FoundInTrial                 int     `json:"found_in_trial"`
	Strategy                     string  `json:"strategy"`
	SuccessProbabilityLowerBound float64 `json:"success_probability_lower_bound"`
}

func NewMinCutResponse(res *partitioner.MinCutResult, n int, strategy partitioner.SamplingStrategy) minCutResponse {
	bound := 1.0
	if res.GetTrial() != partitioner.NO_TRIAL {
		bound = 0
		if strategy == partitioner.UniformEdge {
			bound = partitioner.SuccessProbabilityLowerBound(n, res.GetTrials())
		}
	}
	return minCutResponse{
		cutResponse:                  newCutResponse(res.Cut),
		Trials:                       res.GetTrials(),
		FoundInTrial:                 res.GetTrial(),
		Strategy:                     strategy.String(),
		SuccessProbabilityLowerBound: bound,
	}
}

type trialMessage struct {
	Type    string `json:"type"`
	Trial   int    `json:"trial"`
	CutSize int    `json:"cut_size"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
