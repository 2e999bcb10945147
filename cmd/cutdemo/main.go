package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/generator"
	"github.com/lintang-b-s/randcut/pkg/logger"
	"github.com/lintang-b-s/randcut/pkg/partitioner"
	"github.com/lintang-b-s/randcut/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	graphType = flag.String("graph", "random", "example graph: path, triangle, bridged, random")
	graphFile = flag.String("file", "", "read the graph from an edge list file (.bz2 allowed) instead of -graph")
	n         = flag.Int("n", 100, "vertex count for the path and random graphs")
	p         = flag.Float64("p", 0.1, "edge probability for the random graph")
	trials    = flag.Int("trials", 0, "karger trials, 0 uses KARGER_TRIALS")
	seed      = flag.Uint64("seed", 0, "random seed, 0 uses KARGER_SEED")
	strategy  = flag.String("strategy", "", "edge sampling: uniform_edge or vertex_then_neighbor, empty uses KARGER_STRATEGY")
	out       = flag.String("out", "", "write the karger min cut side assignment to this file")
)

func main() {
	flag.Parse()

	cfg, err := util.LoadCutConfig()
	if err != nil {
		panic(err)
	}
	logger, err := logger.NewWithConfig(logger.Config{
		Debug:   cfg.Debug,
		Logfile: cfg.LogFile,
		MaxSize: cfg.LogMaxSizeMB,
		MaxAge:  cfg.LogMaxAgeDays,
	})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *trials == 0 {
		*trials = cfg.Trials
	}
	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *strategy == "" {
		*strategy = cfg.Strategy
	}
	sampling, err := partitioner.ParseSamplingStrategy(*strategy)
	if err != nil {
		panic(err)
	}

	rd := util.NewRand(*seed)

	g, err := buildGraph(rd)
	if err != nil {
		panic(err)
	}
	logger.Info("graph ready", zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()))

	randomCut := partitioner.RandomCut(g, rd)
	fmt.Printf("random cut: %d\n", randomCut.Size())

	maxCut := partitioner.ConditionalExpectationMaxCut(g)
	fmt.Printf("derandomized max cut: %d (guaranteed >= %d/2)\n", maxCut.Size(), g.NumberOfEdges())

	karger := partitioner.NewKarger(g,
		partitioner.WithTrials(*trials),
		partitioner.WithWorkers(cfg.Workers),
		partitioner.WithSeed(*seed),
		partitioner.WithSamplingStrategy(sampling),
		partitioner.WithLogger(logger),
	)
	res, err := karger.MinCut(context.Background())
	if err != nil {
		panic(err)
	}
	left, right := res.PartitionSizes()
	fmt.Printf("karger min cut estimate: %d (%d trials, sides %d/%d)\n", res.Size(), res.GetTrials(), left, right)
	switch {
	case res.GetTrial() == partitioner.NO_TRIAL:
		fmt.Println("graph is disconnected, the min cut is exactly 0")
	case sampling == partitioner.UniformEdge:
		fmt.Printf("probability the estimate is the minimum: >= %.4f\n",
			partitioner.SuccessProbabilityLowerBound(g.NumberOfVertices(), res.GetTrials()))
	}

	if g.NumberOfVertices() <= partitioner.EXACT_MIN_CUT_MAX_VERTICES {
		exact, err := partitioner.ExactMinCut(g, cfg.Workers)
		if err != nil {
			panic(err)
		}
		fmt.Printf("exact min cut (max flow): %d\n", exact.Size())
	}

	if *out != "" {
		if err := res.WriteCut(*out); err != nil {
			panic(err)
		}
		logger.Info("min cut written", zap.String("file", *out))
	}
}

func buildGraph(rd *rand.Rand) (*datastructure.Graph, error) {
	if *graphFile != "" {
		return datastructure.ReadGraph(*graphFile)
	}
	switch *graphType {
	case "path":
		return generator.Path(*n)
	case "triangle":
		return generator.Triangle(), nil
	case "bridged":
		return generator.BridgedTriangles(), nil
	default:
		return generator.ErdosRenyi(*n, *p, rd)
	}
}
