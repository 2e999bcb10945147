package main

import (
	"flag"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/generator"
	"github.com/lintang-b-s/randcut/pkg/logger"
	"github.com/lintang-b-s/randcut/pkg/util"
	"go.uber.org/zap"
)

var (
	graphType = flag.String("graph", "random", "graph to generate: path, cycle, complete, barbell, bridged, random")
	n         = flag.Int("n", 100, "vertex count (clique size for barbell)")
	p         = flag.Float64("p", 0.1, "edge probability for the random graph")
	seed      = flag.Uint64("seed", 0, "random seed")
	out       = flag.String("out", "./data/graph.txt.bz2", "output edge list, bzip2 compressed when the name ends in .bz2")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	var g *datastructure.Graph
	switch *graphType {
	case "path":
		g, err = generator.Path(*n)
	case "cycle":
		g, err = generator.Cycle(*n)
	case "complete":
		g, err = generator.Complete(*n)
	case "barbell":
		g, err = generator.Barbell(*n)
	case "bridged":
		g = generator.BridgedTriangles()
	default:
		g, err = generator.ErdosRenyi(*n, *p, util.NewRand(*seed))
	}
	if err != nil {
		panic(err)
	}

	if err := g.WriteGraph(*out); err != nil {
		panic(err)
	}
	logger.Info("graph written", zap.String("file", *out), zap.String("graph", *graphType),
		zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()))
}
