package usecases

import (
	"context"

	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/http/router/controllers"
	"github.com/lintang-b-s/randcut/pkg/partitioner"
	"github.com/lintang-b-s/randcut/pkg/util"
	"go.uber.org/zap"
)

const MAX_TRIALS = 100000

type CutService struct {
	log           *zap.Logger
	defaultTrials int
	workers       int
	samplerRuns   int
}

func NewCutService(log *zap.Logger, defaultTrials, workers, samplerRuns int) *CutService {
	return &CutService{
		log:           log,
		defaultTrials: defaultTrials,
		workers:       workers,
		samplerRuns:   samplerRuns,
	}
}

func (cs *CutService) MaxCut(g *datastructure.Graph) (*partitioner.Cut, error) {
	cut := partitioner.ConditionalExpectationMaxCut(g)
	cs.log.Debug("conditional expectation max cut",
		zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()),
		zap.Int("cut", cut.Size()))
	return cut, nil
}

// RandomCut returns one random cut drawn from seed, and statistics over `samples` further cuts
// drawn from the same stream (the service default when samples is 0).
func (cs *CutService) RandomCut(g *datastructure.Graph, seed uint64, samples int) (*partitioner.Cut, partitioner.CutStatistics, error) {
	if samples == 0 {
		samples = cs.samplerRuns
	}
	rd := util.NewRand(seed)
	cut := partitioner.RandomCut(g, rd)
	stats, err := partitioner.SampleRandomCuts(g, rd, samples)
	if err != nil {
		return nil, partitioner.CutStatistics{}, err
	}
	return cut, stats, nil
}

func (cs *CutService) MinCut(ctx context.Context, g *datastructure.Graph, params controllers.MinCutParams,
	observer partitioner.TrialObserver) (*partitioner.MinCutResult, error) {
	trials := params.Trials
	if trials == 0 && params.Confidence > 0 && g.NumberOfVertices() >= 2 {
		var err error
		trials, err = partitioner.TrialsForConfidence(g.NumberOfVertices(), params.Confidence)
		if err != nil {
			return nil, err
		}
	}
	if trials == 0 {
		trials = cs.defaultTrials
	}
	if trials > MAX_TRIALS {
		return nil, util.NewErrorf(util.ErrConfiguration,
			util.Fields{"trials": trials, "max": MAX_TRIALS, "confidence": params.Confidence},
			"requested confidence needs too many trials")
	}

	karger := partitioner.NewKarger(g,
		partitioner.WithTrials(trials),
		partitioner.WithWorkers(cs.workers),
		partitioner.WithSeed(params.Seed),
		partitioner.WithSamplingStrategy(params.Strategy),
		partitioner.WithLogger(cs.log),
		partitioner.WithTrialObserver(observer),
	)
	return karger.MinCut(ctx)
}
