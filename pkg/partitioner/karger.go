package partitioner

import (
	"context"
	"runtime"
	"time"

	"github.com/lintang-b-s/randcut/pkg/concurrent"
	"github.com/lintang-b-s/randcut/pkg/datastructure"
	"github.com/lintang-b-s/randcut/pkg/util"
	"go.uber.org/zap"
)

// TrialObserver is called once per finished trial. Trials run on several workers, so the observer
// is called concurrently and in completion order.
type TrialObserver func(TrialResult)

type Karger struct {
	graph    *datastructure.Graph
	trials   int
	workers  int
	seed     uint64
	strategy SamplingStrategy
	logger   *zap.Logger
	observer TrialObserver
}

type KargerOption func(*Karger)

func WithTrials(trials int) KargerOption {
	return func(k *Karger) { k.trials = trials }
}

func WithWorkers(workers int) KargerOption {
	return func(k *Karger) { k.workers = workers }
}

// WithSeed fixes the base seed; trial i always draws from the stream derived from (seed, i), so
// the result does not depend on the worker count.
func WithSeed(seed uint64) KargerOption {
	return func(k *Karger) { k.seed = seed }
}

func WithSamplingStrategy(strategy SamplingStrategy) KargerOption {
	return func(k *Karger) { k.strategy = strategy }
}

func WithLogger(logger *zap.Logger) KargerOption {
	return func(k *Karger) {
		if logger != nil {
			k.logger = logger
		}
	}
}

func WithTrialObserver(observer TrialObserver) KargerOption {
	return func(k *Karger) { k.observer = observer }
}

func NewKarger(graph *datastructure.Graph, opts ...KargerOption) *Karger {
	k := &Karger{
		graph:    graph,
		trials:   DEFAULT_TRIALS,
		workers:  runtime.NumCPU(),
		seed:     util.DefaultSeed,
		strategy: UniformEdge,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

type trialOutcome struct {
	trial int
	cut   *Cut
	err   error
}

/*
MinCut runs the configured number of independent contraction trials and keeps the smallest cut.
Ties go to the lowest trial index. Every trial returns a real cut of the graph, so the result never
undershoots the true minimum cut; it overshoots it with probability at most
(1 - 2/(n(n-1)))^trials under UniformEdge sampling.

A disconnected graph has minimum cut 0, found without contracting anything.
*/
func (k *Karger) MinCut(ctx context.Context) (*MinCutResult, error) {
	n := k.graph.NumberOfVertices()
	if n < 2 {
		return nil, util.NewErrorf(util.ErrConfiguration, util.Fields{"n": n},
			"a cut needs at least 2 vertices")
	}
	if k.trials < 1 {
		return nil, util.NewErrorf(util.ErrConfiguration, util.Fields{"trials": k.trials},
			"at least one trial is required")
	}

	start := time.Now()
	k.logger.Info("karger min cut started",
		zap.Int("vertices", n), zap.Int("edges", k.graph.NumberOfEdges()),
		zap.Int("trials", k.trials), zap.Int("workers", k.workers),
		zap.Stringer("strategy", k.strategy), zap.Uint64("seed", k.seed))

	if components := k.graph.ConnectedComponents(); len(components) > 1 {
		k.logger.Info("graph is disconnected, min cut is 0", zap.Int("components", len(components)))
		return &MinCutResult{Cut: componentCut(n, components[0]), trial: NO_TRIAL, trials: 0}, nil
	}

	jobs := make([]int, k.trials)
	for i := range jobs {
		jobs[i] = i
	}

	runTrial := func(trial int) trialOutcome {
		if util.StopConcurrentOperation(ctx) {
			return trialOutcome{trial: trial, err: ctx.Err()}
		}
		var cut *Cut
		err := util.CatchInvariant(func() error {
			var err error
			cut, err = kargerTrial(ctx, k.graph, util.DeriveRand(k.seed, uint64(trial)), k.strategy)
			if err != nil {
				return err
			}
			k.logger.Debug("karger trial finished", zap.Int("trial", trial), zap.Int("cut", cut.Size()))
			if k.observer != nil {
				k.observer(TrialResult{Trial: trial, CutSize: cut.Size()})
			}
			return nil
		})
		if err != nil {
			return trialOutcome{trial: trial, err: err}
		}
		return trialOutcome{trial: trial, cut: cut}
	}

	var best *trialOutcome
	for _, outcome := range concurrent.RunAll[int, trialOutcome](k.workers, jobs, runTrial) {
		if outcome.err != nil {
			return nil, outcome.err
		}
		if best == nil || outcome.cut.Size() < best.cut.Size() ||
			(outcome.cut.Size() == best.cut.Size() && outcome.trial < best.trial) {
			o := outcome
			best = &o
		}
	}

	k.logger.Info("karger min cut finished",
		zap.Int("min_cut", best.cut.Size()), zap.Int("found_in_trial", best.trial),
		zap.Duration("elapsed", time.Since(start)))

	return &MinCutResult{Cut: best.cut, trial: best.trial, trials: k.trials}, nil
}

// EstimateMinCut is MinCut with default workers and no logging.
func EstimateMinCut(ctx context.Context, g *datastructure.Graph, trials int, seed uint64) (int, error) {
	res, err := NewKarger(g, WithTrials(trials), WithSeed(seed)).MinCut(ctx)
	if err != nil {
		return 0, err
	}
	return res.Size(), nil
}

// componentCut separates one connected component from the rest of the graph.
func componentCut(n int, component []datastructure.Index) *Cut {
	side := make([]bool, n)
	for i := range side {
		side[i] = true
	}
	for _, v := range component {
		side[v] = false
	}
	return NewCut(side, 0)
}
