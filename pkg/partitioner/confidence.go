package partitioner

import (
	"math"

	"github.com/lintang-b-s/randcut/pkg/util"
)

// trialSuccessProbability is Karger's lower bound 2/(n(n-1)) on one uniform-edge trial finding a
// given minimum cut.
func trialSuccessProbability(n int) float64 {
	return 2.0 / (float64(n) * float64(n-1))
}

// SuccessProbabilityLowerBound returns 1 - (1 - 2/(n(n-1)))^trials, the probability that at least
// one of `trials` independent uniform-edge trials finds a minimum cut.
func SuccessProbabilityLowerBound(n, trials int) float64 {
	if n < 2 || trials < 1 {
		return 0
	}
	p := trialSuccessProbability(n)
	if p >= 1 {
		return 1
	}
	return -math.Expm1(float64(trials) * math.Log1p(-p))
}

// TrialsForConfidence returns the smallest trial count whose SuccessProbabilityLowerBound reaches
// confidence. confidence == 0 means DEFAULT_CONFIDENCE.
func TrialsForConfidence(n int, confidence float64) (int, error) {
	if n < 2 {
		return 0, util.NewErrorf(util.ErrConfiguration, util.Fields{"n": n},
			"a cut needs at least 2 vertices")
	}
	if confidence == 0 {
		confidence = DEFAULT_CONFIDENCE
	}
	if confidence < 0 || confidence >= 1 || math.IsNaN(confidence) {
		return 0, util.NewErrorf(util.ErrConfiguration, util.Fields{"confidence": confidence},
			"confidence must be in (0, 1)")
	}

	p := trialSuccessProbability(n)
	if p >= 1 {
		return 1, nil
	}
	trials := int(math.Ceil(math.Log1p(-confidence) / math.Log1p(-p)))
	for SuccessProbabilityLowerBound(n, trials) < confidence {
		trials++
	}
	if trials < 1 {
		trials = 1
	}
	return trials, nil
}
