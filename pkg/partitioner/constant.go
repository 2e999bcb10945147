package partitioner

const (
	DEFAULT_TRIALS = 50
	// DEFAULT_CONFIDENCE is the success probability TrialsForConfidence targets when asked for 0.
	DEFAULT_CONFIDENCE = 0.99
)
