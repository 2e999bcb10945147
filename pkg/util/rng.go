package util

import "golang.org/x/exp/rand"

// DefaultSeed is used whenever a caller passes seed == 0.
const DefaultSeed uint64 = 1

// NewRand returns a deterministic random source. seed == 0 selects DefaultSeed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer) so that
// consecutive stream ids give uncorrelated child seeds.
func DeriveSeed(parent, stream uint64) uint64 {
	if parent == 0 {
		parent = DefaultSeed
	}
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = DefaultSeed
	}
	return x
}

// DeriveRand returns an independent stream for worker/trial `stream`. *rand.Rand is not
// goroutine safe; every goroutine gets its own.
func DeriveRand(parent, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
