package generator

import (
	"math"
	"math/rand"
)

// NewSeededRNG returns a pseudo-random source private to the caller. Two
// sources built from the same seed produce identical streams.
func NewSeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intRange draws an integer from [lo, hi). It returns lo for an empty range.
func intRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// poisson samples with Knuth's multiplication method, adequate for the
// small means used here.
func poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

func normal(rng *rand.Rand, mean, sd float64) float64 {
	return rng.NormFloat64()*sd + mean
}

func pick[T any](rng *rand.Rand, options []T) T {
	return options[rng.Intn(len(options))]
}
