package engine

import (
	"math/rand"
	"time"
)

// Rand is the single random-draw seam of the engine. Production uses a
// time-seeded math/rand source; tests inject a fixed seed to make every
// simulation deterministic.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a time-seeded source.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededRand returns a source with a fixed seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes s in place.
func Shuffle[T any](rng Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Pick returns a uniformly drawn element of s. s must be non-empty.
func Pick[T any](rng Rand, s []T) T {
	return s[rng.Intn(len(s))]
}
