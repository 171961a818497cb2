package util

import "math/rand"

// NewRand returns a seeded random source. A zero seed is replaced with 1
// so callers can pass unset configuration values and still get a
// reproducible stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
