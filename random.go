package ggshapes

import (
	"math"
	"math/rand/v2"
)

// RandomInt returns floor(u*n) where u is uniform in [0, 1), so the result
// lies in [0, n) for any positive n. Fractional n is allowed: RandomInt(2.5)
// yields 0, 1 or 2.
//
// For n <= 0, NaN or ±Inf RandomInt returns 0. Ranges above math.MaxInt
// are capped to math.MaxInt so the result always fits in an int.
func RandomInt(n float64) int {
	return scale(rand.Float64(), n)
}

// Rand draws random integers from a caller supplied source, which makes the
// sequence reproducible in tests and demos.
//
// Rand is not safe for concurrent use unless its source is.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by src.
//
// Example:
//
//	r := ggshapes.NewRand(rand.NewPCG(1, 2))
//	x := r.Int(400)
func NewRand(src rand.Source) *Rand {
	return &Rand{r: rand.New(src)}
}

// Int has the same contract as RandomInt.
func (r *Rand) Int(n float64) int {
	return scale(r.r.Float64(), n)
}

func scale(u, n float64) int {
	if !(n > 0) || math.IsInf(n, 1) {
		return 0
	}
	n = min(n, float64(math.MaxInt))
	v := int(math.Floor(u * n))
	// u*n can round up to n when n is large and u is close to 1.
	if float64(v) >= n {
		v = int(math.Ceil(n)) - 1
	}
	return v
}
