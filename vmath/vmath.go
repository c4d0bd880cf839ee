package vmath

import "math"

// --- Scalars ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Finite reports whether x is neither NaN nor infinite
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Lerp interpolates a..b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApproxEq compares with absolute tolerance eps
func ApproxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// --- Randomness ---

// Rand is the single randomness source of the simulation
// Implementations must be deterministic for a given seed
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n), 0 for n <= 0
	Intn(n int) int
}

// FastRand is a xorshift64 generator
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func Range(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Spread returns a value in [-amp, amp)
func Spread(r Rand, amp float64) float64 {
	return Range(r, -amp, amp)
}

// Chance returns true with probability p
func Chance(r Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}
