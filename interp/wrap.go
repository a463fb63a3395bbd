package interp

import "math"

// Wrap maps v into the canonical half-open interval [0, period).
//
// A non-positive period disables wrapping: v is returned unchanged.
// For period > 0 the result follows the mathematical modulo, not the
// truncating remainder — negative coordinates wrap forward, so
// Wrap(-0.5, 1) == 0.5.
func Wrap[T Float](v, period T) T {
	if period <= 0 {
		return v
	}
	m := T(math.Mod(float64(v), float64(period)))
	if v >= 0 {
		return m
	}

	return T(math.Mod(float64(m)+float64(period), float64(period)))
}
