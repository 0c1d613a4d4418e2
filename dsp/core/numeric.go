package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp32 is the float32 variant of [Clamp].
//
// NaN is not ordered against the bounds and is returned unchanged; callers
// that need a finite result should map NaN first (see [Sanitize32]).
func Clamp32(value, min, max float32) float32 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Sanitize32 replaces NaN with fallback and clamps the result to [min, max].
// Infinities saturate at the bounds.
func Sanitize32(value, fallback, min, max float32) float32 {
	if math.IsNaN(float64(value)) {
		value = fallback
	}

	return Clamp32(value, min, max)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
