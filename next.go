package efloat

import "math"

// The Next* functions step a float to its neighbouring representable value
// by bumping the raw bit pattern, which works because IEEE floats of the
// same sign order the same way as their bit patterns. They are how every
// bound in this package gets its outward nudge, and are exported because
// callers preparing their own initial error bounds need them too.

// NextUp32 returns the smallest float32 greater than f. +Inf and NaN map to
// themselves; negative zero steps to positive zero.
func NextUp32(f float32) float32 {
	if f != f || (math.IsInf(float64(f), 1)) {
		return f
	}
	if f == 0 && math.Signbit(float64(f)) {
		return 0
	}
	u := math.Float32bits(f)
	if f >= 0 {
		u++
	} else {
		u--
	}
	return math.Float32frombits(u)
}

// NextDown32 returns the largest float32 less than f. -Inf and NaN map to
// themselves; positive zero steps to negative zero.
func NextDown32(f float32) float32 {
	if f != f || (math.IsInf(float64(f), -1)) {
		return f
	}
	if f == 0 && !math.Signbit(float64(f)) {
		return float32(math.Copysign(0, -1))
	}
	u := math.Float32bits(f)
	if f <= 0 {
		u++
	} else {
		u--
	}
	return math.Float32frombits(u)
}

// NextUp64 is NextUp32 for float64.
func NextUp64(f float64) float64 {
	if f != f || math.IsInf(f, 1) {
		return f
	}
	if f == 0 && math.Signbit(f) {
		return 0
	}
	u := math.Float64bits(f)
	if f >= 0 {
		u++
	} else {
		u--
	}
	return math.Float64frombits(u)
}

// NextDown64 is NextDown32 for float64.
func NextDown64(f float64) float64 {
	if f != f || math.IsInf(f, -1) {
		return f
	}
	if f == 0 && !math.Signbit(f) {
		return math.Copysign(0, -1)
	}
	u := math.Float64bits(f)
	if f <= 0 {
		u++
	} else {
		u--
	}
	return math.Float64frombits(u)
}
