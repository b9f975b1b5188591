// package efloat provides floating point types that carry a conservative
// bound on their accumulated rounding error. Each value remembers an
// interval [low, high] guaranteed to contain the true mathematical result,
// so callers (typically geometric robustness checks) can tell whether a
// computed quantity is trustworthy.
//
// A few tips:
//   - Multiplication and division don't grow the error much.
//   - Addition is ok, but subtraction (or addition of differing signs) has
//     a terrible error bound.
//   - Operate on small numbers first, working up, so that the larger errors
//     don't propagate and grow as much.
//
// Go has no control over the rounding mode, so directed rounding is
// approximated: every computed bound is nudged one ulp outward with
// NextDown/NextUp after an ordinary round-to-nearest computation. That keeps
// the enclosure sound at the cost of (at most) one ulp of tightness per
// operation.
package efloat

import (
	"golang.org/x/exp/constraints"
)

// CheckInvariants makes every constructor and operation re-verify that
// low <= value <= high (ignoring NaN and infinite fields) and panic if the
// enclosure is broken. It is a development aid, off by default; the
// arithmetic is conservative by construction so release builds don't pay
// for the checks.
var CheckInvariants = false

// exactSum reports whether s is exactly a+b, using Knuth's two-sum to
// recover the rounding error of the addition. It holds in any IEEE
// round-to-nearest arithmetic, no ordering assumptions on a and b.
func exactSum[T constraints.Float](a, b, s T) bool {
	bv := s - a
	av := s - bv
	return (a-av)+(b-bv) == 0
}
