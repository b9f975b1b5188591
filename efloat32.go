package efloat

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// EFloat32 is a float32 that remembers how far off it might be from the
// true mathematical value, based on its history. It keeps a lower and an
// upper error bound internally; the bounds always enclose the true value,
// though they need not be centred on it. Values are immutable: every
// operation returns a fresh EFloat32, so they can be copied and shared
// between goroutines freely.
type EFloat32 struct {
	v, low, high float32
}

// New32 returns an exact EFloat32: both bounds equal v.
func New32(v float32) EFloat32 {
	return EFloat32{v: v, low: v, high: v}.check()
}

// New32WithErr returns an EFloat32 whose true value is known to lie within
// err of v. The bounds are nudged one ulp outward so that the rounding of
// v-err and v+err themselves can never shrink the interval. A negative or
// NaN err returns ErrInvalidBound.
func New32WithErr(v, err float32) (EFloat32, error) {
	if math32.IsNaN(err) || err < 0 {
		return EFloat32{}, fmt.Errorf("%w: %g", ErrInvalidBound, err)
	}
	if err == 0 {
		return New32(v), nil
	}
	e := EFloat32{
		v:    v,
		low:  NextDown32(v - err),
		high: NextUp32(v + err),
	}
	return e.check(), nil
}

// Value returns the nominal result, computed with ordinary round-to-nearest
// arithmetic. This is the one-way projection back to a plain float32: the
// bounds are discarded.
func (e EFloat32) Value() float32 { return e.v }

// LowerBound returns a value guaranteed <= the true result.
func (e EFloat32) LowerBound() float32 { return e.low }

// UpperBound returns a value guaranteed >= the true result.
func (e EFloat32) UpperBound() float32 { return e.high }

// AbsoluteError returns the width of the error interval, rounded up so it
// never under-reports.
func (e EFloat32) AbsoluteError() float32 {
	if e.low == e.high {
		return 0
	}
	return NextUp32(e.high - e.low)
}

// Exact reports whether no error has accumulated at all.
func (e EFloat32) Exact() bool { return e.low == e.high }

// Contains reports whether f lies within the error interval.
func (e EFloat32) Contains(f float32) bool {
	return e.low <= f && f <= e.high
}

// Overlaps reports whether the two error intervals share any point. This is
// the sound comparison: two values that overlap are indistinguishable
// within their accumulated error.
func (e EFloat32) Overlaps(o EFloat32) bool {
	return e.low <= o.high && o.low <= e.high
}

// Eq compares the nominal values only, for ergonomic parity with a plain
// float32. It is not a sound interval comparison: values with overlapping
// intervals may still compare unequal. Use Overlaps for that.
func (e EFloat32) Eq(o EFloat32) bool { return e.v == o.v }

// Less compares the nominal values only. See Eq for the caveat.
func (e EFloat32) Less(o EFloat32) bool { return e.v < o.v }

// Greater compares the nominal values only. See Eq for the caveat.
func (e EFloat32) Greater(o EFloat32) bool { return e.v > o.v }

func (e EFloat32) String() string {
	return fmt.Sprintf("%g [%g, %g]", e.v, e.low, e.high)
}

// Add returns e + o. If both operands are exact and the sum is exactly
// representable there is nothing to widen for; otherwise each bound is
// rounded one ulp away from the interval.
func (a EFloat32) Add(b EFloat32) EFloat32 {
	v := a.v + b.v
	if a.Exact() && b.Exact() && exactSum(a.v, b.v, v) {
		return New32(v)
	}
	r := EFloat32{
		v:    v,
		low:  NextDown32(a.low + b.low),
		high: NextUp32(a.high + b.high),
	}
	return r.check()
}

// Sub returns e - o. The low bound takes the other operand's high bound and
// vice versa.
func (a EFloat32) Sub(b EFloat32) EFloat32 {
	v := a.v - b.v
	if a.Exact() && b.Exact() && exactSum(a.v, -b.v, v) {
		return New32(v)
	}
	r := EFloat32{
		v:    v,
		low:  NextDown32(a.low - b.high),
		high: NextUp32(a.high - b.low),
	}
	return r.check()
}

// Mul returns e * o. The extremes of a product over two intervals are not
// monotonic in any single bound pairing once signs vary, so all four corner
// products are enumerated.
func (a EFloat32) Mul(b EFloat32) EFloat32 {
	v := a.v * b.v
	if a.Exact() && b.Exact() && float64(a.v)*float64(b.v) == float64(v) {
		// The float64 product of two float32s is exact (48 < 53
		// mantissa bits), so this detects an exact float32 product.
		return New32(v)
	}
	prod := [4]float32{
		a.low * b.low,
		a.high * b.low,
		a.low * b.high,
		a.high * b.high,
	}
	r := EFloat32{
		v:    v,
		low:  NextDown32(min4_32(prod)),
		high: NextUp32(max4_32(prod)),
	}
	return r.check()
}

// Div returns e / o. If the divisor interval contains zero the true
// quotient is unbounded and Div returns ErrZeroDivisor instead of a
// misleading interval; geometric callers need to branch on that case.
func (a EFloat32) Div(b EFloat32) (EFloat32, error) {
	if b.low <= 0 && b.high >= 0 {
		return EFloat32{}, fmt.Errorf("%w: [%g, %g]", ErrZeroDivisor, b.low, b.high)
	}
	v := a.v / b.v
	if a.Exact() && b.Exact() && float64(v)*float64(b.v) == float64(a.v) {
		// v*b.v is exact in float64, so equality means the quotient
		// divided out with no remainder.
		return New32(v), nil
	}
	prod := [4]float32{
		a.low / b.low,
		a.high / b.low,
		a.low / b.high,
		a.high / b.high,
	}
	r := EFloat32{
		v:    v,
		low:  NextDown32(min4_32(prod)),
		high: NextUp32(max4_32(prod)),
	}
	return r.check(), nil
}

// Mod returns the truncated remainder e mod o, computed as
// e - trunc(e/o)*o over intervals. The remainder is discontinuous in both
// operands, so the composed form is used rather than corner enumeration:
// composition only ever widens, never narrows. The divisor rules of Div
// apply.
func (a EFloat32) Mod(b EFloat32) (EFloat32, error) {
	q, err := a.Div(b)
	if err != nil {
		return EFloat32{}, err
	}
	r := a.Sub(q.Trunc().Mul(b))
	// fmod is exact in IEEE arithmetic, so the nominal value can be
	// computed directly rather than through the interval chain.
	r.v = math32.Mod(a.v, b.v)
	return r.check(), nil
}

// Recip returns 1 / e. The divisor rules of Div apply. The reciprocal is
// monotonic on an interval of constant sign, so only the two endpoint
// reciprocals matter.
func (e EFloat32) Recip() (EFloat32, error) {
	if e.low <= 0 && e.high >= 0 {
		return EFloat32{}, fmt.Errorf("%w: [%g, %g]", ErrZeroDivisor, e.low, e.high)
	}
	lo, hi := 1/e.high, 1/e.low
	if lo > hi {
		lo, hi = hi, lo
	}
	r := EFloat32{
		v:    1 / e.v,
		low:  NextDown32(lo),
		high: NextUp32(hi),
	}
	return r.check(), nil
}

// MulAdd returns e*a + b over all eight corner combinations. Corners are
// evaluated with a float64 fused multiply-add, which keeps their error under
// one float32 ulp, absorbed by the outward nudge.
func (e EFloat32) MulAdd(a, b EFloat32) EFloat32 {
	var (
		prod [8]float32
		i    int
	)
	for _, x := range [2]float32{e.low, e.high} {
		for _, y := range [2]float32{a.low, a.high} {
			for _, z := range [2]float32{b.low, b.high} {
				prod[i] = fma32(x, y, z)
				i++
			}
		}
	}
	lo, hi := prod[0], prod[0]
	for _, p := range prod[1:] {
		lo = math32.Min(lo, p)
		hi = math32.Max(hi, p)
	}
	r := EFloat32{
		v:    fma32(e.v, a.v, b.v),
		low:  NextDown32(lo),
		high: NextUp32(hi),
	}
	return r.check()
}

// Neg returns -e. Negation is exact; the bounds just swap.
func (e EFloat32) Neg() EFloat32 {
	return EFloat32{v: -e.v, low: -e.high, high: -e.low}.check()
}

// Abs returns |e|. If the interval straddles zero the result's low bound is
// zero and its high bound is whichever side reaches further.
func (e EFloat32) Abs() EFloat32 {
	switch {
	case e.low >= 0:
		// The entire interval is already non-negative.
		return e
	case e.high <= 0:
		// The entire interval is non-positive.
		return e.Neg()
	default:
		r := EFloat32{
			v:    math32.Abs(e.v),
			low:  0,
			high: math32.Max(-e.low, e.high),
		}
		return r.check()
	}
}

// Sqrt returns the square root. A negative value is a domain error; a low
// bound that merely dips below zero (an interval that is consistent with a
// non-negative true value) is clamped to zero. Square root is monotonic but
// still rounds, so the bounds are nudged outward.
func (e EFloat32) Sqrt() (EFloat32, error) {
	if e.v < 0 {
		return EFloat32{}, fmt.Errorf("%w: sqrt(%g)", ErrDomain, e.v)
	}
	v := math32.Sqrt(e.v)
	if e.Exact() && float64(v)*float64(v) == float64(e.v) {
		return New32(v), nil
	}
	lo := e.low
	if lo < 0 {
		lo = 0
	}
	r := EFloat32{
		v:    v,
		low:  NextDown32(math32.Sqrt(lo)),
		high: NextUp32(math32.Sqrt(e.high)),
	}
	if r.low < 0 {
		r.low = 0
	}
	return r.check(), nil
}

// Floor maps both bounds directly: it is monotonic and exact on floats, so
// no outward nudge is needed.
func (e EFloat32) Floor() EFloat32 {
	r := EFloat32{
		v:    math32.Floor(e.v),
		low:  math32.Floor(e.low),
		high: math32.Floor(e.high),
	}
	return r.check()
}

// Ceil maps both bounds directly, like Floor.
func (e EFloat32) Ceil() EFloat32 {
	r := EFloat32{
		v:    math32.Ceil(e.v),
		low:  math32.Ceil(e.low),
		high: math32.Ceil(e.high),
	}
	return r.check()
}

// Trunc maps both bounds directly, like Floor.
func (e EFloat32) Trunc() EFloat32 {
	r := EFloat32{
		v:    math32.Trunc(e.v),
		low:  math32.Trunc(e.low),
		high: math32.Trunc(e.high),
	}
	return r.check()
}

// Round rounds half away from zero, mapping both bounds directly, like
// Floor.
func (e EFloat32) Round() EFloat32 {
	r := EFloat32{
		v:    round32(e.v),
		low:  round32(e.low),
		high: round32(e.high),
	}
	return r.check()
}

// Fract returns the fractional part, e - trunc(e). If the interval
// straddles an integer boundary the fractional part can be anywhere in
// (-1, 1) depending on sign, so the result falls back to that whole range;
// within a single integer cell it is monotonic and exact.
func (e EFloat32) Fract() EFloat32 {
	r := EFloat32{v: fract32(e.v)}
	if math32.Trunc(e.low) != math32.Trunc(e.high) {
		lo, hi := float32(0), NextDown32(1)
		if e.low < 0 {
			lo = NextUp32(-1)
		}
		if e.high <= 0 {
			hi = 0
		}
		r.low, r.high = lo, hi
	} else {
		r.low, r.high = fract32(e.low), fract32(e.high)
	}
	return r.check()
}

// Signum returns the sign of each field: -1 or +1, or NaN for a NaN field.
func (e EFloat32) Signum() EFloat32 {
	r := EFloat32{
		v:    sign32(e.v),
		low:  sign32(e.low),
		high: sign32(e.high),
	}
	return r.check()
}

func (e EFloat32) check() EFloat32 {
	if !CheckInvariants {
		return e
	}
	if finite32(e.low) && finite32(e.high) && e.low > e.high {
		panic(fmt.Errorf("efloat: bounds out of order: %v", e))
	}
	if finite32(e.v) && finite32(e.low) && finite32(e.high) &&
		(e.v < e.low || e.high < e.v) {
		panic(fmt.Errorf("efloat: value escaped its bounds: %v", e))
	}
	return e
}

func finite32(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func fma32(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}

// round32 rounds half away from zero. The float64 round-trip is exact:
// every float32 converts exactly, math.Round is exact, and integer results
// that don't fit 24 mantissa bits were already integral.
func round32(f float32) float32 {
	return float32(math.Round(float64(f)))
}

// fract32 is exact: when |trunc(f)| >= 1 the subtraction falls under
// Sterbenz's lemma, and otherwise trunc(f) is zero.
func fract32(f float32) float32 {
	return f - math32.Trunc(f)
}

func sign32(f float32) float32 {
	if math32.IsNaN(f) {
		return f
	}
	return math32.Copysign(1, f)
}

func min4_32(p [4]float32) float32 {
	return math32.Min(math32.Min(p[0], p[1]), math32.Min(p[2], p[3]))
}

func max4_32(p [4]float32) float32 {
	return math32.Max(math32.Max(p[0], p[1]), math32.Max(p[2], p[3]))
}
