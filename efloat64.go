package efloat

import (
	"fmt"
	"math"
)

// EFloat64 is EFloat32 at double precision. The two types are kept as
// separate concrete types rather than a generic because the directed
// rounding nudges and exactness tests are bit-width specific.
type EFloat64 struct {
	v, low, high float64
}

// New64 returns an exact EFloat64: both bounds equal v.
func New64(v float64) EFloat64 {
	return EFloat64{v: v, low: v, high: v}.check()
}

// New64WithErr returns an EFloat64 whose true value is known to lie within
// err of v. See New32WithErr.
func New64WithErr(v, err float64) (EFloat64, error) {
	if math.IsNaN(err) || err < 0 {
		return EFloat64{}, fmt.Errorf("%w: %g", ErrInvalidBound, err)
	}
	if err == 0 {
		return New64(v), nil
	}
	e := EFloat64{
		v:    v,
		low:  NextDown64(v - err),
		high: NextUp64(v + err),
	}
	return e.check(), nil
}

// Value returns the nominal result, discarding the bounds.
func (e EFloat64) Value() float64 { return e.v }

// LowerBound returns a value guaranteed <= the true result.
func (e EFloat64) LowerBound() float64 { return e.low }

// UpperBound returns a value guaranteed >= the true result.
func (e EFloat64) UpperBound() float64 { return e.high }

// AbsoluteError returns the width of the error interval, rounded up so it
// never under-reports.
func (e EFloat64) AbsoluteError() float64 {
	if e.low == e.high {
		return 0
	}
	return NextUp64(e.high - e.low)
}

// Exact reports whether no error has accumulated at all.
func (e EFloat64) Exact() bool { return e.low == e.high }

// Contains reports whether f lies within the error interval.
func (e EFloat64) Contains(f float64) bool {
	return e.low <= f && f <= e.high
}

// Overlaps reports whether the two error intervals share any point.
func (e EFloat64) Overlaps(o EFloat64) bool {
	return e.low <= o.high && o.low <= e.high
}

// Eq compares the nominal values only; see EFloat32.Eq for the caveat.
func (e EFloat64) Eq(o EFloat64) bool { return e.v == o.v }

// Less compares the nominal values only.
func (e EFloat64) Less(o EFloat64) bool { return e.v < o.v }

// Greater compares the nominal values only.
func (e EFloat64) Greater(o EFloat64) bool { return e.v > o.v }

func (e EFloat64) String() string {
	return fmt.Sprintf("%g [%g, %g]", e.v, e.low, e.high)
}

// Add returns e + o.
func (a EFloat64) Add(b EFloat64) EFloat64 {
	v := a.v + b.v
	if a.Exact() && b.Exact() && exactSum(a.v, b.v, v) {
		return New64(v)
	}
	r := EFloat64{
		v:    v,
		low:  NextDown64(a.low + b.low),
		high: NextUp64(a.high + b.high),
	}
	return r.check()
}

// Sub returns e - o.
func (a EFloat64) Sub(b EFloat64) EFloat64 {
	v := a.v - b.v
	if a.Exact() && b.Exact() && exactSum(a.v, -b.v, v) {
		return New64(v)
	}
	r := EFloat64{
		v:    v,
		low:  NextDown64(a.low - b.high),
		high: NextUp64(a.high - b.low),
	}
	return r.check()
}

// Mul returns e * o over the four corner products.
func (a EFloat64) Mul(b EFloat64) EFloat64 {
	v := a.v * b.v
	if a.Exact() && b.Exact() && math.FMA(a.v, b.v, -v) == 0 {
		// A zero FMA residue means the product rounded to itself.
		return New64(v)
	}
	prod := [4]float64{
		a.low * b.low,
		a.high * b.low,
		a.low * b.high,
		a.high * b.high,
	}
	r := EFloat64{
		v:    v,
		low:  NextDown64(min4_64(prod)),
		high: NextUp64(max4_64(prod)),
	}
	return r.check()
}

// Div returns e / o, or ErrZeroDivisor when the divisor interval contains
// zero.
func (a EFloat64) Div(b EFloat64) (EFloat64, error) {
	if b.low <= 0 && b.high >= 0 {
		return EFloat64{}, fmt.Errorf("%w: [%g, %g]", ErrZeroDivisor, b.low, b.high)
	}
	v := a.v / b.v
	if a.Exact() && b.Exact() && math.FMA(v, b.v, -a.v) == 0 {
		return New64(v), nil
	}
	prod := [4]float64{
		a.low / b.low,
		a.high / b.low,
		a.low / b.high,
		a.high / b.high,
	}
	r := EFloat64{
		v:    v,
		low:  NextDown64(min4_64(prod)),
		high: NextUp64(max4_64(prod)),
	}
	return r.check(), nil
}

// Mod returns the truncated remainder e mod o; see EFloat32.Mod.
func (a EFloat64) Mod(b EFloat64) (EFloat64, error) {
	q, err := a.Div(b)
	if err != nil {
		return EFloat64{}, err
	}
	r := a.Sub(q.Trunc().Mul(b))
	r.v = math.Mod(a.v, b.v)
	return r.check(), nil
}

// Recip returns 1 / e; see EFloat32.Recip.
func (e EFloat64) Recip() (EFloat64, error) {
	if e.low <= 0 && e.high >= 0 {
		return EFloat64{}, fmt.Errorf("%w: [%g, %g]", ErrZeroDivisor, e.low, e.high)
	}
	lo, hi := 1/e.high, 1/e.low
	if lo > hi {
		lo, hi = hi, lo
	}
	r := EFloat64{
		v:    1 / e.v,
		low:  NextDown64(lo),
		high: NextUp64(hi),
	}
	return r.check(), nil
}

// MulAdd returns e*a + b over all eight corner combinations, each computed
// with a fused multiply-add so a single rounding is all the nudge has to
// absorb.
func (e EFloat64) MulAdd(a, b EFloat64) EFloat64 {
	var (
		prod [8]float64
		i    int
	)
	for _, x := range [2]float64{e.low, e.high} {
		for _, y := range [2]float64{a.low, a.high} {
			for _, z := range [2]float64{b.low, b.high} {
				prod[i] = math.FMA(x, y, z)
				i++
			}
		}
	}
	lo, hi := prod[0], prod[0]
	for _, p := range prod[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	r := EFloat64{
		v:    math.FMA(e.v, a.v, b.v),
		low:  NextDown64(lo),
		high: NextUp64(hi),
	}
	return r.check()
}

// Neg returns -e.
func (e EFloat64) Neg() EFloat64 {
	return EFloat64{v: -e.v, low: -e.high, high: -e.low}.check()
}

// Abs returns |e|; see EFloat32.Abs.
func (e EFloat64) Abs() EFloat64 {
	switch {
	case e.low >= 0:
		return e
	case e.high <= 0:
		return e.Neg()
	default:
		r := EFloat64{
			v:    math.Abs(e.v),
			low:  0,
			high: math.Max(-e.low, e.high),
		}
		return r.check()
	}
}

// Sqrt returns the square root; see EFloat32.Sqrt.
func (e EFloat64) Sqrt() (EFloat64, error) {
	if e.v < 0 {
		return EFloat64{}, fmt.Errorf("%w: sqrt(%g)", ErrDomain, e.v)
	}
	v := math.Sqrt(e.v)
	if e.Exact() && math.FMA(v, v, -e.v) == 0 {
		return New64(v), nil
	}
	lo := e.low
	if lo < 0 {
		lo = 0
	}
	r := EFloat64{
		v:    v,
		low:  NextDown64(math.Sqrt(lo)),
		high: NextUp64(math.Sqrt(e.high)),
	}
	if r.low < 0 {
		r.low = 0
	}
	return r.check(), nil
}

// Floor maps both bounds directly: monotonic and exact, no nudge needed.
func (e EFloat64) Floor() EFloat64 {
	r := EFloat64{
		v:    math.Floor(e.v),
		low:  math.Floor(e.low),
		high: math.Floor(e.high),
	}
	return r.check()
}

// Ceil maps both bounds directly, like Floor.
func (e EFloat64) Ceil() EFloat64 {
	r := EFloat64{
		v:    math.Ceil(e.v),
		low:  math.Ceil(e.low),
		high: math.Ceil(e.high),
	}
	return r.check()
}

// Trunc maps both bounds directly, like Floor.
func (e EFloat64) Trunc() EFloat64 {
	r := EFloat64{
		v:    math.Trunc(e.v),
		low:  math.Trunc(e.low),
		high: math.Trunc(e.high),
	}
	return r.check()
}

// Round rounds half away from zero, mapping both bounds directly.
func (e EFloat64) Round() EFloat64 {
	r := EFloat64{
		v:    math.Round(e.v),
		low:  math.Round(e.low),
		high: math.Round(e.high),
	}
	return r.check()
}

// Fract returns the fractional part; see EFloat32.Fract.
func (e EFloat64) Fract() EFloat64 {
	r := EFloat64{v: fract64(e.v)}
	if math.Trunc(e.low) != math.Trunc(e.high) {
		lo, hi := float64(0), NextDown64(1)
		if e.low < 0 {
			lo = NextUp64(-1)
		}
		if e.high <= 0 {
			hi = 0
		}
		r.low, r.high = lo, hi
	} else {
		r.low, r.high = fract64(e.low), fract64(e.high)
	}
	return r.check()
}

// Signum returns the sign of each field: -1 or +1, or NaN for a NaN field.
func (e EFloat64) Signum() EFloat64 {
	r := EFloat64{
		v:    sign64(e.v),
		low:  sign64(e.low),
		high: sign64(e.high),
	}
	return r.check()
}

func (e EFloat64) check() EFloat64 {
	if !CheckInvariants {
		return e
	}
	if finite64(e.low) && finite64(e.high) && e.low > e.high {
		panic(fmt.Errorf("efloat: bounds out of order: %v", e))
	}
	if finite64(e.v) && finite64(e.low) && finite64(e.high) &&
		(e.v < e.low || e.high < e.v) {
		panic(fmt.Errorf("efloat: value escaped its bounds: %v", e))
	}
	return e
}

func finite64(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func fract64(f float64) float64 {
	return f - math.Trunc(f)
}

func sign64(f float64) float64 {
	if math.IsNaN(f) {
		return f
	}
	return math.Copysign(1, f)
}

func min4_64(p [4]float64) float64 {
	return math.Min(math.Min(p[0], p[1]), math.Min(p[2], p[3]))
}

func max4_64(p [4]float64) float64 {
	return math.Max(math.Max(p[0], p[1]), math.Max(p[2], p[3]))
}
