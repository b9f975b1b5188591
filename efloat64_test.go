package efloat

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpEF64 = cmp.AllowUnexported(EFloat64{})

func ef64(v, err float64) EFloat64 {
	e, e2 := New64WithErr(v, err)
	if e2 != nil {
		panic(e2)
	}
	return e
}

func TestNew64WithErr(t *testing.T) {
	if _, err := New64WithErr(1, -1); !errors.Is(err, ErrInvalidBound) {
		t.Errorf("New64WithErr(1, -1): err = %v, want ErrInvalidBound", err)
	}
	got := ef64(1, 0.1)
	if got.Exact() {
		t.Errorf("New64WithErr(1, 0.1) = %v, want inexact", got)
	}
	if got.LowerBound() > 0.9 || got.UpperBound() < 1.1 {
		t.Errorf("New64WithErr(1, 0.1) = %v: does not enclose [0.9, 1.1]", got)
	}
}

func TestExactness64(t *testing.T) {
	if got := New64(2).Add(New64(3)); !got.Exact() || got.Value() != 5 {
		t.Errorf("2 + 3 = %v, want exact 5", got)
	}
	if got := New64(0.5).Mul(New64(0.25)); !got.Exact() || got.Value() != 0.125 {
		t.Errorf("0.5 * 0.25 = %v, want exact 0.125", got)
	}
	d, err := New64(1).Div(New64(4))
	if err != nil {
		t.Fatalf("1 / 4: unexpected error %v", err)
	}
	if !d.Exact() || d.Value() != 0.25 {
		t.Errorf("1 / 4 = %v, want exact 0.25", d)
	}
	if got := New64(0.1).Add(New64(0.2)); got.Exact() {
		t.Errorf("0.1 + 0.2 = %v, want inexact", got)
	}
}

func TestDiv64ByIntervalContainingZero(t *testing.T) {
	if _, err := New64(1).Div(ef64(0, 1)); !errors.Is(err, ErrZeroDivisor) {
		t.Errorf("1 / [-1, 1]: err = %v, want ErrZeroDivisor", err)
	}
}

func TestSqrt64(t *testing.T) {
	if _, err := New64(-1).Sqrt(); !errors.Is(err, ErrDomain) {
		t.Errorf("sqrt(-1): err = %v, want ErrDomain", err)
	}
	got, err := ef64(2, 1e-12).Sqrt()
	if err != nil {
		t.Fatalf("sqrt(2±1e-12): unexpected error %v", err)
	}
	if !got.Contains(math.Sqrt2) {
		t.Errorf("sqrt(2±1e-12) = %v, want an enclosure of sqrt(2)", got)
	}
}

func TestNegationSymmetry64(t *testing.T) {
	for _, a := range []EFloat64{
		New64(0),
		New64(-2.5),
		ef64(1, 0.1),
	} {
		got := a.Neg().Neg()
		if diff := cmp.Diff(a, got, cmpEF64); diff != "" {
			t.Errorf("--%v: unexpected diff (-want,+got):\n%v", a, diff)
		}
	}
}

func randEF64(r *rand.Rand) EFloat64 {
	v := r.NormFloat64() * 10
	if r.Intn(4) == 0 {
		return New64(v)
	}
	return ef64(v, math.Abs(r.NormFloat64()))
}

// TestEnclosureSoundness64 checks the intervals against truths computed at
// 200 bits with big.Float, since there is no wider hardware float to lean
// on at this precision.
func TestEnclosureSoundness64(t *testing.T) {
	const prec = 200
	r := rand.New(rand.NewSource(4))

	contains := func(e EFloat64, truth *big.Float) bool {
		lo := new(big.Float).SetFloat64(e.LowerBound())
		hi := new(big.Float).SetFloat64(e.UpperBound())
		return lo.Cmp(truth) <= 0 && truth.Cmp(hi) <= 0
	}
	corners := func(e EFloat64) [3]float64 {
		return [3]float64{e.LowerBound(), e.Value(), e.UpperBound()}
	}

	for i := 0; i < 2000; i++ {
		a, b := randEF64(r), randEF64(r)
		sum, diff, prod := a.Add(b), a.Sub(b), a.Mul(b)
		quot, qerr := a.Div(b)
		for _, x := range corners(a) {
			for _, y := range corners(b) {
				bx := new(big.Float).SetPrec(prec).SetFloat64(x)
				by := new(big.Float).SetPrec(prec).SetFloat64(y)
				if truth := new(big.Float).SetPrec(prec).Add(bx, by); !contains(sum, truth) {
					t.Fatalf("%v + %v = %v: does not enclose %v", a, b, sum, truth)
				}
				if truth := new(big.Float).SetPrec(prec).Sub(bx, by); !contains(diff, truth) {
					t.Fatalf("%v - %v = %v: does not enclose %v", a, b, diff, truth)
				}
				if truth := new(big.Float).SetPrec(prec).Mul(bx, by); !contains(prod, truth) {
					t.Fatalf("%v * %v = %v: does not enclose %v", a, b, prod, truth)
				}
				if qerr == nil {
					if truth := new(big.Float).SetPrec(prec).Quo(bx, by); !contains(quot, truth) {
						t.Fatalf("%v / %v = %v: does not enclose %v", a, b, quot, truth)
					}
				}
			}
		}
	}
}

func TestMod64(t *testing.T) {
	for _, c := range []struct {
		a, b float64
	}{
		{5, 3},
		{-5, 3},
		{7.5, 2},
		{100.25, 7},
	} {
		got, err := New64(c.a).Mod(New64(c.b))
		if err != nil {
			t.Errorf("%g mod %g: unexpected error %v", c.a, c.b, err)
			continue
		}
		want := math.Mod(c.a, c.b)
		if got.Value() != want || !got.Contains(want) {
			t.Errorf("%g mod %g = %v, want an enclosure of %g", c.a, c.b, got, want)
		}
	}
}

func TestFloorCeilTruncRound64(t *testing.T) {
	a := EFloat64{v: 1.5, low: 1.25, high: 2.5}.check()
	for _, c := range []struct {
		name string
		got  EFloat64
		want EFloat64
	}{
		{"floor", a.Floor(), EFloat64{v: 1, low: 1, high: 2}},
		{"ceil", a.Ceil(), EFloat64{v: 2, low: 2, high: 3}},
		{"trunc", a.Trunc(), EFloat64{v: 1, low: 1, high: 2}},
		{"round", a.Round(), EFloat64{v: 2, low: 1, high: 3}},
	} {
		if diff := cmp.Diff(c.want, c.got, cmpEF64); diff != "" {
			t.Errorf("%s: unexpected diff (-want,+got):\n%v", c.name, diff)
		}
	}
}
