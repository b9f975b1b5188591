package efloat

import (
	"math"
	"testing"
)

func TestMachineEpsilon(t *testing.T) {
	// Half the gap from 1 to the next representable value.
	if want := (NextUp32(1) - 1) / 2; MachineEpsilon32 != want {
		t.Errorf("MachineEpsilon32 = %g, want %g", MachineEpsilon32, want)
	}
	if want := (NextUp64(1) - 1) / 2; MachineEpsilon64 != want {
		t.Errorf("MachineEpsilon64 = %g, want %g", MachineEpsilon64, want)
	}
}

func TestGamma(t *testing.T) {
	// gamma(n) must dominate n*eps and grow monotonically: it is the
	// budget for n compounded roundings.
	for n := 1; n < 100; n++ {
		g32, g64 := Gamma32(n), Gamma64(n)
		if g32 <= 0 || float64(g32) < float64(n)*float64(MachineEpsilon32) {
			t.Errorf("Gamma32(%d) = %g: below n*eps", n, g32)
		}
		if g64 <= 0 || g64 < float64(n)*MachineEpsilon64 {
			t.Errorf("Gamma64(%d) = %g: below n*eps", n, g64)
		}
		if n > 1 && (g32 <= Gamma32(n-1) || g64 <= Gamma64(n-1)) {
			t.Errorf("Gamma(%d) not greater than Gamma(%d)", n, n-1)
		}
	}
}

func TestGammaSeedsBounds(t *testing.T) {
	// The documented use: bounding a value that went through a known
	// number of rounded operations before being handed to us. Two
	// float32 multiplications plus the comparison's own conversion stay
	// within gamma(3).
	a, b, c := float32(0.87234), float32(0.2348709), float32(3.99999)
	v := a * b * c
	e, err := New32WithErr(v, float32(math.Abs(float64(v)))*Gamma32(3))
	if err != nil {
		t.Fatal(err)
	}
	truth := float64(a) * float64(b) * float64(c)
	if !e.Contains(float32(truth)) {
		t.Errorf("%v does not enclose the double-precision product %g", e, truth)
	}
}
