package efloat

import "golang.org/x/exp/constraints"

// Machine epsilons as Higham defines them (2002, sect 3.1): half the gap
// from 1 to the next representable value, i.e. the worst relative error of
// a single correctly rounded operation.
const (
	MachineEpsilon32 float32 = 0x1p-24
	MachineEpsilon64 float64 = 0x1p-53
)

// Gamma32 returns Higham's conservative relative error bound for a chain of
// n rounded float32 operations:
//
//	gamma(n) = n*eps / (1 - n*eps)
//
// It is handy for seeding New32WithErr when a value arrives from a known
// number of uninstrumented operations.
func Gamma32(n int) float32 {
	return gamma(n, MachineEpsilon32)
}

// Gamma64 is Gamma32 for float64.
func Gamma64(n int) float64 {
	return gamma(n, MachineEpsilon64)
}

func gamma[T constraints.Float](n int, eps T) T {
	ne := T(n) * eps
	return ne / (1 - ne)
}
