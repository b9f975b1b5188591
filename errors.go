package efloat

import "errors"

// The error conditions here are all local and recoverable: they are returned
// from the offending operation and nothing else is poisoned. Match them with
// errors.Is.
var (
	// ErrInvalidBound is returned by the WithErr constructors when given a
	// negative or NaN error magnitude.
	ErrInvalidBound = errors.New("efloat: invalid error bound")

	// ErrZeroDivisor is returned by Div, Mod and Recip when the divisor
	// interval contains zero, in which case the true quotient is unbounded
	// and no finite interval would be honest.
	ErrZeroDivisor = errors.New("efloat: divisor interval contains zero")

	// ErrDomain is returned by Sqrt when the value is negative.
	ErrDomain = errors.New("efloat: argument outside domain")
)
