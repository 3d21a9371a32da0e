package poly1d

import "errors"

var (
	// ErrInvalidArgument is returned for negative repeat counts and for
	// too few integration constants.
	ErrInvalidArgument = errors.New("poly1d: invalid argument")

	// ErrDivisionByZero is returned when dividing by the zero polynomial
	// or by a near-zero scalar.
	ErrDivisionByZero = errors.New("poly1d: division by zero")

	// ErrNoCriticalPoint is returned by NearestPoint when the distance
	// derivative has no real root.
	ErrNoCriticalPoint = errors.New("poly1d: no critical point found")

	// ErrNoConvergence is returned when the eigenvalue solver fails.
	ErrNoConvergence = errors.New("poly1d: root solver did not converge")
)
