// Package newton defines options, results, and sentinel errors for the
// Newton root-finding iteration.
package newton

import "errors"

// Sentinel errors for Newton iteration.
var (
	// ErrNilFunction indicates a nil function was supplied.
	ErrNilFunction = errors.New("newton: function must be non-nil")
	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("newton: tolerance must be positive")
	// ErrBadMaxIter indicates an iteration cap below 1.
	ErrBadMaxIter = errors.New("newton: max iterations must be at least 1")
	// ErrZeroDerivative indicates f′ vanished at an iterate away from a
	// root — a stationary point with no valid Newton update.
	ErrZeroDerivative = errors.New("newton: zero derivative at iterate")
)

// Default iteration parameters, used by DefaultOptions.
const (
	// DefaultTolerance is the default convergence tolerance ε.
	DefaultTolerance = 1e-12
	// DefaultMaxIter is the default iteration cap K.
	DefaultMaxIter = 100
)

// Options configures one Newton iteration.
//
// Fields:
//   - Tolerance — convergence threshold ε: the iteration stops when
//     |f(z)| < ε or |z_new − z| < ε.
//   - MaxIter   — iteration cap K; reaching it without convergence is a
//     normal terminal state, not an error. K acts as the implicit
//     timeout of the otherwise non-cancellable iteration.
type Options struct {
	Tolerance float64
	MaxIter   int
}

// DefaultOptions returns Options with ε = 1e-12 and K = 100.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
	}
}

// Result reports the terminal state of one Newton iteration.
//
// Converged distinguishes the two normal outcomes: tolerance reached
// (true) or MaxIter exhausted (false). Root holds the final iterate in
// either case; Iterations counts the Newton updates performed.
type Result struct {
	Root       complex128
	Iterations int
	Converged  bool
}
