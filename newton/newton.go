package newton

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/fractad/autodiff"
)

// FindRoot — Newton's method root finding.
//
// Description:
//
//	Starting from z0, each step computes (f(z), f′(z)) in a single
//	forward-mode pass and updates z ← z − f(z)/f′(z).
//
// Algorithm outline:
//  1. Validate f and options.
//  2. For k = 1..MaxIter:
//     a. (v, d) = autodiff.Derivative(f, z).
//     b. If |v| < ε: converged at z after k−1 updates.
//     c. If d = 0: stationary point — fail with ErrZeroDerivative.
//     d. zₙ = z − v/d; if |zₙ − z| < ε: converged at zₙ after k updates.
//     e. z = zₙ.
//  3. MaxIter exhausted: return the final iterate with Converged=false.
//     This is a normal terminal state, not a fault.
//
// A nil opts uses DefaultOptions.
//
// Errors:
//   - ErrNilFunction, ErrBadTolerance, ErrBadMaxIter — validation.
//   - ErrZeroDerivative — f′ vanished away from a root.
//   - domain violations inside f propagate as dual.ErrDomain.
//
// Complexity: O(K) evaluations of f, O(1) memory.
func FindRoot(f autodiff.Func, z0 complex128, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("FindRoot: %w", ErrNilFunction)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tolerance <= 0 {
		return Result{}, fmt.Errorf("FindRoot: tolerance %v: %w", o.Tolerance, ErrBadTolerance)
	}
	if o.MaxIter < 1 {
		return Result{}, fmt.Errorf("FindRoot: max iterations %d: %w", o.MaxIter, ErrBadMaxIter)
	}

	z := z0
	for k := 1; k <= o.MaxIter; k++ {
		v, d, err := autodiff.Derivative(f, z)
		if err != nil {
			return Result{}, fmt.Errorf("FindRoot: iterate %d: %w", k-1, err)
		}
		// Residual check precedes the derivative check so a multiple
		// root (f and f′ both zero) still counts as converged.
		if cmplx.Abs(v) < o.Tolerance {
			return Result{Root: z, Iterations: k - 1, Converged: true}, nil
		}
		if d == 0 {
			return Result{}, fmt.Errorf("FindRoot: iterate %d at %v: %w", k-1, z, ErrZeroDerivative)
		}
		zn := z - v/d
		if cmplx.Abs(zn-z) < o.Tolerance {
			return Result{Root: zn, Iterations: k, Converged: true}, nil
		}
		z = zn
	}

	return Result{Root: z, Iterations: o.MaxIter, Converged: false}, nil
}
