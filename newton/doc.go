// Package newton finds roots of complex-valued functions with Newton's
// method, driven by the exact derivatives of the autodiff engine.
//
// 🚀 What is Newton's method?
//
//	The iteration z ← z − f(z)/f′(z): follow the tangent of f down to
//	its zero crossing, repeatedly. Near a simple root it converges
//	quadratically; far away it may wander or never settle — which is
//	exactly the structure the fractal package visualizes.
//
// ✨ Key features:
//   - Analytic derivatives — f′ comes from one forward-mode pass per
//     iterate, not a finite-difference estimate
//   - Honest termination — convergence (|f(z)| < ε or |Δz| < ε) and
//     exhaustion of MaxIter are both normal outcomes, reported in
//     Result; only a vanishing derivative is an error
//   - Tunable — Options carries ε and the iteration cap, with
//     DefaultOptions() for the common case
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fractad/autodiff"
//	  "github.com/katalvlaran/fractad/dual"
//	  "github.com/katalvlaran/fractad/newton"
//	)
//
//	// f(z) = z³ − 1
//	f := func(v []dual.Number) (dual.Number, error) {
//	  z3, err := dual.PowReal(v[0], 3)
//	  if err != nil {
//	    return nil, err
//	  }
//	  return dual.Sub(z3, dual.Lift(1))
//	}
//
//	opts := newton.DefaultOptions()
//	res, err := newton.FindRoot(f, 1+1i, &opts)
//	// res.Root ≈ 1, res.Converged == true
//
// Errors:
//   - ErrNilFunction   — nil function
//   - ErrBadTolerance  — tolerance ≤ 0
//   - ErrBadMaxIter    — iteration cap < 1
//   - ErrZeroDerivative — f′(z) = 0 at an iterate away from a root
//     (stationary point: no valid Newton update exists)
//
// Non-convergence after MaxIter iterations is NOT an error: it is a
// reportable terminal state (Result.Converged == false), so callers —
// the fractal scanner above all — can keep going.
package newton
