// Package autodiff is the forward-mode differentiation engine: it seeds
// dual numbers at an evaluation point, runs a user-supplied function
// over them, and extracts value, gradient, Jacobian rows, or the
// restricted same-variable second derivative.
//
// 🚀 What does the engine do?
//
//	AutoDiff(f, point) seeds one dual number per independent variable
//	(tags 0..n−1 in point order), invokes f with the seeds, and returns
//	a *dual.Dual whose value is f(point) and whose partials are the
//	full gradient — exact to machine precision, in one pass.
//
// ✨ Key features:
//   - Gradients: AutoDiff over any function composed from the dual
//     package's closed operation set
//   - Jacobians: one row per (function, point) pair, input order
//     preserved, each row's domain exactly the seeded variables
//   - Second derivatives: SecondPartial(f, point, i, i) via hyperdual
//     seeding; mixed partials (i ≠ j) are explicitly unsupported
//   - Backend selection: WithBackend threads a dual.Backend through the
//     seeds, so a whole evaluation runs on the real line, the complex
//     plane, or a deterministic test stub
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fractad/autodiff"
//	  "github.com/katalvlaran/fractad/dual"
//	)
//
//	// f(x,y) = x² + 3y
//	f := func(v []dual.Number) (dual.Number, error) {
//	  x2, err := dual.Mul(v[0], v[0])
//	  if err != nil {
//	    return nil, err
//	  }
//	  ty, err := dual.Mul(dual.Lift(3), v[1])
//	  if err != nil {
//	    return nil, err
//	  }
//	  return dual.Add(x2, ty)
//	}
//
//	d, err := autodiff.AutoDiff(f, []complex128{3, 4})
//	// d.Value() == 21, d.Partial(0) == 6, d.Partial(1) == 3
//
// Contract:
//
//	The engine imposes exactly one requirement on f: it must be
//	composed solely from the dual package's operations. The engine
//	performs no static analysis — a function reaching outside the
//	closed set fails dynamically at the violating operation.
//
// Errors:
//   - ErrNilFunc       — nil function supplied
//   - ErrDimension     — empty point, mismatched function/point list
//     lengths, or a variable index out of range
//   - ErrMixedPartials — SecondPartial with two distinct variables
//
// Domain violations inside f (division by zero, log of zero, …)
// propagate unchanged as dual.ErrDomain.
package autodiff
