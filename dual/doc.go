// Package dual implements dual-number arithmetic, the foundation of
// forward-mode automatic differentiation: every value carries its own
// partial derivatives, and every operation propagates them analytically
// via the chain rule.
//
// 🚀 What is a dual number?
//
//	A scalar paired with an ordered mapping of partial derivatives,
//	one entry per independent variable on its dependency path.
//	Arithmetic on dual numbers evaluates the function AND its exact
//	derivatives together, inside-out, following the structure of
//	function composition:
//	  • Mul applies the product rule
//	  • Div applies the quotient rule
//	  • Sin, Exp, Log, … apply their closed-form derivative scaled by
//	    the operand's partials (chain rule)
//
// ✨ Key features:
//   - Closed operand set — Const (plain scalar), *Dual (value + partials),
//     and *Hyper (the restricted second-derivative carrier); every
//     operation dispatches explicitly across exactly these variants
//   - Immutability — operations never mutate operands; each result is a
//     freshly allocated value, so evaluation is referentially transparent
//   - Stable variable order — binary operations union the operands'
//     variable tags in first-appearance order, deterministically
//   - Pluggable numeric backend — transcendental values come from a
//     narrow Backend interface (Real or Complex), so domain rules and
//     test stubs stay out of the derivative logic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fractad/dual"
//
//	x := dual.Var(0, 3) // seed: value 3, ∂/∂x = 1
//	y := dual.Var(1, 4) // seed: value 4, ∂/∂y = 1
//
//	// f(x,y) = x² + 3y
//	x2, _ := dual.Mul(x, x)
//	ty, _ := dual.Mul(dual.Lift(3), y)
//	f, _ := dual.Add(x2, ty)
//
//	d := f.(*dual.Dual)
//	_ = d.Value()      // 21
//	_ = d.Partial(0)   // 6
//	_ = d.Partial(1)   // 3
//
// Errors:
//   - ErrDomain      — argument outside a function's valid domain
//     (division by zero, log of a non-positive real, …)
//   - ErrUnsupported — operand kind outside the closed variant set, or a
//     combination the engine does not define (Dual × Hyper)
//
// See autodiff for the seeding/gradient engine built on this package.
package dual
