package autodiff

import (
	"fmt"

	"github.com/katalvlaran/fractad/dual"
)

// SecondPartial returns ∂²f/∂xᵢ∂xⱼ at point, restricted to the
// same-variable case i == j.
//
// Description:
//
//	Variable i is seeded as a hyperdual — the nested "dual of a dual",
//	carrying value, first and second derivative components — while all
//	sibling variables enter as plain constants. Running f over these
//	seeds propagates f, ∂f/∂xᵢ and ∂²f/∂xᵢ² together; the outer
//	derivative component of the result is the answer.
//
// Mixed partials (i ≠ j) have no defined semantics in this engine and
// are rejected with ErrMixedPartials rather than guessed at.
//
// Errors:
//   - ErrNilFunc       — f is nil.
//   - ErrDimension     — point empty, or i/j outside [0, len(point)).
//   - ErrMixedPartials — i ≠ j.
//   - evaluation errors from f propagate unchanged.
//
// Complexity: one evaluation of f with O(1)-sized seeds.
func SecondPartial(f Func, point []complex128, i, j int, opts ...Option) (complex128, error) {
	if f == nil {
		return 0, fmt.Errorf("SecondPartial: %w", ErrNilFunc)
	}
	if len(point) == 0 {
		return 0, fmt.Errorf("SecondPartial: empty evaluation point: %w", ErrDimension)
	}
	if i < 0 || i >= len(point) || j < 0 || j >= len(point) {
		return 0, fmt.Errorf("SecondPartial: variable index (%d,%d) outside [0,%d): %w",
			i, j, len(point), ErrDimension)
	}
	if i != j {
		return 0, fmt.Errorf("SecondPartial: ∂²/∂x%d∂x%d: %w", i, j, ErrMixedPartials)
	}
	c := resolve(opts)

	seeds := make([]dual.Number, len(point))
	for k, v := range point {
		if k == i {
			seeds[k] = dual.HyperVarWith(v, c.backend)
			continue
		}
		seeds[k] = dual.Lift(v)
	}

	out, err := f(seeds)
	if err != nil {
		return 0, fmt.Errorf("SecondPartial: %w", err)
	}

	switch t := out.(type) {
	case *dual.Hyper:
		return t.Second(), nil
	case dual.Const:
		// f ignored the seeded variable: both derivatives vanish.
		return 0, nil
	default:
		return 0, fmt.Errorf("SecondPartial: result kind %T: %w", out, dual.ErrUnsupported)
	}
}

// SecondDerivative returns f″(x) for a single-variable function: the
// i == 0 diagonal case of SecondPartial.
func SecondDerivative(f Func, x complex128, opts ...Option) (complex128, error) {
	return SecondPartial(f, []complex128{x}, 0, 0, opts...)
}
