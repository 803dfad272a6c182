package autodiff_test

import (
	"fmt"

	"github.com/katalvlaran/fractad/autodiff"
	"github.com/katalvlaran/fractad/dual"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleAutoDiff
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The engine's whole job in four lines: hand it a function built from
//	dual primitives and an evaluation point, get back the value and the
//	exact gradient in one forward pass.
//
// Complexity: one evaluation of f.
func ExampleAutoDiff() {
	// f(x,y) = x² + 3y
	f := func(v []dual.Number) (dual.Number, error) {
		x2, err := dual.Mul(v[0], v[0])
		if err != nil {
			return nil, err
		}
		ty, err := dual.Mul(dual.Lift(3), v[1])
		if err != nil {
			return nil, err
		}

		return dual.Add(x2, ty)
	}

	d, err := autodiff.AutoDiff(f, []complex128{3, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("f=%g grad=(%g, %g)\n", real(d.Value()), real(d.Partial(0)), real(d.Partial(1)))
	// Output:
	// f=21 grad=(6, 3)
}

// ExampleSecondDerivative computes f″ via nested seeding: for
// f(x) = x³ at x = 2, the second derivative is 6x = 12.
func ExampleSecondDerivative() {
	f := func(v []dual.Number) (dual.Number, error) {
		sq, err := dual.Mul(v[0], v[0])
		if err != nil {
			return nil, err
		}

		return dual.Mul(sq, v[0])
	}

	d2, err := autodiff.SecondDerivative(f, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("f''(2)=%g\n", real(d2))
	// Output:
	// f''(2)=12
}
