package dual

import "fmt"

// Elementary functions over the closed operand set.
//
// Each function pairs a backend value with its closed-form derivative
// rule, then scales by the operand's partials (chain rule):
//
//	∂ᵥ f(x) = f′(value(x)) · ∂ᵥ x
//
// and on the hyper path additionally
//
//	f(x)″ = f″(value(x))·x′² + f′(value(x))·x″.
//
// A Const operand delegates purely to the backend and returns a Const.

// rule bundles one elementary function: backend value plus the first and
// second closed-form derivative at a point, each of which may report a
// domain violation.
type rule struct {
	name   string
	value  func(Backend, complex128) (complex128, error)
	deriv  func(Backend, complex128) (complex128, error)
	deriv2 func(Backend, complex128) (complex128, error)
}

// apply dispatches an elementary rule across the operand variants.
func apply(r rule, x Number) (Number, error) {
	be := backendOf(x)
	switch t := x.(type) {
	case Const:
		v, err := r.value(be, complex128(t))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}

		return Const(v), nil
	case *Dual:
		v, err := r.value(be, t.val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}
		d, err := r.deriv(be, t.val)
		if err != nil {
			return nil, fmt.Errorf("%s: derivative: %w", r.name, err)
		}

		return unary(t, v, d), nil
	case *Hyper:
		v, err := r.value(be, t.val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}
		d, err := r.deriv(be, t.val)
		if err != nil {
			return nil, fmt.Errorf("%s: derivative: %w", r.name, err)
		}
		d2, err := r.deriv2(be, t.val)
		if err != nil {
			return nil, fmt.Errorf("%s: second derivative: %w", r.name, err)
		}

		return &Hyper{
			val: v,
			d1:  d * t.d1,
			d2:  d2*t.d1*t.d1 + d*t.d2,
			be:  t.be,
		}, nil
	default:
		return nil, fmt.Errorf("%s: operand kind %T: %w", r.name, x, ErrUnsupported)
	}
}

// Sin returns sin(x); sin′ = cos, sin″ = −sin.
func Sin(x Number) (Number, error) {
	return apply(rule{
		name:  "Sin",
		value: Backend.Sin,
		deriv: Backend.Cos,
		deriv2: func(be Backend, v complex128) (complex128, error) {
			s, err := be.Sin(v)

			return -s, err
		},
	}, x)
}

// Cos returns cos(x); cos′ = −sin, cos″ = −cos.
func Cos(x Number) (Number, error) {
	return apply(rule{
		name:  "Cos",
		value: Backend.Cos,
		deriv: func(be Backend, v complex128) (complex128, error) {
			s, err := be.Sin(v)

			return -s, err
		},
		deriv2: func(be Backend, v complex128) (complex128, error) {
			c, err := be.Cos(v)

			return -c, err
		},
	}, x)
}

// Tan returns tan(x); tan′ = 1 + tan², tan″ = 2·tan·(1 + tan²).
func Tan(x Number) (Number, error) {
	return apply(rule{
		name:  "Tan",
		value: Backend.Tan,
		deriv: func(be Backend, v complex128) (complex128, error) {
			t, err := be.Tan(v)

			return 1 + t*t, err
		},
		deriv2: func(be Backend, v complex128) (complex128, error) {
			t, err := be.Tan(v)

			return 2 * t * (1 + t*t), err
		},
	}, x)
}

// Asin returns arcsin(x); asin′ = 1/√(1−x²). The slope is undefined at
// x = ±1 and, on the Real backend, outside [−1,1] entirely.
func Asin(x Number) (Number, error) {
	return apply(rule{
		name:  "Asin",
		value: Backend.Asin,
		deriv: func(be Backend, v complex128) (complex128, error) {
			s := 1 - v*v
			if s == 0 {
				return 0, fmt.Errorf("slope undefined at ±1: %w", ErrDomain)
			}
			rt, err := be.Sqrt(s)
			if err != nil {
				return 0, err
			}

			return 1 / rt, nil
		},
		deriv2: func(be Backend, v complex128) (complex128, error) {
			s := 1 - v*v
			if s == 0 {
				return 0, fmt.Errorf("slope undefined at ±1: %w", ErrDomain)
			}
			rt, err := be.Sqrt(s)
			if err != nil {
				return 0, err
			}

			return v / (s * rt), nil
		},
	}, x)
}

// Acos returns arccos(x); acos′ = −1/√(1−x²), undefined at x = ±1.
func Acos(x Number) (Number, error) {
	return apply(rule{
		name:  "Acos",
		value: Backend.Acos,
		deriv: func(be Backend, v complex128) (complex128, error) {
			s := 1 - v*v
			if s == 0 {
				return 0, fmt.Errorf("slope undefined at ±1: %w", ErrDomain)
			}
			rt, err := be.Sqrt(s)
			if err != nil {
				return 0, err
			}

			return -1 / rt, nil
		},
		deriv2: func(be Backend, v complex128) (complex128, error) {
			s := 1 - v*v
			if s == 0 {
				return 0, fmt.Errorf("slope undefined at ±1: %w", ErrDomain)
			}
			rt, err := be.Sqrt(s)
			if err != nil {
				return 0, err
			}

			return -v / (s * rt), nil
		},
	}, x)
}

// Atan returns arctan(x); atan′ = 1/(1+x²), atan″ = −2x/(1+x²)².
func Atan(x Number) (Number, error) {
	return apply(rule{
		name:  "Atan",
		value: Backend.Atan,
		deriv: func(_ Backend, v complex128) (complex128, error) {
			s := 1 + v*v
			if s == 0 {
				return 0, fmt.Errorf("pole at ±i: %w", ErrDomain)
			}

			return 1 / s, nil
		},
		deriv2: func(_ Backend, v complex128) (complex128, error) {
			s := 1 + v*v
			if s == 0 {
				return 0, fmt.Errorf("pole at ±i: %w", ErrDomain)
			}

			return -2 * v / (s * s), nil
		},
	}, x)
}

// Sinh returns sinh(x); sinh′ = cosh, sinh″ = sinh.
func Sinh(x Number) (Number, error) {
	return apply(rule{
		name:   "Sinh",
		value:  Backend.Sinh,
		deriv:  Backend.Cosh,
		deriv2: Backend.Sinh,
	}, x)
}

// Cosh returns cosh(x); cosh′ = sinh, cosh″ = cosh.
func Cosh(x Number) (Number, error) {
	return apply(rule{
		name:   "Cosh",
		value:  Backend.Cosh,
		deriv:  Backend.Sinh,
		deriv2: Backend.Cosh,
	}, x)
}

// Tanh returns tanh(x); tanh′ = 1 − tanh², tanh″ = −2·tanh·(1 − tanh²).
func Tanh(x Number) (Number, error) {
	return apply(rule{
		name:  "Tanh",
		value: Backend.Tanh,
		deriv: func(be Backend, v complex128) (complex128, error) {
			t, err := be.Tanh(v)

			return 1 - t*t, err
		},
		deriv2: func(be Backend, v complex128) (complex128, error) {
			t, err := be.Tanh(v)

			return -2 * t * (1 - t*t), err
		},
	}, x)
}

// Exp returns e**x; every derivative of exp is exp itself.
func Exp(x Number) (Number, error) {
	return apply(rule{
		name:   "Exp",
		value:  Backend.Exp,
		deriv:  Backend.Exp,
		deriv2: Backend.Exp,
	}, x)
}

// Log returns the logarithm of x; log′ = 1/x, log″ = −1/x².
// On the Real backend a non-positive value yields ErrDomain; on the
// Complex backend only zero is rejected.
func Log(x Number) (Number, error) {
	return apply(rule{
		name:  "Log",
		value: Backend.Log,
		deriv: func(_ Backend, v complex128) (complex128, error) {
			return 1 / v, nil
		},
		deriv2: func(_ Backend, v complex128) (complex128, error) {
			return -1 / (v * v), nil
		},
	}, x)
}
