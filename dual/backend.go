package dual

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Backend supplies scalar values of transcendental functions on plain
// complex128 inputs. The derivative rules themselves live in this
// package (elementary.go); the backend only answers "what is sin(z)?",
// which keeps the engine decoupled from any specific numeric library
// and lets tests substitute deterministic stubs.
//
// Implementations report ErrDomain for arguments outside their domain;
// the Real backend enforces real-line domains, the Complex backend only
// rejects genuinely undefined points (log 0, division artifacts).
type Backend interface {
	Sin(z complex128) (complex128, error)
	Cos(z complex128) (complex128, error)
	Tan(z complex128) (complex128, error)
	Asin(z complex128) (complex128, error)
	Acos(z complex128) (complex128, error)
	Atan(z complex128) (complex128, error)
	Sinh(z complex128) (complex128, error)
	Cosh(z complex128) (complex128, error)
	Tanh(z complex128) (complex128, error)
	Exp(z complex128) (complex128, error)
	Log(z complex128) (complex128, error)
	Sqrt(z complex128) (complex128, error)
	Pow(z, w complex128) (complex128, error)
}

// Complex evaluates on the full complex plane via math/cmplx.
// Only genuinely undefined points are rejected (Log/Pow at 0).
type Complex struct{}

// Sin returns sin(z).
func (Complex) Sin(z complex128) (complex128, error) { return cmplx.Sin(z), nil }

// Cos returns cos(z).
func (Complex) Cos(z complex128) (complex128, error) { return cmplx.Cos(z), nil }

// Tan returns tan(z).
func (Complex) Tan(z complex128) (complex128, error) { return cmplx.Tan(z), nil }

// Asin returns the principal arcsine of z.
func (Complex) Asin(z complex128) (complex128, error) { return cmplx.Asin(z), nil }

// Acos returns the principal arccosine of z.
func (Complex) Acos(z complex128) (complex128, error) { return cmplx.Acos(z), nil }

// Atan returns the principal arctangent of z.
func (Complex) Atan(z complex128) (complex128, error) { return cmplx.Atan(z), nil }

// Sinh returns sinh(z).
func (Complex) Sinh(z complex128) (complex128, error) { return cmplx.Sinh(z), nil }

// Cosh returns cosh(z).
func (Complex) Cosh(z complex128) (complex128, error) { return cmplx.Cosh(z), nil }

// Tanh returns tanh(z).
func (Complex) Tanh(z complex128) (complex128, error) { return cmplx.Tanh(z), nil }

// Exp returns e**z.
func (Complex) Exp(z complex128) (complex128, error) { return cmplx.Exp(z), nil }

// Log returns the principal logarithm; z = 0 is undefined.
func (Complex) Log(z complex128) (complex128, error) {
	if z == 0 {
		return 0, fmt.Errorf("Log: zero argument: %w", ErrDomain)
	}

	return cmplx.Log(z), nil
}

// Sqrt returns the principal square root of z.
func (Complex) Sqrt(z complex128) (complex128, error) { return cmplx.Sqrt(z), nil }

// Pow returns z**w; 0**w is undefined for non-positive real(w).
func (Complex) Pow(z, w complex128) (complex128, error) {
	if z == 0 && real(w) <= 0 && w != 0 {
		return 0, fmt.Errorf("Pow: zero base, non-positive exponent: %w", ErrDomain)
	}

	return cmplx.Pow(z, w), nil
}

// Real evaluates on the real line via the math package, enforcing
// real-domain restrictions: Log needs a positive argument, Asin/Acos
// need |x| ≤ 1, Sqrt needs x ≥ 0, Pow rejects a negative base with a
// non-integer exponent. Imaginary parts of inputs are required to be
// zero; results carry a zero imaginary part.
type Real struct{}

// realArg extracts the real part of z, rejecting genuinely complex input.
func realArg(op string, z complex128) (float64, error) {
	if imag(z) != 0 {
		return 0, fmt.Errorf("%s: complex argument on real backend: %w", op, ErrDomain)
	}

	return real(z), nil
}

// Sin returns sin(x).
func (Real) Sin(z complex128) (complex128, error) {
	x, err := realArg("Sin", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Sin(x), 0), nil
}

// Cos returns cos(x).
func (Real) Cos(z complex128) (complex128, error) {
	x, err := realArg("Cos", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Cos(x), 0), nil
}

// Tan returns tan(x).
func (Real) Tan(z complex128) (complex128, error) {
	x, err := realArg("Tan", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Tan(x), 0), nil
}

// Asin returns arcsin(x); |x| > 1 is outside the real domain.
func (Real) Asin(z complex128) (complex128, error) {
	x, err := realArg("Asin", z)
	if err != nil {
		return 0, err
	}
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("Asin: argument outside [-1,1]: %w", ErrDomain)
	}

	return complex(math.Asin(x), 0), nil
}

// Acos returns arccos(x); |x| > 1 is outside the real domain.
func (Real) Acos(z complex128) (complex128, error) {
	x, err := realArg("Acos", z)
	if err != nil {
		return 0, err
	}
	if x < -1 || x > 1 {
		return 0, fmt.Errorf("Acos: argument outside [-1,1]: %w", ErrDomain)
	}

	return complex(math.Acos(x), 0), nil
}

// Atan returns arctan(x).
func (Real) Atan(z complex128) (complex128, error) {
	x, err := realArg("Atan", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Atan(x), 0), nil
}

// Sinh returns sinh(x).
func (Real) Sinh(z complex128) (complex128, error) {
	x, err := realArg("Sinh", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Sinh(x), 0), nil
}

// Cosh returns cosh(x).
func (Real) Cosh(z complex128) (complex128, error) {
	x, err := realArg("Cosh", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Cosh(x), 0), nil
}

// Tanh returns tanh(x).
func (Real) Tanh(z complex128) (complex128, error) {
	x, err := realArg("Tanh", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Tanh(x), 0), nil
}

// Exp returns e**x.
func (Real) Exp(z complex128) (complex128, error) {
	x, err := realArg("Exp", z)
	if err != nil {
		return 0, err
	}

	return complex(math.Exp(x), 0), nil
}

// Log returns ln(x); x ≤ 0 is outside the real domain.
func (Real) Log(z complex128) (complex128, error) {
	x, err := realArg("Log", z)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, fmt.Errorf("Log: non-positive argument: %w", ErrDomain)
	}

	return complex(math.Log(x), 0), nil
}

// Sqrt returns √x; x < 0 is outside the real domain.
func (Real) Sqrt(z complex128) (complex128, error) {
	x, err := realArg("Sqrt", z)
	if err != nil {
		return 0, err
	}
	if x < 0 {
		return 0, fmt.Errorf("Sqrt: negative argument: %w", ErrDomain)
	}

	return complex(math.Sqrt(x), 0), nil
}

// Pow returns x**p; a negative base with a non-integer exponent has no
// real value and is rejected.
func (Real) Pow(z, w complex128) (complex128, error) {
	x, err := realArg("Pow", z)
	if err != nil {
		return 0, err
	}
	p, err := realArg("Pow", w)
	if err != nil {
		return 0, err
	}
	if x < 0 && p != math.Trunc(p) {
		return 0, fmt.Errorf("Pow: negative base, non-integer exponent: %w", ErrDomain)
	}
	if x == 0 && p <= 0 && p != 0 {
		return 0, fmt.Errorf("Pow: zero base, negative exponent: %w", ErrDomain)
	}

	return complex(math.Pow(x, p), 0), nil
}

// backendOf resolves the backend of an operand chain: an explicitly bound
// backend wins, otherwise the package default (Complex) applies.
func backendOf(ns ...Number) Backend {
	for _, n := range ns {
		switch t := n.(type) {
		case *Dual:
			if t.be != nil {
				return t.be
			}
		case *Hyper:
			if t.be != nil {
				return t.be
			}
		}
	}

	return Complex{}
}
