package dual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/fractad/dual"
)

// TestSin_ChainRule verifies ∂ᵥ sin(x) = cos(value(x)) · ∂ᵥ x, including
// through a composite inner operand.
func TestSin_ChainRule(t *testing.T) {
	x := dual.Var(0, 0)

	s, err := dual.Sin(x)
	assert.NoError(t, err)
	d := s.(*dual.Dual)
	assert.Equal(t, complex128(0), d.Value(), "sin 0 = 0")
	assert.Equal(t, complex128(1), d.Partial(0), "cos 0 = 1")

	// sin(x²) at x = 2: inner derivative 2x scales the cosine.
	x2 := dual.Var(0, 2)
	sq, err := dual.Mul(x2, x2)
	assert.NoError(t, err)
	s2, err := dual.Sin(sq)
	assert.NoError(t, err)
	d2 := s2.(*dual.Dual)
	assert.True(t, scalar.EqualWithinAbs(real(d2.Value()), math.Sin(4), 1e-12))
	assert.True(t, scalar.EqualWithinAbs(real(d2.Partial(0)), 4*math.Cos(4), 1e-12),
		"∂ sin(x²) = cos(x²)·2x")
}

// TestTrigDerivatives spot-checks the closed-form rules of the
// trigonometric and hyperbolic family at a generic point.
func TestTrigDerivatives(t *testing.T) {
	const at = 0.3
	cases := []struct {
		name string
		fn   func(dual.Number) (dual.Number, error)
		want float64
	}{
		{"Cos", dual.Cos, -math.Sin(at)},
		{"Tan", dual.Tan, 1 + math.Tan(at)*math.Tan(at)},
		{"Asin", dual.Asin, 1 / math.Sqrt(1-at*at)},
		{"Acos", dual.Acos, -1 / math.Sqrt(1-at*at)},
		{"Atan", dual.Atan, 1 / (1 + at*at)},
		{"Sinh", dual.Sinh, math.Cosh(at)},
		{"Cosh", dual.Cosh, math.Sinh(at)},
		{"Tanh", dual.Tanh, 1 - math.Tanh(at)*math.Tanh(at)},
		{"Exp", dual.Exp, math.Exp(at)},
		{"Log", dual.Log, 1 / at},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.fn(dual.Var(0, at))
			assert.NoError(t, err)
			got := out.(*dual.Dual).Partial(0)
			assert.True(t, scalar.EqualWithinAbs(real(got), tc.want, 1e-12),
				"%s′(%g): got %v want %v", tc.name, at, got, tc.want)
			assert.True(t, scalar.EqualWithinAbs(imag(got), 0, 1e-12))
		})
	}
}

// TestConstDelegation ensures a plain scalar operand delegates purely to
// the backend and comes back as a plain scalar.
func TestConstDelegation(t *testing.T) {
	out, err := dual.Exp(dual.Lift(1))
	assert.NoError(t, err)
	assert.IsType(t, dual.Const(0), out, "Const in, Const out")
	assert.True(t, scalar.EqualWithinAbs(real(out.Value()), math.E, 1e-12))
}

// TestLog_DomainErrors: log of zero fails on every backend; log of a
// negative value fails only on the real line.
func TestLog_DomainErrors(t *testing.T) {
	_, err := dual.Log(dual.Var(0, 0))
	assert.ErrorIs(t, err, dual.ErrDomain, "log 0 undefined everywhere")

	_, err = dual.Log(dual.VarWith(0, -1, dual.Real{}))
	assert.ErrorIs(t, err, dual.ErrDomain, "log of a negative real")

	out, err := dual.Log(dual.Var(0, -1))
	assert.NoError(t, err, "complex backend takes the principal branch")
	assert.True(t, scalar.EqualWithinAbs(imag(out.Value()), math.Pi, 1e-12))
}

// TestArcsin_DomainErrors: |x| > 1 is outside the real arcsine domain,
// and the slope is undefined exactly at ±1.
func TestArcsin_DomainErrors(t *testing.T) {
	_, err := dual.Asin(dual.VarWith(0, 1.5, dual.Real{}))
	assert.ErrorIs(t, err, dual.ErrDomain, "real arcsin outside [-1,1]")

	_, err = dual.Acos(dual.VarWith(0, -1.5, dual.Real{}))
	assert.ErrorIs(t, err, dual.ErrDomain, "real arccos outside [-1,1]")

	_, err = dual.Asin(dual.Var(0, 1))
	assert.ErrorIs(t, err, dual.ErrDomain, "arcsin slope undefined at 1")

	// The value alone is fine at the boundary: no derivative involved.
	v, err := dual.Asin(dual.Lift(1))
	assert.NoError(t, err)
	assert.True(t, scalar.EqualWithinAbs(real(v.Value()), math.Pi/2, 1e-12))
}

// stubBackend overrides Sin with a fixed value to show the engine is
// decoupled from the numeric library underneath.
type stubBackend struct{ dual.Complex }

func (stubBackend) Sin(complex128) (complex128, error) { return 42, nil }

// TestBackendStubbing runs an elementary function against a stubbed
// backend: the value comes from the stub, the derivative rule from the
// engine.
func TestBackendStubbing(t *testing.T) {
	x := dual.VarWith(0, 0, stubBackend{})

	out, err := dual.Sin(x)
	assert.NoError(t, err)
	d := out.(*dual.Dual)
	assert.Equal(t, complex128(42), d.Value(), "value supplied by the stub")
	assert.Equal(t, complex128(1), d.Partial(0), "derivative rule still cos(0) = 1")
}

// TestHyperElementary propagates second derivatives through elementary
// functions: (sin x)″ = −sin x and (e^x)″ = e^x.
func TestHyperElementary(t *testing.T) {
	const at = 0.7
	h := dual.HyperVar(at)

	s, err := dual.Sin(h)
	assert.NoError(t, err)
	hs := s.(*dual.Hyper)
	assert.True(t, scalar.EqualWithinAbs(real(hs.First()), math.Cos(at), 1e-12))
	assert.True(t, scalar.EqualWithinAbs(real(hs.Second()), -math.Sin(at), 1e-12))

	e, err := dual.Exp(h)
	assert.NoError(t, err)
	he := e.(*dual.Hyper)
	assert.True(t, scalar.EqualWithinAbs(real(he.Second()), math.Exp(at), 1e-12))
}
