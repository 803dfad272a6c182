package newton_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fractad/autodiff"
	"github.com/katalvlaran/fractad/dual"
	"github.com/katalvlaran/fractad/newton"
)

// unityCubed is f(z) = z³ − 1, whose roots are the three cube roots of
// unity.
func unityCubed(v []dual.Number) (dual.Number, error) {
	z3, err := dual.PowReal(v[0], 3)
	if err != nil {
		return nil, err
	}

	return dual.Sub(z3, dual.Lift(1))
}

// cubeRoots returns the three cube roots of unity.
func cubeRoots() []complex128 {
	return []complex128{
		1,
		complex(-0.5, math.Sqrt(3)/2),
		complex(-0.5, -math.Sqrt(3)/2),
	}
}

// TestFindRoot_CubeRootsOfUnity: a start near each root of z³ − 1
// converges to that root within ε = 1e-8, K = 50.
func TestFindRoot_CubeRootsOfUnity(t *testing.T) {
	opts := newton.Options{Tolerance: 1e-8, MaxIter: 50}

	for _, root := range cubeRoots() {
		start := root + complex(0.2, 0.1)
		res, err := newton.FindRoot(unityCubed, start, &opts)
		assert.NoError(t, err, "start %v", start)
		assert.True(t, res.Converged, "start %v must converge", start)
		assert.Less(t, cmplx.Abs(res.Root-root), 1e-6,
			"start %v landed at %v, expected %v", start, res.Root, root)
		assert.LessOrEqual(t, res.Iterations, 50)
	}
}

// TestFindRoot_CriticalPoint: z = 0 is the critical point of z³ − 1
// (f′(0) = 0, f(0) ≠ 0) — a stationary start with no valid update.
func TestFindRoot_CriticalPoint(t *testing.T) {
	opts := newton.DefaultOptions()

	_, err := newton.FindRoot(unityCubed, 0, &opts)
	assert.ErrorIs(t, err, newton.ErrZeroDerivative)
}

// TestFindRoot_MultipleRoot: at a multiple root f and f′ vanish
// together; the residual check fires first, so a start on the root
// still reports convergence instead of a stationary-point error.
func TestFindRoot_MultipleRoot(t *testing.T) {
	square := func(v []dual.Number) (dual.Number, error) { return dual.Mul(v[0], v[0]) }
	opts := newton.DefaultOptions()

	res, err := newton.FindRoot(square, 0, &opts)
	assert.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, complex128(0), res.Root)
	assert.Equal(t, 0, res.Iterations, "already at the root")
}

// TestFindRoot_NonConvergence: exhausting MaxIter is a normal terminal
// state, not an error. f(z) = z³ − 1 from far away cannot settle in two
// iterations.
func TestFindRoot_NonConvergence(t *testing.T) {
	opts := newton.Options{Tolerance: 1e-12, MaxIter: 2}

	res, err := newton.FindRoot(unityCubed, complex(50, 50), &opts)
	assert.NoError(t, err, "non-convergence must not error")
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations, "all iterations spent")
}

// TestFindRoot_NilOptsDefaults: nil options fall back to DefaultOptions.
func TestFindRoot_NilOptsDefaults(t *testing.T) {
	res, err := newton.FindRoot(unityCubed, 2, nil)
	assert.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Less(t, cmplx.Abs(res.Root-1), 1e-9, "real start slides to the real root")
}

// TestFindRoot_Validation covers the option and function guards.
func TestFindRoot_Validation(t *testing.T) {
	opts := newton.DefaultOptions()
	_, err := newton.FindRoot(nil, 0, &opts)
	assert.ErrorIs(t, err, newton.ErrNilFunction)

	bad := newton.Options{Tolerance: 0, MaxIter: 10}
	_, err = newton.FindRoot(unityCubed, 0, &bad)
	assert.ErrorIs(t, err, newton.ErrBadTolerance)

	bad = newton.Options{Tolerance: 1e-8, MaxIter: 0}
	_, err = newton.FindRoot(unityCubed, 0, &bad)
	assert.ErrorIs(t, err, newton.ErrBadMaxIter)
}

// TestFindRoot_DomainErrorPropagates: a domain violation inside f (here
// log hitting zero) aborts the iteration with dual.ErrDomain.
func TestFindRoot_DomainErrorPropagates(t *testing.T) {
	logf := func(v []dual.Number) (dual.Number, error) { return dual.Log(v[0]) }
	opts := newton.DefaultOptions()

	_, err := newton.FindRoot(logf, 0, &opts)
	assert.ErrorIs(t, err, dual.ErrDomain)
}

// TestFindRoot_Transcendental: Newton handles non-polynomial f too:
// cos(z) has a root at π/2.
func TestFindRoot_Transcendental(t *testing.T) {
	cosf := func(v []dual.Number) (dual.Number, error) { return dual.Cos(v[0]) }
	opts := newton.Options{Tolerance: 1e-12, MaxIter: 50}

	res, err := newton.FindRoot(cosf, 1.3, &opts)
	assert.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Less(t, cmplx.Abs(res.Root-complex(math.Pi/2, 0)), 1e-9)
}

// benchFindRoot drives FindRoot from a fixed start for benchmarking.
func benchFindRoot(b *testing.B, f autodiff.Func, z0 complex128) {
	opts := newton.Options{Tolerance: 1e-12, MaxIter: 64}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := newton.FindRoot(f, z0, &opts); err != nil {
			b.Fatalf("FindRoot failed: %v", err)
		}
	}
}

// BenchmarkFindRoot_Cubic measures convergence on z³ − 1.
func BenchmarkFindRoot_Cubic(b *testing.B) { benchFindRoot(b, unityCubed, 0.7+0.9i) }
