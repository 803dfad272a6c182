// Package fractad is your in-memory playground for forward-mode automatic
// differentiation and the Newton fractals it makes possible — from dual-number
// primitives to multi-core renders of convergence basins on the complex plane.
//
// 🚀 What is fractad?
//
//	A modern, dependency-light library that brings together:
//		• Dual numbers: values carrying exact partial derivatives through
//		  every elementary operation (chain, product, quotient rules)
//		• Elementary functions: sin/cos/tan, arcsin/arccos/arctan,
//		  sinh/cosh/tanh, exp/log — all derivative-aware
//		• Differentiation engine: gradients, Jacobians, and the restricted
//		  same-variable second derivative via hyperdual seeding
//		• Newton's method: root finding driven by analytic derivatives
//		• Fractal grids: per-cell Newton scans of a complex rectangle,
//		  colored by basin of attraction
//
// ✨ Why choose fractad?
//
//   - Exact derivatives – no finite-difference noise, machine-precision partials
//   - Pure computations – every operation allocates a fresh value, no hidden state
//   - Pluggable backends – real-line or complex-plane numerics, stub-friendly
//   - Parallel scans – the fractal generator saturates all cores out of the box
//
// Under the hood, everything is organized under four subpackages:
//
//	dual/     — the Dual number type, arithmetic, elementary functions & backends
//	autodiff/ — AutoDiff, Jacobian and SecondPartial over user-supplied functions
//	newton/   — Newton root-finding iteration with convergence reporting
//	fractal/  — grid scanning, root discovery and PNG rendering of basins
//
// Quick ASCII example:
//
//	    f(z) = z³ − 1  over  [−2,2]×[−2,2]
//
//	scans to three interlocking basins, one per cube root of unity.
//
// Dive into the package docs for full examples and into cmd/fractad for a
// ready-made fractal renderer.
//
//	go get github.com/katalvlaran/fractad
package fractad
