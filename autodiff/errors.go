package autodiff

import "errors"

// Sentinel errors for the differentiation engine.
//
// Callers branch with errors.Is; context is attached at use sites via
// fmt.Errorf("...: %w", ErrX). Domain violations raised inside a user
// function propagate unchanged as dual.ErrDomain.
var (
	// ErrNilFunc indicates a nil function was supplied to the engine.
	ErrNilFunc = errors.New("autodiff: function must be non-nil")

	// ErrDimension indicates malformed evaluation input: an empty point,
	// function and point lists of differing lengths, or a variable index
	// outside the seeded range.
	ErrDimension = errors.New("autodiff: dimension mismatch")

	// ErrMixedPartials indicates a request for ∂²f/∂xᵢ∂xⱼ with i ≠ j.
	// Only same-variable second derivatives are supported.
	ErrMixedPartials = errors.New("autodiff: mixed second partials unsupported")
)
