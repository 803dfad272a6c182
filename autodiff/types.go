// Package autodiff defines the user-function contract and evaluation
// options for the differentiation engine.
package autodiff

import "github.com/katalvlaran/fractad/dual"

// Func is the sole contract the engine imposes on caller-supplied
// functions: one dual.Number per independent variable in, one
// dual.Number out, composed exclusively from the dual package's
// operations. Anything outside that closed set fails dynamically at
// the violating operation — no fallback exists.
type Func func(vars []dual.Number) (dual.Number, error)

// Option customizes one engine evaluation.
// Option constructors validate and panic on meaningless inputs;
// the engine itself never panics.
type Option func(*config)

// config collects resolved evaluation options.
type config struct {
	backend dual.Backend
}

// WithBackend binds every seed of the evaluation to the given numeric
// backend (real line, complex plane, or a test stub). Panics on nil to
// surface programmer error early.
// Complexity: O(1).
func WithBackend(be dual.Backend) Option {
	if be == nil {
		panic("autodiff: WithBackend(nil)")
	}

	return func(c *config) {
		c.backend = be
	}
}

// resolve applies options over the zero config.
func resolve(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}

	return c
}
