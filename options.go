package gocube

import "math/rand/v2"

// Option configures a Session.
type Option func(*config)

type config struct {
	applier   MoveApplier
	source    rand.Source
	solveOpts SolveOptions
	observers []func(Event)
}

func defaultConfig() *config {
	return &config{
		solveOpts: DefaultSolveOptions,
	}
}

// WithMoveApplier lets Scramble fold the generated moves into the board.
// Without it, scrambles are returned as text only.
func WithMoveApplier(a MoveApplier) Option {
	return func(c *config) {
		c.applier = a
	}
}

// WithRandSource sets the source used for scrambles.
// Useful for reproducible scrambles in tests.
func WithRandSource(src rand.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithSolveOptions sets the options passed to the solver on every call.
func WithSolveOptions(opts SolveOptions) Option {
	return func(c *config) {
		c.solveOpts = opts
	}
}

// WithObserver registers a callback fired after every state change.
// Callbacks run synchronously on the caller's goroutine.
func WithObserver(fn func(Event)) Option {
	return func(c *config) {
		c.observers = append(c.observers, fn)
	}
}
