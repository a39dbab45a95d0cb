// Package shortest provides options and error definitions for the
// nearest-first route search.
package shortest

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the route search.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// ShortestRoute.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("shortest: invalid option supplied")
)

// Options holds parameters that tune a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per
	// expansion.
	Ctx context.Context

	// err records the first invalid Option, surfaced at run time.
	err error
}

// Option configures the search via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation
// when ShortestRoute is invoked.
type Option func(*Options)

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: WithContext(nil)", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// DefaultOptions returns the baseline configuration:
// background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
