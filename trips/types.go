// Package trips defines the Constraint variants that bound an
// enumeration, plus options and error definitions.
package trips

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for trip enumeration.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// Trips or Count.
	ErrGraphNil = errors.New("trips: graph is nil")

	// ErrOptionViolation is returned when an invalid Constraint or
	// Option is supplied.
	ErrOptionViolation = errors.New("trips: invalid option supplied")
)

// constraintKind discriminates the Constraint variants.
type constraintKind uint8

const (
	kindInvalid constraintKind = iota
	kindMaxStops
	kindExactStops
	kindMaxDistance
)

// Constraint bounds an enumeration. Build one with MaxStops,
// ExactStops or MaxDistance; the zero Constraint is invalid and makes
// Trips fail with ErrOptionViolation.
//
// A malformed bound (below 1) is not reported by the constructor.
// It is recorded inside the Constraint and surfaced as
// ErrOptionViolation when the enumeration runs, so call sites keep
// the plain Trips(g, "A", "C", trips.MaxStops(3)) shape.
type Constraint struct {
	kind  constraintKind
	stops int
	dist  int64
	err   error
}

// MaxStops keeps routes with at most n hops, n ≥ 1.
func MaxStops(n int) Constraint {
	if n < 1 {
		return Constraint{err: fmt.Errorf("%w: MaxStops(%d), bound must be ≥ 1", ErrOptionViolation, n)}
	}

	return Constraint{kind: kindMaxStops, stops: n}
}

// ExactStops keeps routes with exactly n hops, n ≥ 1.
func ExactStops(n int) Constraint {
	if n < 1 {
		return Constraint{err: fmt.Errorf("%w: ExactStops(%d), bound must be ≥ 1", ErrOptionViolation, n)}
	}

	return Constraint{kind: kindExactStops, stops: n}
}

// MaxDistance keeps routes with total distance at most d, d ≥ 1.
func MaxDistance(d int64) Constraint {
	if d < 1 {
		return Constraint{err: fmt.Errorf("%w: MaxDistance(%d), bound must be ≥ 1", ErrOptionViolation, d)}
	}

	return Constraint{kind: kindMaxDistance, dist: d}
}

// String renders the constraint for logs: "max 3 stops",
// "exactly 4 stops", "max distance 29".
func (c Constraint) String() string {
	switch c.kind {
	case kindMaxStops:
		return fmt.Sprintf("max %d stops", c.stops)
	case kindExactStops:
		return fmt.Sprintf("exactly %d stops", c.stops)
	case kindMaxDistance:
		return fmt.Sprintf("max distance %d", c.dist)
	default:
		return "invalid constraint"
	}
}

// validate surfaces a malformed or zero Constraint.
func (c Constraint) validate() error {
	if c.err != nil {
		return c.err
	}
	if c.kind == kindInvalid {
		return fmt.Errorf("%w: zero Constraint, use MaxStops, ExactStops or MaxDistance", ErrOptionViolation)
	}

	return nil
}

// record reports whether a finished candidate with the given hop count
// and distance satisfies the constraint.
func (c Constraint) record(stops int, dist int64) bool {
	switch c.kind {
	case kindMaxStops:
		return stops <= c.stops
	case kindExactStops:
		return stops == c.stops
	case kindMaxDistance:
		return dist <= c.dist
	default:
		return false
	}
}

// extend reports whether a prefix with the given hop count and
// distance may grow one more hop. The comparison is strict: a prefix
// already at the bound can only produce candidates beyond it.
func (c Constraint) extend(stops int, dist int64) bool {
	switch c.kind {
	case kindMaxStops, kindExactStops:
		return stops < c.stops
	case kindMaxDistance:
		return dist < c.dist
	default:
		return false
	}
}

// Options holds parameters that tune an enumeration.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per prefix
	// expansion.
	Ctx context.Context

	// err records the first invalid Option, surfaced at run time.
	err error
}

// Option configures trip enumeration via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Trips is invoked.
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
