// Package trips implements bounded route enumeration over a frozen
// core.Graph.
//
// The walk is a plain depth-first recursion: one mutable prefix stack,
// name-sorted expansion, candidates judged after every extension. No
// visited set exists because revisits are the point.
package trips

import (
	"context"

	"github.com/katalvlaran/kiwirail/core"
)

// Trips returns every route from origin to destination satisfying the
// constraint, in deterministic depth-first discovery order.
//
// A route that lands on the destination is recorded and then extended
// further, so round trips through the destination are found too.
// Unknown towns yield an empty result, not an error.
//
// Complexity: see the package documentation; the walk is exhaustive
// within the constraint's bound.
func Trips(g *core.Graph, origin, destination string, c Constraint, opts ...Option) ([]core.Route, error) {
	// 1) Validate the graph handle.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Validate the constraint, including bounds recorded by its
	//    constructor.
	if err := c.validate(); err != nil {
		return nil, err
	}

	// 3) Apply options over the defaults and surface any recorded
	//    option error.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 4) Towns the graph has never heard of cannot contribute trips.
	if !g.HasTown(origin) || !g.HasTown(destination) {
		return nil, nil
	}

	// 5) Walk. The prefix stack starts with the origin alone: zero
	//    hops, zero distance.
	w := &walker{
		g:           g,
		destination: destination,
		constraint:  c,
		ctx:         o.Ctx,
		path:        []string{origin},
	}
	if err := w.walk(origin, 0, 0); err != nil {
		return nil, err
	}

	return w.found, nil
}

// Count returns the number of routes Trips finds under the same
// constraint and options.
func Count(g *core.Graph, origin, destination string, c Constraint, opts ...Option) (int, error) {
	routes, err := Trips(g, origin, destination, c, opts...)
	if err != nil {
		return 0, err
	}

	return len(routes), nil
}

// walker carries the mutable state of one enumeration.
type walker struct {
	g           *core.Graph
	destination string
	constraint  Constraint
	ctx         context.Context

	path  []string     // current prefix; path[0] is the origin
	found []core.Route // recorded candidates, in discovery order
}

// walk expands the prefix ending at `from` (stops hops, dist total) by
// every outgoing track, depth-first.
func (w *walker) walk(from string, stops int, dist int64) error {
	// Cancellation is checked once per expansion.
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	// The brake: a prefix at the bound stops growing.
	if !w.constraint.extend(stops, dist) {
		return nil
	}

	for _, track := range w.g.Outgoing(from) {
		nextStops := stops + 1
		nextDist := dist + track.Distance
		w.path = append(w.path, track.To)

		// Judge after every extension. A recorded route keeps walking,
		// which is how C→C finds C-D-C and later C-D-C-E-B-C.
		if track.To == w.destination && w.constraint.record(nextStops, nextDist) {
			r, err := core.NewRoute(nextDist, w.path...)
			if err != nil {
				return err
			}
			w.found = append(w.found, r)
		}

		if err := w.walk(track.To, nextStops, nextDist); err != nil {
			return err
		}
		w.path = w.path[:len(w.path)-1]
	}

	return nil
}
