// Package shortest implements the nearest-first branch search.
//
// One mutable path stack, recursion over core.NearestNeighbors tiers,
// a single best candidate kept under strict comparison.
package shortest

import (
	"context"

	"github.com/katalvlaran/kiwirail/core"
)

// ShortestRoute returns the minimal-distance route from origin to
// destination along nearest tiers, with found reporting whether any
// candidate completed. origin == destination searches for the
// shortest cycle.
//
// Unknown towns yield (zero Route, false, nil): absence of a route is
// an answer, not an error.
func ShortestRoute(g *core.Graph, origin, destination string, opts ...Option) (core.Route, bool, error) {
	// 1) Validate the graph handle.
	if g == nil {
		return core.Route{}, false, ErrGraphNil
	}

	// 2) Apply options over the defaults and surface any recorded
	//    option error.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.Route{}, false, o.err
	}

	// 3) Towns the graph has never heard of cannot be routed between.
	if !g.HasTown(origin) || !g.HasTown(destination) {
		return core.Route{}, false, nil
	}

	// 4) Search. The path stack starts with the origin alone.
	s := &searcher{
		g:           g,
		destination: destination,
		ctx:         o.Ctx,
		path:        []string{origin},
	}
	if err := s.search(origin, 0); err != nil {
		return core.Route{}, false, err
	}

	return s.best, s.found, nil
}

// searcher carries the mutable state of one search.
type searcher struct {
	g           *core.Graph
	destination string
	ctx         context.Context

	path  []string   // current prefix; path[0] is the origin
	best  core.Route // minimal finished candidate so far
	found bool
}

// search expands the prefix ending at current (dist total so far) into
// the nearest tier of unvisited successors.
func (s *searcher) search(current string, dist int64) error {
	// Cancellation is checked once per expansion.
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	// A candidate must move: the bare origin never completes, which is
	// what turns origin == destination into a cycle search.
	if len(s.path) >= 2 && current == s.destination {
		r, err := core.NewRoute(dist, s.path...)
		if err != nil {
			return err
		}
		// Strict comparison keeps the first-found route on a tie.
		if !s.found || r.Distance() < s.best.Distance() {
			s.best, s.found = r, true
		}

		return nil
	}

	// Visited towns are closed to revisits. The destination stays
	// open, or no cycle could ever close.
	excluding := make([]string, 0, len(s.path))
	for _, town := range s.path {
		if town == s.destination {
			continue
		}
		excluding = append(excluding, town)
	}

	// Branch into the whole tied tier: any of the equally-near
	// successors may lead to the globally shorter finish.
	for _, next := range s.g.NearestNeighbors(current, excluding...) {
		hop, err := s.g.EdgeDistance(current, next)
		if err != nil {
			return err
		}

		s.path = append(s.path, next)
		if err := s.search(next, dist+hop); err != nil {
			return err
		}
		s.path = s.path[:len(s.path)-1]
	}

	return nil
}
