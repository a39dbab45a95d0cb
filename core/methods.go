// Package core: read-side queries over the frozen Graph.
//
// Every method in this file is a pure read. Results are copies (or
// freshly built slices), never views into the graph's frozen indexes,
// so callers may mutate what they receive without corrupting shared
// state.
package core

import "fmt"

// Towns returns every town that appears in the graph, name-sorted.
//
// Complexity: O(V) per call (copy of the frozen roster).
func (g *Graph) Towns() []string {
	out := make([]string, len(g.towns))
	copy(out, g.towns)

	return out
}

// HasTown reports whether the town appears in the graph, as either an
// origin or a destination of some track.
func (g *Graph) HasTown(town string) bool {
	_, ok := g.townSet[town]
	return ok
}

// TownCount returns the number of distinct towns.
func (g *Graph) TownCount() int {
	return len(g.towns)
}

// EdgeCount returns the number of distinct directed tracks.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Edges reconstructs the track list, sorted by origin then destination.
//
// Complexity: O(E) per call (origins and successors are pre-sorted).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, from := range g.towns {
		out = append(out, g.Outgoing(from)...)
	}

	return out
}

// Outgoing returns the direct tracks leaving town, sorted by
// destination name. An unknown town yields an empty slice. This is the
// expansion step of the search packages: one call hands them successor
// and hop distance together.
//
// Complexity: O(deg(town)) per call.
func (g *Graph) Outgoing(town string) []Edge {
	nbrs := g.neighbors[town]
	out := make([]Edge, 0, len(nbrs))
	for _, to := range nbrs {
		out = append(out, Edge{From: town, To: to, Distance: g.direct[town][to]})
	}

	return out
}

// Neighbors returns the name-sorted towns reachable from town by one
// direct track. An unknown town (or one with no outgoing tracks)
// yields an empty slice, not an error.
//
// Complexity: O(deg(town)) per call.
func (g *Graph) Neighbors(town string) []string {
	nbrs := g.neighbors[town]
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// NearestNeighbors returns the full name-sorted tier of towns that sit
// at the minimal direct distance from town, skipping any listed in
// excluding. When a whole tier is excluded the next tier is consulted,
// so the result is empty only once every successor is excluded (or the
// town is unknown).
//
// Returning the complete tied tier, rather than one arbitrary winner,
// is what lets greedy searches branch over equal-distance tracks.
//
// Complexity: O(deg(town)) per call.
func (g *Graph) NearestNeighbors(town string, excluding ...string) []string {
	var skip map[string]struct{}
	if len(excluding) > 0 {
		skip = make(map[string]struct{}, len(excluding))
		for _, t := range excluding {
			skip[t] = struct{}{}
		}
	}

	// Distance tiers are frozen in ascending order; the first tier with
	// a surviving town is the nearest.
	for _, d := range g.distances[town] {
		var out []string
		for _, to := range g.byDistance[town][d] {
			if _, excluded := skip[to]; excluded {
				continue
			}
			out = append(out, to)
		}
		if len(out) > 0 {
			return out
		}
	}

	return nil
}

// EdgeDistance returns the length of the single direct from→to track,
// or ErrNoSuchRoute when no such track exists. from == to fails like
// any other missing track unless a self-loop edge was supplied.
//
// Complexity: O(1) per call.
func (g *Graph) EdgeDistance(from, to string) (int64, error) {
	d, ok := g.direct[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoSuchRoute, from, to)
	}

	return d, nil
}

// Trace walks an exact town sequence and returns it as a Route with
// its cumulative distance.
//
// The walk is atomic: the first missing hop rejects the whole path
// with ErrNoSuchRoute and no partial Route is returned. Fewer than two
// towns fail with ErrInvalidPath, since there is nothing to trace.
//
// Complexity: O(len(path)) time.
func (g *Graph) Trace(path ...string) (Route, error) {
	// 1) A trace needs at least one hop.
	if len(path) < 2 {
		return Route{}, fmt.Errorf("%w: got %d", ErrInvalidPath, len(path))
	}

	// 2) Accumulate consecutive hop distances, rejecting on the first
	//    track the graph does not have.
	var total int64
	for i := 0; i+1 < len(path); i++ {
		d, err := g.EdgeDistance(path[i], path[i+1])
		if err != nil {
			return Route{}, err
		}
		total += d
	}

	return NewRoute(total, path...)
}
