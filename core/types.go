// Package core declares the railroad primitives: directed Edge inputs,
// the frozen Graph they build, and the sentinel errors every kiwirail
// package branches on.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrDuplicateRoute is returned by NewGraph when the same ordered
	// town pair appears with two different distances.
	ErrDuplicateRoute = errors.New("core: duplicate route with conflicting distance")

	// ErrNoSuchRoute is returned when a direct track, or a hop of a
	// traced path, does not exist in the graph.
	ErrNoSuchRoute = errors.New("core: no such route")

	// ErrInvalidPath is returned by Trace when fewer than two towns
	// are supplied.
	ErrInvalidPath = errors.New("core: path needs at least two towns")

	// ErrEmptyRoute is returned by NewRoute when no towns are supplied.
	ErrEmptyRoute = errors.New("core: route needs at least one town")

	// ErrNegativeDistance is returned by NewRoute when the supplied
	// distance is negative.
	ErrNegativeDistance = errors.New("core: route distance must be non-negative")
)

// Edge is one directed track between two towns.
//
// Edges exist only as construction input: NewGraph consumes them once
// and the resulting Graph never hands the caller anything mutable back.
type Edge struct {
	// From is the town the track leaves.
	From string

	// To is the town the track arrives at.
	To string

	// Distance is the track length, ≥ 0.
	Distance int64
}

// String renders the edge as "A→B (5)".
func (e Edge) String() string {
	return fmt.Sprintf("%s→%s (%d)", e.From, e.To, e.Distance)
}

// Graph is an immutable directed town graph.
//
// All derived views are precomputed and frozen by NewGraph:
//
//	direct[from][to]        = distance of the single from→to track
//	byDistance[from][d]     = name-sorted towns exactly d away from `from`
//	distances[from]         = ascending distance tiers leaving `from`
//	neighbors[from]         = name-sorted direct successors of `from`
//
// Nothing mutates a Graph after construction, so any number of
// goroutines may query it concurrently without synchronization.
type Graph struct {
	direct     map[string]map[string]int64
	byDistance map[string]map[int64][]string
	distances  map[string][]int64
	neighbors  map[string][]string

	towns     []string
	townSet   map[string]struct{}
	edgeCount int
}

// NewGraph builds a frozen Graph from the given edges.
//
// Repeated identical edges collapse into one track; the same ordered
// pair with two different distances is a contradiction and fails with
// ErrDuplicateRoute. An empty edge list yields a valid empty graph.
//
// Complexity: O(E·log E) time, O(V+E) space.
func NewGraph(edges ...Edge) (*Graph, error) {
	g := &Graph{
		direct:     make(map[string]map[string]int64),
		byDistance: make(map[string]map[int64][]string),
		distances:  make(map[string][]int64),
		neighbors:  make(map[string][]string),
		townSet:    make(map[string]struct{}),
	}

	// 1) Fold edges in input order, catching contradictory duplicates.
	for _, e := range edges {
		if known, ok := g.direct[e.From][e.To]; ok {
			if known == e.Distance {
				continue // identical repeat, collapse silently
			}

			return nil, fmt.Errorf("%w: %s→%s given as both %d and %d",
				ErrDuplicateRoute, e.From, e.To, known, e.Distance)
		}
		if g.direct[e.From] == nil {
			g.direct[e.From] = make(map[string]int64)
		}
		g.direct[e.From][e.To] = e.Distance
		g.townSet[e.From] = struct{}{}
		g.townSet[e.To] = struct{}{}
		g.edgeCount++
	}

	// 2) Freeze the derived views. Every slice is sorted here, exactly
	//    once, so queries never sort on the hot path.
	for from, out := range g.direct {
		buckets := make(map[int64][]string, len(out))
		nbrs := make([]string, 0, len(out))
		for to, d := range out {
			buckets[d] = append(buckets[d], to)
			nbrs = append(nbrs, to)
		}

		tiers := make([]int64, 0, len(buckets))
		for d := range buckets {
			sort.Strings(buckets[d])
			tiers = append(tiers, d)
		}
		sort.Slice(tiers, func(i, j int) bool { return tiers[i] < tiers[j] })
		sort.Strings(nbrs)

		g.byDistance[from] = buckets
		g.distances[from] = tiers
		g.neighbors[from] = nbrs
	}

	// 3) Freeze the town roster.
	g.towns = make([]string, 0, len(g.townSet))
	for t := range g.townSet {
		g.towns = append(g.towns, t)
	}
	sort.Strings(g.towns)

	return g, nil
}
