// Package core defines the immutable railroad graph at the heart of
// kiwirail, together with the Route value type that every query package
// hands back to callers.
//
// What is the core graph?
//
// A directed, weighted town graph G = (V,E) built exactly once from a
// list of Edge values and frozen from then on:
//
//   - One-way tracks: an A→B edge says nothing about B→A.
//   - At most one track per ordered town pair; contradictory duplicates
//     are rejected at construction (ErrDuplicateRoute), repeated
//     identical edges collapse silently.
//   - No self-loops in practice: parse rejects a track that starts and
//     ends in the same town before it ever reaches NewGraph.
//   - Distances are non-negative int64 values.
//
// Because NewGraph precomputes every derived index (sorted neighbor
// lists, per-origin distance tiers), all queries read frozen data and
// the Graph is safe for unlimited concurrent readers with no locking.
//
// What can it answer?
//
//   - Neighbors(town)            - name-sorted direct successors.
//   - NearestNeighbors(town, …)  - the closest tier of successors,
//     optionally skipping excluded towns.
//   - EdgeDistance(from, to)     - length of one direct track.
//   - Trace(path…)               - distance of an exact town sequence,
//     or ErrNoSuchRoute when any hop is missing.
//
// Why immutable?
//
//   - Determinism: every accessor returns the same sorted answer on
//     every call, which keeps trip enumeration reproducible.
//   - Safety: search packages (trips, shortest) fan out goroutine-free
//     recursion over shared state that cannot change underneath them.
//
// Errors:
//
//   - ErrDuplicateRoute    - same ordered pair given two distances.
//   - ErrNoSuchRoute       - direct track or traced hop does not exist.
//   - ErrInvalidPath       - Trace needs at least two towns.
//   - ErrEmptyRoute        - NewRoute called with no towns.
//   - ErrNegativeDistance  - NewRoute called with a negative distance.
//
// See trips for constrained route enumeration and shortest for minimal
// round trips; both operate on *core.Graph and return core.Route.
package core
