// Package shortest finds the minimal-distance route between two towns
// by a nearest-first branch search over a frozen core.Graph.
//
// What does it compute?
//
// The shortest route with at least one hop, so asking for A→A means
// "the shortest cycle through A", not the empty route. Intermediate
// towns are never revisited; only the destination stays open, which is
// what lets a cycle close.
//
// How does it search?
//
// From each town the walk consults core.NearestNeighbors: the full
// name-sorted tier of successors at minimal hop distance, visited
// towns excluded. Every town in that tier is branched into, the walk
// never reaches past the nearest tier, and the best finished candidate
// wins by strict comparison, so the first route found keeps a tie.
//
// The search is committed, not exhaustive: it rides nearest tiers all
// the way down. A route hiding behind a longer first hop is out of its
// reach, and "no route found" means none along nearest tiers. Callers
// who need every route under a bound want the trips package instead.
//
// Determinism:
//
// Tiers are name-sorted and tie-breaks are first-found, so two calls
// over the same graph return the identical route.
//
// Complexity:
//
//   - Time:  O(t^V) worst case, with t the widest tied tier; in
//     practice tiers are narrow and paths stop at V towns.
//   - Space: O(V) for the path stack.
//
// Errors:
//
//   - ErrGraphNil        - nil *core.Graph.
//   - ErrOptionViolation - invalid Option.
//
// Unknown towns are not errors: the search reports not-found through
// its boolean result, and the error return stays nil.
//
// Long searches honor WithContext; cancellation is checked once per
// expansion and surfaces the context's own error.
package shortest
