// Package trips enumerates every route between two towns that
// satisfies a bound on stops or on total distance, revisits included.
//
// What is a trip?
//
// A route of at least one hop from origin to destination. Towns and
// tracks may repeat freely: C→D→C→D→C is a legitimate trip, and a trip
// that reaches the destination may keep going and reach it again. The
// only thing that stops the walk is the constraint itself.
//
// Constraints:
//
//   - MaxStops(n)    - keep routes with 1..n hops.
//   - ExactStops(n)  - keep routes with exactly n hops.
//   - MaxDistance(d) - keep routes with total distance ≤ d.
//
// Every constraint plays two roles. As a filter it judges a finished
// candidate (stops ≤ n, stops == n, distance ≤ d). As a brake it
// decides whether the current prefix may grow one more hop, and there
// it is strict (stops < n, distance < d), which is what makes the walk
// finite on positive-length tracks. A bound below 1 is rejected at
// run time with ErrOptionViolation, as is the zero Constraint.
//
// Determinism:
//
// The walk is depth-first over name-sorted successors, and candidates
// are recorded the moment their final hop lands on the destination.
// Two calls over the same graph therefore return identical slices, in
// identical order.
//
// Complexity:
//
//   - Time:  O(b^k) worst case, where b is the maximum out-degree and
//     k the stop bound (or distance bound divided by the shortest
//     track). Trip enumeration never prunes below the bound.
//   - Space: O(k) for the prefix stack, plus the recorded routes.
//
// Termination relies on every track having positive length: a
// zero-length cycle under MaxDistance would never exhaust the budget.
// Graphs built from the parse package always satisfy this.
//
// Errors:
//
//   - ErrGraphNil        - nil *core.Graph.
//   - ErrOptionViolation - invalid Constraint or Option.
//
// Unknown origin or destination towns are not errors: a town the
// graph has never heard of simply yields no trips.
//
// Long enumerations honor WithContext: cancellation is checked once
// per prefix expansion and surfaces the context's own error.
package trips
