// Package kiwirail answers routing questions over a small directed,
// weighted network of towns: exact-path distances, bounded trip
// enumeration, and cycle-tolerant shortest routes.
//
// 🚂 What is kiwirail?
//
//	A compact, dependency-light library built around one immutable Graph:
//		• Core primitives: validated edges, a distance-keyed adjacency index,
//		  and an immutable Route value type
//		• Path tracing: follow an exact stop sequence and total its distance
//		• Trip enumeration: exhaustive depth-first search under a single
//		  constraint (maximum stops, exact stops, or maximum distance)
//		• Shortest routes: greedy nearest-first search that tolerates cycles,
//		  including round trips back to the starting town
//
// ✨ Why choose kiwirail?
//
//   - Deterministic – every query returns name-sorted, reproducible results
//   - Immutable by construction – build the Graph once, query it from any
//     number of goroutines with no locking
//   - Exhaustive over clever – correctness on small cyclic networks beats
//     asymptotic heroics; no heuristics, no approximation
//   - Small surface – a handful of operations, sentinel errors, errors.Is
//
// Everything is organized under four subpackages and one CLI:
//
//	core/        - Graph, Route, Edge; construction, lookups, path tracing
//	trips/       - constrained trip enumeration (MaxStops / ExactStops / MaxDistance)
//	shortest/    - nearest-first shortest-route search over cyclic networks
//	parse/       - "AB5"-style edge text, "A-B-C" paths, YAML network files
//	cmd/kiwirail - command-line driver for the canonical query report
//
// Quick ASCII example:
//
//	    A──5──▶B
//	    │       \
//	    5        4
//	    │         ▼
//	    ▼   8
//	    D◀─────▶C──2──▶E──3──▶B
//	     \      ▲
//	      6     │ (and A──7──▶E)
//	       ▼    │
//	        E───┘
//
//	Kiwiland: five towns, nine one-way tracks, cycles everywhere.
//
//	go get github.com/katalvlaran/kiwirail
package kiwirail
