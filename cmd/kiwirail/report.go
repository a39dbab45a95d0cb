// Package main: the classic Kiwiland report, ten fixed queries in
// their traditional order.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/kiwirail/core"
	"github.com/katalvlaran/kiwirail/shortest"
	"github.com/katalvlaran/kiwirail/trips"
)

// reportDistanceCeiling is the exclusive bound of query #10: round
// trips from C with a distance of less than 30.
const reportDistanceCeiling = 30

// writeReport runs the ten classic queries in their traditional order
// and prints one "Output #N: answer" line each. Missing routes answer
// NO SUCH ROUTE; only infrastructure failures return an error.
func writeReport(w io.Writer, g *core.Graph) error {
	line := 0
	answer := func(v any) {
		line++
		fmt.Fprintf(w, "Output #%d: %v\n", line, v)
	}

	// 1-5) Exact path distances.
	for _, path := range [][]string{
		{"A", "B", "C"},
		{"A", "D"},
		{"A", "D", "C"},
		{"A", "E", "B", "C", "D"},
		{"A", "E", "D"},
	} {
		r, err := g.Trace(path...)
		if err != nil {
			if !errors.Is(err, core.ErrNoSuchRoute) {
				return err
			}
			answer(noSuchRoute)
			continue
		}
		answer(r.Distance())
	}

	// 6) Round trips from C with at most 3 stops.
	n, err := trips.Count(g, "C", "C", trips.MaxStops(3))
	if err != nil {
		return err
	}
	answer(n)

	// 7) Routes from A to C with exactly 4 stops.
	n, err = trips.Count(g, "A", "C", trips.ExactStops(4))
	if err != nil {
		return err
	}
	answer(n)

	// 8-9) Shortest routes A→C and the round trip B→B.
	for _, q := range [][2]string{{"A", "C"}, {"B", "B"}} {
		r, found, err := shortest.ShortestRoute(g, q[0], q[1])
		if err != nil {
			return err
		}
		if !found {
			answer(noSuchRoute)
			continue
		}
		answer(r.Distance())
	}

	// 10) Round trips from C with distance under the ceiling; the
	//     library bound is inclusive, so it gets ceiling-1.
	n, err = trips.Count(g, "C", "C", trips.MaxDistance(reportDistanceCeiling-1))
	if err != nil {
		return err
	}
	answer(n)

	return nil
}
