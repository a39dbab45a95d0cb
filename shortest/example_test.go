package shortest_test

import (
	"fmt"

	"github.com/katalvlaran/kiwirail/core"
	"github.com/katalvlaran/kiwirail/shortest"
)

// kiwiland builds the canonical network used by all examples:
//
//	A → B(5), D(5), E(7)
//	B → C(4)
//	C → D(8), E(2)
//	D → C(8), E(6)
//	E → B(3)
func kiwiland() *core.Graph {
	g, _ := core.NewGraph(
		core.Edge{From: "A", To: "B", Distance: 5},
		core.Edge{From: "B", To: "C", Distance: 4},
		core.Edge{From: "C", To: "D", Distance: 8},
		core.Edge{From: "D", To: "C", Distance: 8},
		core.Edge{From: "D", To: "E", Distance: 6},
		core.Edge{From: "A", To: "D", Distance: 5},
		core.Edge{From: "C", To: "E", Distance: 2},
		core.Edge{From: "E", To: "B", Distance: 3},
		core.Edge{From: "A", To: "E", Distance: 7},
	)

	return g
}

// ExampleShortestRoute finds the minimal route from A to C: two hops
// through B beat every branch through D or E.
func ExampleShortestRoute() {
	r, found, err := shortest.ShortestRoute(kiwiland(), "A", "C")
	if err != nil || !found {
		fmt.Println("no route")
		return
	}

	fmt.Printf("%s (distance %d)\n", r, r.Distance())

	// Output:
	// A-B-C (distance 9)
}

// ExampleShortestRoute_cycle asks for B→B, which the search reads as
// "the shortest round trip through B".
func ExampleShortestRoute_cycle() {
	r, found, _ := shortest.ShortestRoute(kiwiland(), "B", "B")
	if !found {
		fmt.Println("no cycle")
		return
	}

	fmt.Printf("%s (distance %d)\n", r, r.Distance())

	// Output:
	// B-C-E-B (distance 9)
}

// ExampleShortestRoute_notFound shows the not-found answer: absence
// of a route is reported through the boolean, never as an error.
func ExampleShortestRoute_notFound() {
	g, _ := core.NewGraph(
		core.Edge{From: "A", To: "B", Distance: 5},
		core.Edge{From: "C", To: "D", Distance: 8},
	)

	_, found, err := shortest.ShortestRoute(g, "A", "D")
	fmt.Println("found:", found, "err:", err)

	// Output:
	// found: false err: <nil>
}
