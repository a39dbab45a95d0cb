// Package core_test helpers shared by the construction, route and
// query test files.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kiwirail/core"
)

// kiwilandEdges returns the canonical nine-track network used across
// the test files:
//
//	A → B(5), D(5), E(7)
//	B → C(4)
//	C → D(8), E(2)
//	D → C(8), E(6)
//	E → B(3)
func kiwilandEdges() []core.Edge {
	return []core.Edge{
		{From: "A", To: "B", Distance: 5},
		{From: "B", To: "C", Distance: 4},
		{From: "C", To: "D", Distance: 8},
		{From: "D", To: "C", Distance: 8},
		{From: "D", To: "E", Distance: 6},
		{From: "A", To: "D", Distance: 5},
		{From: "C", To: "E", Distance: 2},
		{From: "E", To: "B", Distance: 3},
		{From: "A", To: "E", Distance: 7},
	}
}

// buildKiwiland constructs the canonical network, failing the test on
// any construction error.
func buildKiwiland(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(kiwilandEdges()...)
	require.NoError(t, err)

	return g
}
