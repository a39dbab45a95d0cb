// Package core_test validates graph construction: duplicate handling,
// frozen accessor views and determinism.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kiwirail/core"
)

// ------------------------------------------------------------------------
// 1. Construction: valid inputs.
// ------------------------------------------------------------------------

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph()
	require.NoError(t, err)

	assert.Zero(t, g.TownCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Towns())
	assert.Empty(t, g.Edges())
	assert.Empty(t, g.Neighbors("A"))
	assert.False(t, g.HasTown("A"))
}

func TestNewGraph_FreezesRoster(t *testing.T) {
	g := buildKiwiland(t)

	assert.Equal(t, 5, g.TownCount())
	assert.Equal(t, 9, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Towns())
	assert.True(t, g.HasTown("A"))
	assert.True(t, g.HasTown("E"))
	assert.False(t, g.HasTown("Z"))
}

func TestNewGraph_RoundTripsEveryEdge(t *testing.T) {
	g := buildKiwiland(t)

	for _, e := range kiwilandEdges() {
		d, err := g.EdgeDistance(e.From, e.To)
		require.NoError(t, err, "edge %s", e)
		assert.Equal(t, e.Distance, d, "edge %s", e)
	}
}

func TestGraph_Edges_SortedByOriginThenDestination(t *testing.T) {
	g := buildKiwiland(t)

	want := []core.Edge{
		{From: "A", To: "B", Distance: 5},
		{From: "A", To: "D", Distance: 5},
		{From: "A", To: "E", Distance: 7},
		{From: "B", To: "C", Distance: 4},
		{From: "C", To: "D", Distance: 8},
		{From: "C", To: "E", Distance: 2},
		{From: "D", To: "C", Distance: 8},
		{From: "D", To: "E", Distance: 6},
		{From: "E", To: "B", Distance: 3},
	}
	assert.Equal(t, want, g.Edges())
}

// ------------------------------------------------------------------------
// 2. Construction: duplicates and conflicts.
// ------------------------------------------------------------------------

func TestNewGraph_CollapsesIdenticalDuplicate(t *testing.T) {
	g, err := core.NewGraph(
		core.Edge{From: "A", To: "B", Distance: 5},
		core.Edge{From: "A", To: "B", Distance: 5},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	d, err := g.EdgeDistance("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(5), d)
}

func TestNewGraph_RejectsConflictingDuplicate(t *testing.T) {
	g, err := core.NewGraph(
		core.Edge{From: "A", To: "B", Distance: 5},
		core.Edge{From: "A", To: "B", Distance: 7},
	)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrDuplicateRoute)
}

func TestNewGraph_SharedDistanceIsNotAConflict(t *testing.T) {
	// Two tracks of equal length from the same origin are fine; only
	// the same ordered pair may not disagree.
	g, err := core.NewGraph(
		core.Edge{From: "A", To: "B", Distance: 5},
		core.Edge{From: "A", To: "D", Distance: 5},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 3. Determinism.
// ------------------------------------------------------------------------

func TestNewGraph_InputOrderIrrelevant(t *testing.T) {
	forward, err := core.NewGraph(kiwilandEdges()...)
	require.NoError(t, err)

	reversedInput := kiwilandEdges()
	for i, j := 0, len(reversedInput)-1; i < j; i, j = i+1, j-1 {
		reversedInput[i], reversedInput[j] = reversedInput[j], reversedInput[i]
	}
	backward, err := core.NewGraph(reversedInput...)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestEdge_String(t *testing.T) {
	e := core.Edge{From: "A", To: "B", Distance: 5}
	assert.Equal(t, "A→B (5)", e.String())
}
