package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kiwirail/core"
)

func TestNewRoute_NoTowns(t *testing.T) {
	_, err := core.NewRoute(0)
	assert.ErrorIs(t, err, core.ErrEmptyRoute)
}

func TestNewRoute_NegativeDistance(t *testing.T) {
	_, err := core.NewRoute(-1, "A", "B")
	assert.ErrorIs(t, err, core.ErrNegativeDistance)
}

func TestNewRoute_SingleTown(t *testing.T) {
	r, err := core.NewRoute(0, "A")
	require.NoError(t, err)

	assert.Equal(t, "A", r.Origin())
	assert.Equal(t, "A", r.Destination())
	assert.Zero(t, r.NumStops())
	assert.Zero(t, r.Distance())
	assert.Equal(t, "A", r.String())
}

func TestNewRoute_CopiesInput(t *testing.T) {
	towns := []string{"A", "B", "C"}
	r, err := core.NewRoute(9, towns...)
	require.NoError(t, err)

	towns[0] = "X"
	assert.Equal(t, "A", r.Origin(), "route must not alias the caller's slice")
}

func TestRoute_Accessors(t *testing.T) {
	r, err := core.NewRoute(9, "A", "B", "C")
	require.NoError(t, err)

	assert.Equal(t, "A", r.Origin())
	assert.Equal(t, "C", r.Destination())
	assert.Equal(t, 2, r.NumStops())
	assert.Equal(t, int64(9), r.Distance())
	assert.Equal(t, []string{"A", "B", "C"}, r.Towns())
	assert.Equal(t, "A-B-C", r.String())
}

func TestRoute_TownsIsACopy(t *testing.T) {
	r, err := core.NewRoute(9, "A", "B", "C")
	require.NoError(t, err)

	towns := r.Towns()
	towns[0] = "X"
	assert.Equal(t, "A", r.Origin())
	assert.Equal(t, []string{"A", "B", "C"}, r.Towns())
}

func TestRoute_AddStopDerivesSiblingsWithoutAliasing(t *testing.T) {
	base, err := core.NewRoute(9, "A", "B", "C")
	require.NoError(t, err)

	// Two branches off the same prefix: if AddStop shared the backing
	// array, the second branch would overwrite the first one's tail.
	viaD := base.AddStop("D", 8)
	viaE := base.AddStop("E", 2)

	assert.Equal(t, "A-B-C", base.String())
	assert.Equal(t, int64(9), base.Distance())

	assert.Equal(t, "A-B-C-D", viaD.String())
	assert.Equal(t, int64(17), viaD.Distance())
	assert.Equal(t, 3, viaD.NumStops())

	assert.Equal(t, "A-B-C-E", viaE.String())
	assert.Equal(t, int64(11), viaE.Distance())
}

func TestRoute_AddStopChain(t *testing.T) {
	r, err := core.NewRoute(0, "A")
	require.NoError(t, err)

	r = r.AddStop("B", 5).AddStop("C", 4)
	assert.Equal(t, "A-B-C", r.String())
	assert.Equal(t, int64(9), r.Distance())
	assert.Equal(t, 2, r.NumStops())
}

func TestRoute_ZeroValue(t *testing.T) {
	var r core.Route

	assert.Empty(t, r.Origin())
	assert.Empty(t, r.Destination())
	assert.Zero(t, r.NumStops())
	assert.Zero(t, r.Distance())
	assert.Empty(t, r.Towns())
	assert.Empty(t, r.String())
}
