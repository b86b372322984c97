package twc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashroute/vrptrash/catalog"
)

func newFixture(t *testing.T) (*catalog.Catalog, *catalog.TravelTimeMatrix) {
	t.Helper()
	nodes := []catalog.Node{
		{ID: "depot", Internal: 0, Kind: catalog.Depot, Window: catalog.Window{Open: 0, Close: 1e9}},
		{ID: "p1", Internal: 1, Kind: catalog.Pickup, Demand: 10, Window: catalog.Window{Open: 0, Close: 1e9}, Service: 5},
		{ID: "p2", Internal: 2, Kind: catalog.Pickup, Demand: 20, Window: catalog.Window{Open: 0, Close: 1}, Service: 0},
	}
	cat, err := catalog.NewCatalog(nodes)
	require.NoError(t, err)

	mat, err := catalog.NewTravelTimeMatrix(3)
	require.NoError(t, err)
	require.NoError(t, mat.Set(0, 1, 1))
	require.NoError(t, mat.Set(1, 2, 1))
	require.NoError(t, mat.Set(0, 2, 1))
	return cat, mat
}

func TestOracle_CompatibleWithinWindow(t *testing.T) {
	cat, mat := newFixture(t)
	o := Build(cat, mat)
	// depot -> p1: earliest departure 0, travel 1, arrival 1 <= close 1e9.
	assert.True(t, o.Compatible(0, 1))
}

func TestOracle_IncompatibleAcrossTightWindow(t *testing.T) {
	cat, mat := newFixture(t)
	o := Build(cat, mat)
	// p1 -> p2: earliest departure = 0+service(5) = 5, travel 1, arrival 6 > close 1.
	assert.False(t, o.Compatible(1, 2))
}

func TestOracle_UnreachablePairIsIncompatible(t *testing.T) {
	cat, _ := newFixture(t)
	mat, err := catalog.NewTravelTimeMatrix(3)
	require.NoError(t, err)
	o := Build(cat, mat)
	assert.False(t, o.Compatible(0, 1))
}

func TestOracle_NearestCompatible(t *testing.T) {
	cat, mat := newFixture(t)
	o := Build(cat, mat)
	best, dur, ok := o.NearestCompatible(0, []int{1, 2})
	require.True(t, ok)
	assert.Equal(t, 1.0, dur)
	assert.Contains(t, []int{1, 2}, best)
}

func TestOracle_SelfPairNeverCompatible(t *testing.T) {
	cat, mat := newFixture(t)
	o := Build(cat, mat)
	assert.False(t, o.Compatible(0, 0))
}
