package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashroute/vrptrash/catalog"
	"github.com/trashroute/vrptrash/route"
	"github.com/trashroute/vrptrash/twc"
)

const bigWindow = 1e9

func fixture(t *testing.T) (*catalog.Catalog, *catalog.TravelTimeMatrix) {
	t.Helper()
	nodes := []catalog.Node{
		{ID: "depot", Internal: 0, Kind: catalog.Depot, Window: catalog.Window{Open: 0, Close: bigWindow}},
		{ID: "dump", Internal: 1, Kind: catalog.Dump, Window: catalog.Window{Open: 0, Close: bigWindow}},
		{ID: "p1", Internal: 2, Kind: catalog.Pickup, Demand: 10, Window: catalog.Window{Open: 0, Close: bigWindow}},
		{ID: "p2", Internal: 3, Kind: catalog.Pickup, Demand: 10, Window: catalog.Window{Open: 0, Close: bigWindow}},
	}
	cat, err := catalog.NewCatalog(nodes)
	require.NoError(t, err)

	mat, err := catalog.NewTravelTimeMatrix(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				require.NoError(t, mat.Set(i, j, 1))
			}
		}
	}
	return cat, mat
}

func TestBuild_PlacesAllPickupsWhenCapacityAllows(t *testing.T) {
	cat, mat := fixture(t)
	oracle := twc.Build(cat, mat)
	vehicles := []VehicleSpec{
		{ID: "v1", Capacity: 100, StartDepot: 0, Dump: 1, EndDepot: 0, ShiftOpen: 0, ShiftClose: bigWindow, Weights: route.Weights{Travel: 1, Capacity: 1, Window: 1}},
	}

	sol, err := Build(cat, mat, oracle, vehicles)
	require.NoError(t, err)
	assert.Empty(t, sol.Unassigned())
	assert.Len(t, sol.Routes(), 1)
	assert.True(t, sol.Routes()[0].Feasible())
}

func TestBuild_InsertsDumpWhenCapacityForcesIt(t *testing.T) {
	cat, mat := fixture(t)
	oracle := twc.Build(cat, mat)
	vehicles := []VehicleSpec{
		{ID: "v1", Capacity: 15, StartDepot: 0, Dump: 1, EndDepot: 0, ShiftOpen: 0, ShiftClose: bigWindow, Weights: route.Weights{Travel: 1, Capacity: 1, Window: 1}},
	}

	sol, err := Build(cat, mat, oracle, vehicles)
	require.NoError(t, err)
	assert.Empty(t, sol.Unassigned())
	r := sol.Routes()[0]
	assert.Equal(t, 0, r.CapViolations())
	dumpVisits := 0
	for p := 0; p < r.Len(); p++ {
		if cat.Node(r.NodeAt(p)).Kind == catalog.Dump {
			dumpVisits++
		}
	}
	assert.GreaterOrEqual(t, dumpVisits, 2) // interior + trailing sandwich
}

func TestBuild_LeavesUnfittableContainersUnassigned(t *testing.T) {
	cat, mat := fixture(t)
	oracle := twc.Build(cat, mat)
	vehicles := []VehicleSpec{
		{ID: "v1", Capacity: 5, StartDepot: 0, Dump: 1, EndDepot: 0, ShiftOpen: 0, ShiftClose: bigWindow, Weights: route.Weights{Travel: 1, Capacity: 1, Window: 1}},
	}

	sol, err := Build(cat, mat, oracle, vehicles)
	require.NoError(t, err)
	assert.NotEmpty(t, sol.Unassigned())
}

func TestBuild_OrdersVehiclesByShiftOpen(t *testing.T) {
	cat, mat := fixture(t)
	oracle := twc.Build(cat, mat)
	vehicles := []VehicleSpec{
		{ID: "late", Capacity: 100, StartDepot: 0, Dump: 1, EndDepot: 0, ShiftOpen: 100, ShiftClose: bigWindow, Weights: route.Weights{Travel: 1, Capacity: 1, Window: 1}},
		{ID: "early", Capacity: 100, StartDepot: 0, Dump: 1, EndDepot: 0, ShiftOpen: 0, ShiftClose: bigWindow, Weights: route.Weights{Travel: 1, Capacity: 1, Window: 1}},
	}

	sol, err := Build(cat, mat, oracle, vehicles)
	require.NoError(t, err)
	require.Len(t, sol.Routes(), 2)
	assert.Equal(t, "early", sol.Routes()[0].VehicleID())
	assert.Equal(t, "late", sol.Routes()[1].VehicleID())
}

func TestBuild_NoVehicles(t *testing.T) {
	cat, mat := fixture(t)
	oracle := twc.Build(cat, mat)
	_, err := Build(cat, mat, oracle, nil)
	assert.ErrorIs(t, err, ErrNoVehicles)
}
