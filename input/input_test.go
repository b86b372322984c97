package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashroute/vrptrash/catalog"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOtherLocs_ParsesDepotAndDump(t *testing.T) {
	path := writeTemp(t, "otherlocs.txt", "# comment\ndepot 0 0 0 0 1000000000 0 0\ndump 1 1 0 0 1000000000 0 1\n")
	recs, err := LoadOtherLocs(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, catalog.Depot, recs[0].Kind)
	assert.Equal(t, catalog.Dump, recs[1].Kind)
}

func TestLoadContainers_ForcesPickupKind(t *testing.T) {
	path := writeTemp(t, "containers.txt", "p1 2 2 10 0 1000000000 0 9\n")
	recs, err := LoadContainers(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, catalog.Pickup, recs[0].Kind)
	assert.Equal(t, 10.0, recs[0].Demand)
}

func TestLoadContainers_MalformedFieldCount(t *testing.T) {
	path := writeTemp(t, "containers.txt", "p1 2 2 10\n")
	_, err := LoadContainers(path)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestBuildCatalog_RejectsDemandOnDepot(t *testing.T) {
	otherlocs := []Record{{ID: "depot", Kind: catalog.Depot, Demand: 5}}
	_, err := BuildCatalog(nil, otherlocs)
	assert.ErrorIs(t, err, ErrSemanticInvalid)
}

func fullFixture(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	otherlocs := []Record{
		{ID: "depot", X: 0, Y: 0, Open: 0, Close: 1e9},
		{ID: "dump", X: 1, Y: 1, Open: 0, Close: 1e9, Kind: catalog.Dump},
	}
	containers := []Record{
		{ID: "p1", X: 2, Y: 2, Demand: 10, Open: 0, Close: 1e9, Kind: catalog.Pickup},
	}
	cat, err := BuildCatalog(containers, otherlocs)
	require.NoError(t, err)
	return cat, writeTemp(t, "vehicles.txt", "v1 100 depot dump depot 0 1000000000 1 1 1\n")
}

func TestLoadVehicles_ResolvesDepotIDs(t *testing.T) {
	cat, path := fullFixture(t)
	specs, err := LoadVehicles(path, cat)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	start, _ := cat.Lookup("depot")
	assert.Equal(t, start, specs[0].StartDepot)
	assert.Equal(t, 100.0, specs[0].Capacity)
}

func TestLoadVehicles_UnknownDepotIsSemanticInvalid(t *testing.T) {
	cat, _ := fullFixture(t)
	path := writeTemp(t, "vehicles.txt", "v1 100 ghost dump depot 0 1000000000 1 1 1\n")
	_, err := LoadVehicles(path, cat)
	assert.ErrorIs(t, err, ErrSemanticInvalid)
}

func TestLoadVehicles_NonPositiveCapacity(t *testing.T) {
	cat, _ := fullFixture(t)
	path := writeTemp(t, "vehicles.txt", "v1 0 depot dump depot 0 1000000000 1 1 1\n")
	_, err := LoadVehicles(path, cat)
	assert.ErrorIs(t, err, ErrSemanticInvalid)
}

func TestLoadMatrix_SetsKnownPairsLeavesUnknownUnreachable(t *testing.T) {
	cat, _ := fullFixture(t)
	path := writeTemp(t, "matrix.txt", "depot p1 2\np1 dump 1\n")
	mat, err := LoadMatrix(path, cat)
	require.NoError(t, err)

	d, _ := cat.Lookup("depot")
	p1, _ := cat.Lookup("p1")
	dump, _ := cat.Lookup("dump")

	duration, err := mat.Travel(d, p1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, duration)

	_, err = mat.Travel(dump, d)
	assert.ErrorIs(t, err, catalog.ErrUnreachable)
}

func TestLoadMatrix_UnknownNodeIsSemanticInvalid(t *testing.T) {
	cat, _ := fullFixture(t)
	path := writeTemp(t, "matrix.txt", "ghost p1 2\n")
	_, err := LoadMatrix(path, cat)
	assert.ErrorIs(t, err, ErrSemanticInvalid)
}
