package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_AssignsByKindBuckets(t *testing.T) {
	nodes := []Node{
		{ID: "depot", Internal: 0, Kind: Depot},
		{ID: "dump", Internal: 1, Kind: Dump},
		{ID: "p1", Internal: 2, Kind: Pickup, Demand: 10},
		{ID: "p2", Internal: 3, Kind: Pickup, Demand: 20},
	}
	cat, err := NewCatalog(nodes)
	require.NoError(t, err)
	assert.Equal(t, 4, cat.N())
	assert.Equal(t, []int{0}, cat.ByKind(Depot))
	assert.Equal(t, []int{1}, cat.ByKind(Dump))
	assert.Equal(t, []int{2, 3}, cat.ByKind(Pickup))

	idx, ok := cat.Lookup("p2")
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestNewCatalog_RejectsDuplicateInternalID(t *testing.T) {
	nodes := []Node{
		{ID: "a", Internal: 0, Kind: Depot},
		{ID: "b", Internal: 0, Kind: Dump},
	}
	_, err := NewCatalog(nodes)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewCatalog_RejectsOutOfRangeInternalID(t *testing.T) {
	nodes := []Node{
		{ID: "a", Internal: 5, Kind: Depot},
	}
	_, err := NewCatalog(nodes)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestTravelTimeMatrix_SetAndTravel(t *testing.T) {
	m, err := NewTravelTimeMatrix(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 5))
	d, err := m.Travel(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	// Unset pair is unreachable.
	_, err = m.Travel(1, 0)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.False(t, m.Reachable(1, 0))
}

func TestTravelTimeMatrix_Asymmetric(t *testing.T) {
	m, err := NewTravelTimeMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))
	require.NoError(t, m.Set(1, 0, 7))

	d01, _ := m.Travel(0, 1)
	d10, _ := m.Travel(1, 0)
	assert.NotEqual(t, d01, d10)
}

func TestTravelTimeMatrix_RejectsNegative(t *testing.T) {
	m, err := NewTravelTimeMatrix(2)
	require.NoError(t, err)
	err = m.Set(0, 1, -1)
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

func TestTravelTimeMatrix_MarkUnreachableOverridesSet(t *testing.T) {
	m, err := NewTravelTimeMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 4))
	require.NoError(t, m.MarkUnreachable(0, 1))
	assert.False(t, m.Reachable(0, 1))
}

func TestTravelTimeMatrix_OutOfRangeIndex(t *testing.T) {
	m, err := NewTravelTimeMatrix(2)
	require.NoError(t, err)
	_, err = m.Travel(2, 0)
	assert.ErrorIs(t, err, ErrInvalidID)
}
