package cost

import (
	"testing"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/stretchr/testify/require"
)

func buildStateModel(t *testing.T) *state.Model {
	t.Helper()
	b := state.NewBuilder()
	require.NoError(t, b.Declare("trip_distance", state.VariableConfig{Kind: state.Distance, Accumulate: true}))
	require.NoError(t, b.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true}))
	return b.Build()
}

func TestCostModel_New_NoMatchingWeightRejected(t *testing.T) {
	sm := buildStateModel(t)
	_, err := New(sm, WithWeight("nonexistent", 1.0))
	require.ErrorIs(t, err, ErrNoMatchingWeight)
}

func TestCostModel_New_IgnoreUnknownWeights(t *testing.T) {
	sm := buildStateModel(t)
	m, err := New(sm, WithWeight("nonexistent", 1.0), WithIgnoreUnknownWeights())
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestCostModel_TraversalCost_SumOfWeightedIdentities(t *testing.T) {
	sm := buildStateModel(t)
	m, err := New(sm, WithWeight("trip_distance", 1.0), WithWeight("trip_time", 2.0))
	require.NoError(t, err)

	prev := sm.InitialState()
	next := prev.Clone()
	require.NoError(t, sm.AddDistance(next, "trip_distance", 100))
	require.NoError(t, sm.AddTime(next, "trip_time", 10))

	c, err := m.TraversalCost(prev, next, EdgeContext{Edge: 1, Vertex: 1})
	require.NoError(t, err)
	require.Equal(t, Cost(100+2*10), c)
}

func TestCostModel_TraversalCost_WithNetworkRate(t *testing.T) {
	sm := buildStateModel(t)
	tollTable := map[roadnet.EdgeId]Cost{5: 25}
	m, err := New(sm,
		WithWeight("trip_distance", 1.0),
		WithNetworkRate("trip_distance", EdgeLookup(tollTable)),
	)
	require.NoError(t, err)

	prev := sm.InitialState()
	next := prev.Clone()
	require.NoError(t, sm.AddDistance(next, "trip_distance", 50))

	c, err := m.TraversalCost(prev, next, EdgeContext{Edge: 5})
	require.NoError(t, err)
	require.Equal(t, Cost(50+25), c)
}

func TestCostModel_AccessCost(t *testing.T) {
	sm := buildStateModel(t)
	m, err := New(sm, WithWeight("trip_time", 1.0))
	require.NoError(t, err)

	prev := sm.InitialState()
	next := prev.Clone()
	require.NoError(t, sm.AddTime(next, "trip_time", 3))

	c, err := m.AccessCost(prev, next, AccessContext{PrevEdge: 1, NextEdge: 2, Vertex: 7})
	require.NoError(t, err)
	require.Equal(t, Cost(3), c)
}

func TestCostModel_MulAggregation(t *testing.T) {
	sm := buildStateModel(t)
	m, err := New(sm,
		WithWeight("trip_distance", 1.0),
		WithWeight("trip_time", 1.0),
		WithAggregation(Mul),
	)
	require.NoError(t, err)

	prev := sm.InitialState()
	next := prev.Clone()
	require.NoError(t, sm.AddDistance(next, "trip_distance", 4))
	require.NoError(t, sm.AddTime(next, "trip_time", 5))

	c, err := m.TraversalCost(prev, next, EdgeContext{})
	require.NoError(t, err)
	require.Equal(t, Cost(20), c)
}
