package access

import (
	"testing"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/stretchr/testify/require"
)

func TestTurnThresholds_Classify(t *testing.T) {
	th := DefaultTurnThresholds()
	cases := []struct {
		delta float64
		want  TurnCategory
	}{
		{0, NoTurn},
		{5, NoTurn},
		{30, SlightTurn},
		{90, RightTurn},
		{-90, LeftTurn},
		{170, UTurn},
		{-170, UTurn},
	}
	for _, c := range cases {
		require.Equal(t, c.want, th.Classify(c.delta), "delta=%v", c.delta)
	}
}

func buildTurnDelayStateModel(t *testing.T) *state.Model {
	t.Helper()
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_turn_delay", state.VariableConfig{Kind: state.Time}))
	require.NoError(t, b.Declare("edge_time", state.VariableConfig{Kind: state.Time}))
	require.NoError(t, b.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true}))
	return b.Build()
}

func TestTurnDelayModel_RightTurnScenario(t *testing.T) {
	// Triangle: e0: 0->1 heading 0deg, e1: 1->2 heading 90deg (right turn).
	heading := map[roadnet.EdgeId]float64{0: 0, 1: 90}
	delays := map[TurnCategory]float64{RightTurn: 3}
	svc := NewTurnDelayService(heading, DefaultTurnThresholds(), delays)

	sm := buildTurnDelayStateModel(t)
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetTime(st, "edge_time", 10))
	require.NoError(t, model.TraverseAccess(Trajectory{V1: 0, EPrev: 0, V2: 1, ENext: 1, V3: 2}, st, sm))

	delay, err := sm.GetTime(st, "edge_turn_delay")
	require.NoError(t, err)
	require.Equal(t, 3.0, delay)

	edgeTime, err := sm.GetTime(st, "edge_time")
	require.NoError(t, err)
	require.Equal(t, 13.0, edgeTime)

	tripTime, err := sm.GetTime(st, "trip_time")
	require.NoError(t, err)
	require.Equal(t, 3.0, tripTime)
}

func TestTurnDelayModel_MissingHeadingRejected(t *testing.T) {
	svc := NewTurnDelayService(map[roadnet.EdgeId]float64{0: 0}, DefaultTurnThresholds(), nil)
	sm := buildTurnDelayStateModel(t)
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	err = model.TraverseAccess(Trajectory{EPrev: 0, ENext: 99}, st, sm)
	require.ErrorIs(t, err, ErrMissingEdgeHeading)
}

func TestTurnDelayModel_UnconfiguredCategoryDefaultsZero(t *testing.T) {
	heading := map[roadnet.EdgeId]float64{0: 0, 1: 1}
	svc := NewTurnDelayService(heading, DefaultTurnThresholds(), nil)
	sm := buildTurnDelayStateModel(t)
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, model.TraverseAccess(Trajectory{EPrev: 0, ENext: 1}, st, sm))
	delay, err := sm.GetTime(st, "edge_turn_delay")
	require.NoError(t, err)
	require.Equal(t, 0.0, delay)
}
