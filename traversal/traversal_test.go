package traversal

import (
	"testing"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/stretchr/testify/require"
)

func buildLinearGraph(t *testing.T) *roadnet.Graph {
	t.Helper()
	b := roadnet.NewBuilder()
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(0, 0.008)
	v2 := b.AddVertex(0, 0.012)
	b.AddEdge(v0, v1, 1000)
	b.AddEdge(v1, v2, 500)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func buildDistanceStateModel(t *testing.T) *state.Model {
	t.Helper()
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("trip_distance", state.VariableConfig{Kind: state.Distance, Accumulate: true}))
	return b.Build()
}

func TestDistanceModel_TraverseEdge(t *testing.T) {
	g := buildLinearGraph(t)
	sm := buildDistanceStateModel(t)
	svc := NewDistanceService(g)
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, model.TraverseEdge(Trajectory{Src: 0, Edge: 0, Dst: 1}, st, sm))
	edgeDist, err := sm.GetDistance(st, "edge_distance")
	require.NoError(t, err)
	require.Equal(t, 1000.0, edgeDist)
	tripDist, err := sm.GetDistance(st, "trip_distance")
	require.NoError(t, err)
	require.Equal(t, 1000.0, tripDist)

	require.NoError(t, model.TraverseEdge(Trajectory{Src: 1, Edge: 1, Dst: 2}, st, sm))
	tripDist, err = sm.GetDistance(st, "trip_distance")
	require.NoError(t, err)
	require.Equal(t, 1500.0, tripDist)
}

func TestSpeedModel_MissingEdgeRejected(t *testing.T) {
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("edge_speed", state.VariableConfig{Kind: state.Speed}))
	sm := b.Build()

	svc := NewSpeedService(map[roadnet.EdgeId]float64{0: 20})
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	err = model.TraverseEdge(Trajectory{Edge: 99}, st, sm)
	require.ErrorIs(t, err, ErrMissingEdgeSpeed)
}

func TestSpeedModel_CapApplied(t *testing.T) {
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("edge_speed", state.VariableConfig{Kind: state.Speed}))
	sm := b.Build()

	svc := NewSpeedService(map[roadnet.EdgeId]float64{0: 30})
	model, err := svc.BuildModel(BuildParams{SpeedCapMetersPerSecond: 20}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, model.TraverseEdge(Trajectory{Edge: 0}, st, sm))
	speed, err := sm.GetSpeed(st, "edge_speed")
	require.NoError(t, err)
	require.Equal(t, 20.0, speed)
}

func buildTimeStateModel(t *testing.T) *state.Model {
	t.Helper()
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("edge_speed", state.VariableConfig{Kind: state.Speed}))
	require.NoError(t, b.Declare("edge_time", state.VariableConfig{Kind: state.Time}))
	require.NoError(t, b.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true}))
	return b.Build()
}

func TestTimeModel_TraverseEdge(t *testing.T) {
	sm := buildTimeStateModel(t)
	g := buildLinearGraph(t)
	svc := NewTimeService(g)
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetDistance(st, "edge_distance", 100))
	require.NoError(t, sm.SetSpeed(st, "edge_speed", 10))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st, sm))

	edgeTime, err := sm.GetTime(st, "edge_time")
	require.NoError(t, err)
	require.Equal(t, 10.0, edgeTime)
}

func TestTimeModel_EstimateTraversalIsAdmissible(t *testing.T) {
	sm := buildTimeStateModel(t)
	g := buildLinearGraph(t)
	svc := NewTimeService(g)
	model, err := svc.BuildModel(BuildParams{SpeedCapMetersPerSecond: 10}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, model.EstimateTraversal(ODPair{Src: 0, Dst: 2}, st, sm))
	estimate, err := sm.GetTime(st, "trip_time")
	require.NoError(t, err)

	st2 := sm.InitialState()
	require.NoError(t, sm.SetDistance(st2, "edge_distance", 1000))
	require.NoError(t, sm.SetSpeed(st2, "edge_speed", 10))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st2, sm))
	require.NoError(t, sm.SetDistance(st2, "edge_distance", 500))
	require.NoError(t, sm.SetSpeed(st2, "edge_speed", 10))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st2, sm))
	actual, err := sm.GetTime(st2, "trip_time")
	require.NoError(t, err)

	require.LessOrEqual(t, estimate, actual+1e-6)
}

func buildEnergyStateModel(t *testing.T, class VehicleClass) *state.Model {
	t.Helper()
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("edge_speed", state.VariableConfig{Kind: state.Speed}))
	require.NoError(t, b.Declare("trip_energy_liquid", state.VariableConfig{Kind: state.Energy, Accumulate: true}))
	if class != ICE {
		require.NoError(t, b.Declare("trip_energy_electric", state.VariableConfig{Kind: state.Energy, Accumulate: true}))
		require.NoError(t, b.Declare("trip_soc", state.VariableConfig{Kind: state.Ratio, InitialValue: 1.0}))
	}
	return b.Build()
}

func TestEnergyModel_ICE(t *testing.T) {
	sm := buildEnergyStateModel(t, ICE)
	svc := NewEnergyService(ICE, ConstantEnergyPredictor{RateJoulesPerMeter: 2}, nil, 0)
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetDistance(st, "edge_distance", 100))
	require.NoError(t, sm.SetSpeed(st, "edge_speed", 10))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st, sm))

	energy, err := sm.GetEnergy(st, "trip_energy_liquid")
	require.NoError(t, err)
	require.Equal(t, 200.0, energy)
}

func TestEnergyModel_BEV_DrainsAndClampsSoC(t *testing.T) {
	sm := buildEnergyStateModel(t, BEV)
	svc := NewEnergyService(BEV, ConstantEnergyPredictor{RateJoulesPerMeter: 100}, nil, 1000)
	model, err := svc.BuildModel(BuildParams{BatteryCapacityJoules: 1000}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetDistance(st, "edge_distance", 20))
	require.NoError(t, sm.SetSpeed(st, "edge_speed", 10))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st, sm))

	soc, err := sm.GetRatio(st, "trip_soc")
	require.NoError(t, err)
	require.Equal(t, 0.0, soc)
}

func TestEnergyModel_PHEVSwitchesAtThreshold(t *testing.T) {
	sm := buildEnergyStateModel(t, PHEV)
	svc := NewEnergyService(PHEV, ConstantEnergyPredictor{RateJoulesPerMeter: 1}, nil, 100)
	model, err := svc.BuildModel(BuildParams{BatteryCapacityJoules: 100, PHEVSwitchThreshold: 0.5}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetRatio(st, "trip_soc", 0.4))
	require.NoError(t, sm.SetDistance(st, "edge_distance", 10))
	require.NoError(t, sm.SetSpeed(st, "edge_speed", 5))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st, sm))

	liquid, err := sm.GetEnergy(st, "trip_energy_liquid")
	require.NoError(t, err)
	require.Equal(t, 10.0, liquid)
	electric, err := sm.GetEnergy(st, "trip_energy_electric")
	require.NoError(t, err)
	require.Equal(t, 0.0, electric)
}

func TestChargingModel_ChargesBelowThreshold(t *testing.T) {
	b := state.NewBuilder()
	require.NoError(t, b.Declare("trip_soc", state.VariableConfig{Kind: state.Ratio, InitialValue: 1.0}))
	require.NoError(t, b.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true}))
	sm := b.Build()

	stations := map[roadnet.VertexId]ChargingStation{5: {PowerWatts: 50, PowerType: "dcfc"}}
	svc := NewChargingService(stations)
	model, err := svc.BuildModel(BuildParams{
		BatteryCapacityJoules:   1000,
		ChargingThreshold:       0.5,
		SoCFullTarget:           1.0,
		AllowedStationPowerType: map[string]bool{"dcfc": true},
	}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetRatio(st, "trip_soc", 0.2))
	require.NoError(t, model.TraverseEdge(Trajectory{Dst: 5}, st, sm))

	soc, err := sm.GetRatio(st, "trip_soc")
	require.NoError(t, err)
	require.Equal(t, 1.0, soc)
	dwell, err := sm.GetTime(st, "trip_time")
	require.NoError(t, err)
	require.Equal(t, 0.8*1000/50, dwell)
}

func TestChargingModel_SkipsNonStation(t *testing.T) {
	b := state.NewBuilder()
	require.NoError(t, b.Declare("trip_soc", state.VariableConfig{Kind: state.Ratio, InitialValue: 1.0}))
	require.NoError(t, b.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true}))
	sm := b.Build()

	svc := NewChargingService(map[roadnet.VertexId]ChargingStation{})
	model, err := svc.BuildModel(BuildParams{BatteryCapacityJoules: 1000, ChargingThreshold: 0.5}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetRatio(st, "trip_soc", 0.1))
	require.NoError(t, model.TraverseEdge(Trajectory{Dst: 99}, st, sm))
	soc, err := sm.GetRatio(st, "trip_soc")
	require.NoError(t, err)
	require.Equal(t, 0.1, soc)
}

func TestCombined_CallsChildrenInOrder(t *testing.T) {
	g := buildLinearGraph(t)
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("trip_distance", state.VariableConfig{Kind: state.Distance, Accumulate: true}))
	require.NoError(t, b.Declare("edge_speed", state.VariableConfig{Kind: state.Speed}))
	require.NoError(t, b.Declare("edge_time", state.VariableConfig{Kind: state.Time}))
	require.NoError(t, b.Declare("trip_time", state.VariableConfig{Kind: state.Time, Accumulate: true}))
	sm := b.Build()

	distModel, err := NewDistanceService(g).BuildModel(BuildParams{}, sm)
	require.NoError(t, err)
	speedModel, err := NewSpeedService(map[roadnet.EdgeId]float64{0: 10}).BuildModel(BuildParams{}, sm)
	require.NoError(t, err)
	timeModel, err := NewTimeService(g).BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	combined := NewCombined(false, distModel, speedModel, timeModel)
	st := sm.InitialState()
	require.NoError(t, combined.TraverseEdge(Trajectory{Src: 0, Edge: 0, Dst: 1}, st, sm))

	tripTime, err := sm.GetTime(st, "trip_time")
	require.NoError(t, err)
	require.Equal(t, 100.0, tripTime)
}

func buildElevationStateModel(t *testing.T) *state.Model {
	t.Helper()
	b := state.NewBuilder()
	require.NoError(t, b.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, b.Declare("edge_grade", state.VariableConfig{Kind: state.Ratio}))
	require.NoError(t, b.Declare("trip_elevation_gain", state.VariableConfig{Kind: state.Distance, Accumulate: true}))
	require.NoError(t, b.Declare("trip_elevation_loss", state.VariableConfig{Kind: state.Distance, Accumulate: true}))
	return b.Build()
}

func TestGradeModel_PublishesEdgeGrade(t *testing.T) {
	sm := buildElevationStateModel(t)
	svc := NewGradeService(map[roadnet.EdgeId]float64{0: 0.05})
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, model.TraverseEdge(Trajectory{Edge: 0}, st, sm))
	grade, err := sm.GetRatio(st, "edge_grade")
	require.NoError(t, err)
	require.Equal(t, 0.05, grade)
}

func TestGradeModel_DefaultsToZeroForUnknownEdge(t *testing.T) {
	sm := buildElevationStateModel(t)
	svc := NewGradeService(map[roadnet.EdgeId]float64{0: 0.05})
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, model.TraverseEdge(Trajectory{Edge: 99}, st, sm))
	grade, err := sm.GetRatio(st, "edge_grade")
	require.NoError(t, err)
	require.Equal(t, 0.0, grade)
}

func TestElevationModel_AccumulatesGainAndLossFromState(t *testing.T) {
	sm := buildElevationStateModel(t)
	svc := NewElevationService()
	model, err := svc.BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	st := sm.InitialState()
	require.NoError(t, sm.SetDistance(st, "edge_distance", 100))
	require.NoError(t, sm.SetRatio(st, "edge_grade", 0.1))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st, sm))
	gain, err := sm.GetDistance(st, "trip_elevation_gain")
	require.NoError(t, err)
	require.Equal(t, 10.0, gain)

	require.NoError(t, sm.SetDistance(st, "edge_distance", 100))
	require.NoError(t, sm.SetRatio(st, "edge_grade", -0.2))
	require.NoError(t, model.TraverseEdge(Trajectory{}, st, sm))
	loss, err := sm.GetDistance(st, "trip_elevation_loss")
	require.NoError(t, err)
	require.Equal(t, 20.0, loss)
}

func TestGradeAndElevation_ComposeThroughCombined(t *testing.T) {
	sm := buildElevationStateModel(t)

	gradeModel, err := NewGradeService(map[roadnet.EdgeId]float64{0: 0.1}).BuildModel(BuildParams{}, sm)
	require.NoError(t, err)
	elevationModel, err := NewElevationService().BuildModel(BuildParams{}, sm)
	require.NoError(t, err)

	combined := NewCombined(false, gradeModel, elevationModel)
	st := sm.InitialState()
	require.NoError(t, sm.SetDistance(st, "edge_distance", 200))
	require.NoError(t, combined.TraverseEdge(Trajectory{Edge: 0}, st, sm))

	gain, err := sm.GetDistance(st, "trip_elevation_gain")
	require.NoError(t, err)
	require.Equal(t, 20.0, gain)
}
