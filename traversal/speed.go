package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// SpeedService is the process-start collaborator for the default Speed
// traversal model: an immutable per-edge speed lookup table, per spec.md
// §4.2.
type SpeedService struct {
	table map[roadnet.EdgeId]float64 // meters per second
}

// NewSpeedService returns a SpeedService backed by table.
func NewSpeedService(table map[roadnet.EdgeId]float64) *SpeedService {
	return &SpeedService{table: table}
}

// BuildModel resolves the optional per-query speed cap.
func (s *SpeedService) BuildModel(p BuildParams, sm *state.Model) (Model, error) {
	edgeDistIdx, err := sm.Index("edge_distance")
	if err != nil {
		return nil, err
	}
	edgeSpeedIdx, err := sm.Index("edge_speed")
	if err != nil {
		return nil, err
	}
	return &speedModel{
		table:        s.table,
		cap:          p.SpeedCapMetersPerSecond,
		edgeDistIdx:  edgeDistIdx,
		edgeSpeedIdx: edgeSpeedIdx,
	}, nil
}

type speedModel struct {
	table        map[roadnet.EdgeId]float64
	cap          float64
	edgeDistIdx  int
	edgeSpeedIdx int
}

func (m *speedModel) InputFeatures() []state.InputFeature {
	return []state.InputFeature{{Name: "edge_distance", Unit: "meters"}}
}

func (m *speedModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "edge_speed", Config: state.VariableConfig{Kind: state.Speed, Accumulate: false}},
	}
}

func (m *speedModel) lookup(edge roadnet.EdgeId) (float64, error) {
	speed, ok := m.table[edge]
	if !ok {
		return 0, ErrMissingEdgeSpeed
	}
	if m.cap > 0 && speed > m.cap {
		speed = m.cap
	}
	return speed, nil
}

func (m *speedModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	speed, err := m.lookup(traj.Edge)
	if err != nil {
		return err
	}
	return sm.SetSpeed(st, "edge_speed", speed)
}

// EstimateTraversal is a no-op: Speed contributes no distance/time bound
// on its own; Time's estimator folds the speed cap into its own bound.
func (m *speedModel) EstimateTraversal(_ ODPair, _ state.Vector, _ *state.Model) error {
	return nil
}

// TimeOfDaySpeedService supplements the plain per-edge speed table with
// hour-of-day speed buckets, matching the original's
// compass-prototype/src/time_of_day_speed.rs. Each edge maps to 24
// hourly speeds instead of one constant.
type TimeOfDaySpeedService struct {
	table map[roadnet.EdgeId][24]float64 // meters per second, indexed by hour-of-day
}

// NewTimeOfDaySpeedService returns a TimeOfDaySpeedService backed by table.
func NewTimeOfDaySpeedService(table map[roadnet.EdgeId][24]float64) *TimeOfDaySpeedService {
	return &TimeOfDaySpeedService{table: table}
}

// BuildModel resolves the query's hour-of-day bucket and optional speed cap.
func (s *TimeOfDaySpeedService) BuildModel(p BuildParams, sm *state.Model) (Model, error) {
	edgeSpeedIdx, err := sm.Index("edge_speed")
	if err != nil {
		return nil, err
	}
	hour := p.QueryHourOfDay
	if hour < 0 || hour > 23 {
		hour = 0
	}
	return &timeOfDaySpeedModel{table: s.table, hour: hour, cap: p.SpeedCapMetersPerSecond, edgeSpeedIdx: edgeSpeedIdx}, nil
}

type timeOfDaySpeedModel struct {
	table        map[roadnet.EdgeId][24]float64
	hour         int
	cap          float64
	edgeSpeedIdx int
}

func (m *timeOfDaySpeedModel) InputFeatures() []state.InputFeature { return nil }

func (m *timeOfDaySpeedModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "edge_speed", Config: state.VariableConfig{Kind: state.Speed, Accumulate: false}},
	}
}

func (m *timeOfDaySpeedModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	bins, ok := m.table[traj.Edge]
	if !ok {
		return ErrMissingEdgeSpeed
	}
	speed := bins[m.hour]
	if m.cap > 0 && speed > m.cap {
		speed = m.cap
	}
	return sm.SetSpeed(st, "edge_speed", speed)
}

func (m *timeOfDaySpeedModel) EstimateTraversal(_ ODPair, _ state.Vector, _ *state.Model) error {
	return nil
}
