package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/unit"
)

// TimeService is the process-start collaborator for the default Time
// traversal model, per spec.md §4.2. It needs the Graph only for its
// estimator's haversine lower bound.
type TimeService struct {
	graph *roadnet.Graph
}

// NewTimeService returns a TimeService backed by graph.
func NewTimeService(graph *roadnet.Graph) *TimeService {
	return &TimeService{graph: graph}
}

// BuildModel resolves the max-speed bound used by the estimator: the
// query's speed cap if given, else maxNetworkSpeed.
func (s *TimeService) BuildModel(p BuildParams, sm *state.Model) (Model, error) {
	edgeDistIdx, err := sm.Index("edge_distance")
	if err != nil {
		return nil, err
	}
	edgeSpeedIdx, err := sm.Index("edge_speed")
	if err != nil {
		return nil, err
	}
	edgeTimeIdx, err := sm.Index("edge_time")
	if err != nil {
		return nil, err
	}
	tripTimeIdx, err := sm.Index("trip_time")
	if err != nil {
		return nil, err
	}
	maxSpeed := p.SpeedCapMetersPerSecond
	if maxSpeed <= 0 {
		maxSpeed = defaultMaxNetworkSpeedMetersPerSecond
	}
	return &timeModel{
		graph:        s.graph,
		maxSpeed:     maxSpeed,
		edgeDistIdx:  edgeDistIdx,
		edgeSpeedIdx: edgeSpeedIdx,
		edgeTimeIdx:  edgeTimeIdx,
		tripTimeIdx:  tripTimeIdx,
	}, nil
}

// defaultMaxNetworkSpeedMetersPerSecond bounds the Time estimator when no
// query speed cap is given: a highway free-flow speed (roughly 130 km/h),
// chosen generously so the A* lower bound stays admissible across any
// realistic road class.
const defaultMaxNetworkSpeedMetersPerSecond = 36.0

type timeModel struct {
	graph        *roadnet.Graph
	maxSpeed     float64
	edgeDistIdx  int
	edgeSpeedIdx int
	edgeTimeIdx  int
	tripTimeIdx  int
}

func (m *timeModel) InputFeatures() []state.InputFeature {
	return []state.InputFeature{
		{Name: "edge_distance", Unit: "meters"},
		{Name: "edge_speed", Unit: "meters_per_second"},
	}
}

func (m *timeModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "edge_time", Config: state.VariableConfig{Kind: state.Time, Accumulate: false}},
		{Name: "trip_time", Config: state.VariableConfig{Kind: state.Time, Accumulate: true}},
	}
}

func (m *timeModel) TraverseEdge(_ Trajectory, st state.Vector, sm *state.Model) error {
	distance, err := sm.GetDistance(st, "edge_distance")
	if err != nil {
		return err
	}
	speed, err := sm.GetSpeed(st, "edge_speed")
	if err != nil {
		return err
	}
	seconds, err := unit.TimeFromDistanceSpeed(distance, speed)
	if err != nil {
		return err
	}
	if err := sm.SetTime(st, "edge_time", seconds); err != nil {
		return err
	}
	return sm.AddTime(st, "trip_time", seconds)
}

// EstimateTraversal writes a haversine-distance / max-speed lower bound:
// admissible because no realizable edge exceeds maxSpeed (the query's
// cap, or the network's free-flow ceiling).
func (m *timeModel) EstimateTraversal(od ODPair, st state.Vector, sm *state.Model) error {
	src, err := m.graph.Vertex(od.Src)
	if err != nil {
		return err
	}
	dst, err := m.graph.Vertex(od.Dst)
	if err != nil {
		return err
	}
	d := unit.HaversineMeters(float64(src.X), float64(src.Y), float64(dst.X), float64(dst.Y))
	seconds, err := unit.TimeFromDistanceSpeed(d, m.maxSpeed)
	if err != nil {
		return err
	}
	return sm.AddTime(st, "trip_time", seconds)
}
