package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/unit"
)

// DistanceService is the process-start collaborator for the default
// Distance traversal model, per spec.md §4.2. It holds a read-only
// reference to the road network's Graph so every query's Model can look
// up edge lengths and vertex coordinates without copying the graph.
type DistanceService struct {
	graph *roadnet.Graph
}

// NewDistanceService returns a DistanceService backed by graph.
func NewDistanceService(graph *roadnet.Graph) *DistanceService {
	return &DistanceService{graph: graph}
}

// BuildModel returns a per-query distanceModel. Distance has no
// query-time parameters, so p is unused.
func (s *DistanceService) BuildModel(_ BuildParams, sm *state.Model) (Model, error) {
	edgeDistIdx, err := sm.Index("edge_distance")
	if err != nil {
		return nil, err
	}
	tripDistIdx, err := sm.Index("trip_distance")
	if err != nil {
		return nil, err
	}
	return &distanceModel{graph: s.graph, edgeDistIdx: edgeDistIdx, tripDistIdx: tripDistIdx}, nil
}

type distanceModel struct {
	graph       *roadnet.Graph
	edgeDistIdx int
	tripDistIdx int
}

func (m *distanceModel) InputFeatures() []state.InputFeature { return nil }

func (m *distanceModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "edge_distance", Config: state.VariableConfig{Kind: state.Distance, Accumulate: false}},
		{Name: "trip_distance", Config: state.VariableConfig{Kind: state.Distance, Accumulate: true}},
	}
}

func (m *distanceModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	edge, err := m.graph.Edge(traj.Edge)
	if err != nil {
		return err
	}
	if err := sm.SetDistance(st, "edge_distance", edge.Length); err != nil {
		return err
	}
	return sm.AddDistance(st, "trip_distance", edge.Length)
}

// EstimateTraversal writes a haversine-distance lower bound between
// od.Src and od.Dst, admissible because the great-circle distance can
// never exceed any realizable road-network path length.
func (m *distanceModel) EstimateTraversal(od ODPair, st state.Vector, sm *state.Model) error {
	src, err := m.graph.Vertex(od.Src)
	if err != nil {
		return err
	}
	dst, err := m.graph.Vertex(od.Dst)
	if err != nil {
		return err
	}
	d := unit.HaversineMeters(float64(src.X), float64(src.Y), float64(dst.X), float64(dst.Y))
	return sm.AddDistance(st, "trip_distance", d)
}
