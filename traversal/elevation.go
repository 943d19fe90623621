package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// GradeService is the process-start collaborator that publishes each
// edge's grade into state as edge_grade, so Elevation (and any other
// model) can consume it without holding its own copy of the table, per
// spec.md §4.2's composable-model contract (the same shape SpeedService
// uses for edge_speed).
type GradeService struct {
	table map[roadnet.EdgeId]float64 // dimensionless rise/run, signed, Src→Dst
}

// NewGradeService returns a GradeService backed by table.
func NewGradeService(table map[roadnet.EdgeId]float64) *GradeService {
	return &GradeService{table: table}
}

// BuildModel resolves the edge_grade state index.
func (s *GradeService) BuildModel(_ BuildParams, sm *state.Model) (Model, error) {
	if _, err := sm.Index("edge_grade"); err != nil {
		return nil, err
	}
	return &gradeModel{table: s.table}, nil
}

type gradeModel struct {
	table map[roadnet.EdgeId]float64
}

func (m *gradeModel) InputFeatures() []state.InputFeature { return nil }

func (m *gradeModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "edge_grade", Config: state.VariableConfig{Kind: state.Ratio, Accumulate: false}},
	}
}

func (m *gradeModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	grade, ok := m.table[traj.Edge]
	if !ok {
		grade = 0
	}
	return sm.SetRatio(st, "edge_grade", grade)
}

// EstimateTraversal is a no-op: grade contributes no distance/time bound.
func (m *gradeModel) EstimateTraversal(_ ODPair, _ state.Vector, _ *state.Model) error {
	return nil
}

// ElevationService is the process-start collaborator for the default
// Elevation traversal model, per spec.md §4.2: it accumulates
// trip_elevation_gain/loss from edge_distance and edge_grade, both
// consumed from state rather than looked up directly, so it composes
// with whatever model publishes edge_grade (GradeService in this
// package) instead of holding its own copy of the table.
type ElevationService struct{}

// NewElevationService returns an ElevationService.
func NewElevationService() *ElevationService {
	return &ElevationService{}
}

// BuildModel resolves state indices; Elevation has no query-time parameters.
func (s *ElevationService) BuildModel(_ BuildParams, sm *state.Model) (Model, error) {
	if _, err := sm.Index("trip_elevation_gain"); err != nil {
		return nil, err
	}
	if _, err := sm.Index("trip_elevation_loss"); err != nil {
		return nil, err
	}
	return &elevationModel{}, nil
}

type elevationModel struct{}

func (m *elevationModel) InputFeatures() []state.InputFeature {
	return []state.InputFeature{
		{Name: "edge_distance", Unit: "meters"},
		{Name: "edge_grade", Unit: "ratio"},
	}
}

func (m *elevationModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "trip_elevation_gain", Config: state.VariableConfig{Kind: state.Distance, Accumulate: true}},
		{Name: "trip_elevation_loss", Config: state.VariableConfig{Kind: state.Distance, Accumulate: true}},
	}
}

func (m *elevationModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	distance, err := sm.GetDistance(st, "edge_distance")
	if err != nil {
		return err
	}
	grade, err := sm.GetRatio(st, "edge_grade")
	if err != nil {
		return err
	}
	rise := distance * grade
	if rise >= 0 {
		return sm.AddDistance(st, "trip_elevation_gain", rise)
	}
	return sm.AddDistance(st, "trip_elevation_loss", -rise)
}

// EstimateTraversal is a no-op: elevation change has no admissible
// non-zero lower bound over an arbitrary OD pair (a route can be flat).
func (m *elevationModel) EstimateTraversal(_ ODPair, _ state.Vector, _ *state.Model) error {
	return nil
}
