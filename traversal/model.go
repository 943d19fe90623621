package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// Trajectory is the (src, edge, dst) triple traverse_edge is evaluated
// over, per spec.md §4.2.
type Trajectory struct {
	Src  roadnet.VertexId
	Edge roadnet.EdgeId
	Dst  roadnet.VertexId
}

// ODPair is the (src, dst) pair estimate_traversal is evaluated over: an
// arbitrary origin/destination vertex pair, not necessarily adjacent.
type ODPair struct {
	Src roadnet.VertexId
	Dst roadnet.VertexId
}

// Model is a built, per-query traversal model: the contract of spec.md
// §4.2. No default implementation needs the search tree's traversal
// history to compute traverse_edge or estimate_traversal (only the
// access-model turn-delay contract of §4.3 does, via its own explicit
// 5-tuple), so unlike the Rust original's trait signature this interface
// omits a tree parameter; a future model needing history can be added
// without breaking this contract by taking its own typed dependency.
type Model interface {
	// InputFeatures lists the state variables this model reads.
	InputFeatures() []state.InputFeature

	// OutputFeatures lists the state variables this model writes, with
	// their declared configs.
	OutputFeatures() []state.OutputFeature

	// TraverseEdge updates st in place for one admitted edge traversal.
	TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error

	// EstimateTraversal writes an admissible lower-bound update to st for
	// the (possibly non-adjacent) OD pair, used by A*. Must never exceed
	// the true cost of any realizable path from od.Src to od.Dst.
	EstimateTraversal(od ODPair, st state.Vector, sm *state.Model) error
}

// BuildParams carries the query-time parameters a Service needs to
// produce a Model: speed caps, vehicle configuration, and charging
// preferences. Zero values mean "no override" / "use the service's
// process-start defaults".
type BuildParams struct {
	SpeedCapMetersPerSecond float64
	VehicleClass            VehicleClass
	BatteryCapacityJoules   float64
	StartingSoC             float64
	SoCFullTarget           float64
	PHEVSwitchThreshold     float64
	ChargingThreshold       float64
	AllowedStationPowerType map[string]bool
	QueryHourOfDay          int // used by TimeOfDaySpeedService; -1 means unset
}

// Service is a process-start, immutable collaborator that produces a
// Model for one query, per spec.md §4.2's service/model split. Services
// hold the large shared tables (speed arrays, ML predictor weights) so
// that N concurrent queries share one copy rather than N.
type Service interface {
	BuildModel(p BuildParams, sm *state.Model) (Model, error)
}
