package access

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// Trajectory is the 5-tuple (v1, e_prev, v2, e_next, v3) an access model
// is evaluated over, per spec.md §4.3: the prior edge e_prev from v1 to
// v2, and the candidate next edge e_next from v2 to v3.
type Trajectory struct {
	V1    roadnet.VertexId
	EPrev roadnet.EdgeId
	V2    roadnet.VertexId
	ENext roadnet.EdgeId
	V3    roadnet.VertexId
}

// BuildParams carries the query-time parameters an access Service needs
// to produce a Model.
type BuildParams struct {
	// NoOverride reserved for future query-level turn-delay overrides;
	// the default turn-delay model currently takes all its parameters
	// from the process-start TurnDelayService.
}

// Model is a built, per-query access model: the contract of spec.md
// §4.3, same shape as traversal.Model but over the 5-tuple Trajectory.
type Model interface {
	InputFeatures() []state.InputFeature
	OutputFeatures() []state.OutputFeature
	TraverseAccess(traj Trajectory, st state.Vector, sm *state.Model) error
}

// Service is a process-start, immutable collaborator that produces a
// Model for one query, mirroring traversal.Service's split.
type Service interface {
	BuildModel(p BuildParams, sm *state.Model) (Model, error)
}
