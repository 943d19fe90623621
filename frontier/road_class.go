package frontier

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// RoadClassFilter admits an edge iff its road class is in the
// query-provided allowed set, per spec.md §4.5. Road classes are dense
// u8 ids, mapped from user-facing strings (e.g. "motorway", "residential")
// at query-build time by the caller; this filter only sees the ids.
type RoadClassFilter struct {
	classByEdge map[roadnet.EdgeId]uint8
	allowed     map[uint8]bool
}

// NewRoadClassFilter returns a RoadClassFilter. An edge absent from
// classByEdge is treated as class 0.
func NewRoadClassFilter(classByEdge map[roadnet.EdgeId]uint8, allowed map[uint8]bool) *RoadClassFilter {
	return &RoadClassFilter{classByEdge: classByEdge, allowed: allowed}
}

// ValidFrontier implements Model.
func (f *RoadClassFilter) ValidFrontier(edge roadnet.EdgeId, _ state.Vector, _ *state.Model) (bool, error) {
	return f.allowed[f.classByEdge[edge]], nil
}
