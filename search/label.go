package search

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// Label is a VertexId plus an optional integer discriminator supplied by
// a LabelModel, per spec.md §4.6. Two Labels are equal (and therefore the
// same tree node) iff both fields match — the discriminator is the
// escape hatch for multi-dimensional search (e.g. an SoC bucket for
// charge-aware EV routing) without paying the cost of a wider key for
// the common vertex-only case.
type Label struct {
	Vertex        roadnet.VertexId
	Discriminator int32
}

// LabelModel derives a Label for a vertex given the state accumulated on
// arrival there, per spec.md §9's "label model is the escape hatch for
// multi-dimensional search" design note.
type LabelModel interface {
	LabelFrom(v roadnet.VertexId, st state.Vector, sm *state.Model) (Label, error)
}

// VertexOnlyLabelModel is the default LabelModel: the Discriminator is
// always zero, so Label equality reduces to VertexId equality.
type VertexOnlyLabelModel struct{}

// LabelFrom implements LabelModel.
func (VertexOnlyLabelModel) LabelFrom(v roadnet.VertexId, _ state.Vector, _ *state.Model) (Label, error) {
	return Label{Vertex: v}, nil
}

// SoCBucketLabelModel discretizes the named Ratio state variable (e.g.
// trip_soc) into bucketCount buckets and folds the bucket index into the
// Discriminator, so two arrivals at the same vertex with meaningfully
// different charge levels are treated as distinct search-tree nodes.
type SoCBucketLabelModel struct {
	VariableName string
	BucketCount  int32
}

// LabelFrom implements LabelModel.
func (m SoCBucketLabelModel) LabelFrom(v roadnet.VertexId, st state.Vector, sm *state.Model) (Label, error) {
	soc, err := sm.GetRatio(st, m.VariableName)
	if err != nil {
		return Label{}, err
	}
	bucket := int32(soc * float64(m.BucketCount))
	if bucket >= m.BucketCount {
		bucket = m.BucketCount - 1
	}
	if bucket < 0 {
		bucket = 0
	}
	return Label{Vertex: v, Discriminator: bucket}, nil
}
