package frontier

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// Model is the built, per-query admissibility filter of spec.md §4.5.
// None of the default filters need the search tree's traversal history
// (road class and vehicle restrictions are both pure functions of the
// candidate edge and the query's own parameters), so — like
// traversal.Model — this contract omits a tree parameter; see
// traversal.Model's doc comment for the same reasoning.
type Model interface {
	// ValidFrontier reports whether edge may be admitted as a search
	// candidate, given the state accumulated up to the vertex it departs
	// from.
	ValidFrontier(edge roadnet.EdgeId, previousState state.Vector, sm *state.Model) (bool, error)
}
