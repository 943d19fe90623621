package search

import (
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/traversal"
)

// HeuristicFunc estimates a Cost lower bound from v to target, given the
// state accumulated at v. Supplying ZeroHeuristic degrades A* to plain
// Dijkstra, matching the original's cost_estimate_function.rs design
// (spec.md §5 "Supplemented features").
type HeuristicFunc func(v, target roadnet.VertexId, st state.Vector, sm *state.Model) (cost.Cost, error)

// ZeroHeuristic is the trivially admissible heuristic: always zero.
func ZeroHeuristic(_, _ roadnet.VertexId, _ state.Vector, _ *state.Model) (cost.Cost, error) {
	return cost.Zero, nil
}

// NewCostEstimateHeuristic builds a HeuristicFunc by composing a
// traversal model's admissible EstimateTraversal with a cost model's
// TraversalCost, so A*'s heuristic reuses the same lower-bound state
// update the model layer already guarantees is admissible (spec.md §4.2's
// estimate_traversal contract) instead of hand-rolling a second one.
func NewCostEstimateHeuristic(tm traversal.Model, cm *cost.Model) HeuristicFunc {
	return func(v, target roadnet.VertexId, st state.Vector, sm *state.Model) (cost.Cost, error) {
		estimated := st.Clone()
		if err := tm.EstimateTraversal(traversal.ODPair{Src: v, Dst: target}, estimated, sm); err != nil {
			return 0, err
		}
		return cm.TraversalCost(st, estimated, cost.EdgeContext{})
	}
}
