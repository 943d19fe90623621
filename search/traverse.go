package search

import (
	"github.com/routeforge/corridor/access"
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/traversal"
)

// performTraversal is the edge-traversal composition of spec.md §4.8. It
// fetches the forward-oriented triplet for edge, optionally applies the
// access model if prevEdge is non-nil, then applies the traversal model,
// and returns the resulting EdgeTraversal. Failure in any step propagates
// as a *SearchError tagged with the originating subsystem.
func performTraversal(si *Instance, edge roadnet.EdgeId, prevEdge *roadnet.EdgeId, prevState state.Vector) (EdgeTraversal, error) {
	src, _, dst, err := si.Graph.Triplet(edge)
	if err != nil {
		return EdgeTraversal{}, NewSearchError(GraphKind, err)
	}

	resultState := prevState.Clone()
	var accessCost cost.Cost

	if prevEdge != nil {
		prevSrc, _, prevDst, err := si.Graph.Triplet(*prevEdge)
		if err != nil {
			return EdgeTraversal{}, NewSearchError(GraphKind, err)
		}
		traj := access.Trajectory{V1: prevSrc, EPrev: *prevEdge, V2: prevDst, ENext: edge, V3: dst}
		if err := si.Access.TraverseAccess(traj, resultState, si.StateModel); err != nil {
			return EdgeTraversal{}, NewSearchError(TraversalKind, err)
		}
		accessCost, err = si.Cost.AccessCost(prevState, resultState, cost.AccessContext{PrevEdge: *prevEdge, NextEdge: edge, Vertex: src})
		if err != nil {
			return EdgeTraversal{}, NewSearchError(CostKind, err)
		}
	}

	if err := si.Traversal.TraverseEdge(traversal.Trajectory{Src: src, Edge: edge, Dst: dst}, resultState, si.StateModel); err != nil {
		return EdgeTraversal{}, NewSearchError(TraversalKind, err)
	}

	totalCost, err := si.Cost.TraversalCost(prevState, resultState, cost.EdgeContext{Edge: edge, Vertex: dst})
	if err != nil {
		return EdgeTraversal{}, NewSearchError(CostKind, err)
	}
	totalCost = cost.ClampPositive(totalCost)
	traversalCostComponent := cost.ClampNonNegative(totalCost - accessCost)

	return EdgeTraversal{
		EdgeId:        edge,
		AccessCost:    accessCost,
		TraversalCost: traversalCostComponent,
		ResultState:   resultState,
	}, nil
}
