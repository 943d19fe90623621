package search

import (
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
)

// Route is an ordered, contiguous sequence of edge traversals from a
// tree's root to some reached label, per spec.md §4.12.
type Route struct {
	Edges []EdgeTraversal
	Cost  cost.Cost
}

// Backtrack walks tree's parent chain from target back to the root and
// returns the edges in root-to-target order, per spec.md §4.12. It
// rejects a path that revisits the same edge id twice (a malformed tree,
// since label-setting never reinserts an edge once a vertex is settled
// on the best arriving label) as ErrDuplicateEdgeInBacktrack tagged
// InternalKind.
func Backtrack(tree *SearchTree, target Label) (Route, error) {
	node, ok := tree.Get(target)
	if !ok {
		return Route{}, NewSearchError(InternalKind, ErrLabelNotInTree)
	}

	var reversed []EdgeTraversal
	seen := make(map[roadnet.EdgeId]bool)
	curNode := node
	for curNode.Incoming != nil {
		et := *curNode.Incoming
		if seen[et.EdgeId] {
			return Route{}, NewSearchError(InternalKind, ErrDuplicateEdgeInBacktrack)
		}
		seen[et.EdgeId] = true
		reversed = append(reversed, et)

		parent := curNode.Parent
		parentNode, ok := tree.Get(parent)
		if !ok {
			return Route{}, NewSearchError(InternalKind, ErrLabelNotInTree)
		}
		curNode = parentNode
	}

	edges := make([]EdgeTraversal, len(reversed))
	var total cost.Cost
	for i, et := range reversed {
		edges[len(reversed)-1-i] = et
		total = total.Add(et.TotalCost())
	}
	return Route{Edges: edges, Cost: total}, nil
}
