package search

import (
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// BidirectionalResult is the combined output of Bidirectional: the
// forward tree, the reverse tree, and the meeting vertex they agree
// gives the overall shortest path, per spec.md §4.9.
type BidirectionalResult struct {
	ForwardTree *SearchTree
	ReverseTree *SearchTree
	Meeting     roadnet.VertexId
	Route       Route
}

// Bidirectional runs a forward search from source and a reverse search
// from target to completion (no early stop at the other's frontier),
// then selects the meeting vertex as the one minimizing the summed
// forward-cost + reverse-cost across every vertex reached by both trees,
// per spec.md §4.9. The reverse half's route is re-oriented (walked
// backward and re-composed as forward-style EdgeTraversals via
// performTraversal) before being appended to the forward half's route,
// so the combined Route reads start-to-finish like any other.
//
// reverseInitial is the state vector used as the reverse search's own
// root state; callers typically pass si.StateModel.InitialState() again,
// since the reverse half accumulates its own independent state that is
// discarded once re-oriented.
func Bidirectional(si *Instance, source, target roadnet.VertexId, reverseInitial state.Vector, term TerminationModel) (BidirectionalResult, error) {
	forwardInitial := si.StateModel.InitialState()

	fwdTree, _, err := Run(si, source, nil, Forward, forwardInitial, term)
	if err != nil {
		return BidirectionalResult{}, err
	}
	revTree, _, err := Run(si, target, nil, Reverse, reverseInitial, term)
	if err != nil {
		return BidirectionalResult{}, err
	}

	meeting, ok := findMeeting(fwdTree, revTree)
	if !ok {
		return BidirectionalResult{}, NewSearchError(NoPathKind, &NoPathError{Src: source, Dst: target, TreeSize: fwdTree.Len() + revTree.Len()})
	}

	fwdLabel, err := si.labelModel().LabelFrom(meeting, mustState(fwdTree, meeting), si.StateModel)
	if err != nil {
		return BidirectionalResult{}, NewSearchError(StateKind, err)
	}
	revLabel, err := si.labelModel().LabelFrom(meeting, mustState(revTree, meeting), si.StateModel)
	if err != nil {
		return BidirectionalResult{}, NewSearchError(StateKind, err)
	}

	fwdRoute, err := Backtrack(fwdTree, fwdLabel)
	if err != nil {
		return BidirectionalResult{}, err
	}
	revRoute, err := Backtrack(revTree, revLabel)
	if err != nil {
		return BidirectionalResult{}, err
	}
	// Backtrack always walks root-to-label; the reverse tree's root is
	// target, so revRoute is in target-to-meeting order. Flip it to
	// meeting-to-target order before re-walking it forward.
	reverseEdgeOrder(revRoute.Edges)

	reoriented, err := ReorientReverseRoute(si, meeting, revRoute)
	if err != nil {
		return BidirectionalResult{}, err
	}

	combined := append(append([]EdgeTraversal{}, fwdRoute.Edges...), reoriented.Edges...)
	if err := checkNoSharedSourceVertex(si.Graph, combined); err != nil {
		return BidirectionalResult{}, NewSearchError(InternalKind, err)
	}

	total := fwdRoute.Cost.Add(reoriented.Cost)
	return BidirectionalResult{
		ForwardTree: fwdTree,
		ReverseTree: revTree,
		Meeting:     meeting,
		Route:       Route{Edges: combined, Cost: total},
	}, nil
}

// findMeeting returns the vertex present as a Label's Vertex in both
// trees that minimizes the sum of each tree's best cost to it, and
// whether any common vertex exists at all.
func findMeeting(fwd, rev *SearchTree) (roadnet.VertexId, bool) {
	fwdBest := bestCostPerVertex(fwd)
	revBest := bestCostPerVertex(rev)

	var best roadnet.VertexId
	var bestSum cost.Cost
	found := false
	for v, fc := range fwdBest {
		rc, ok := revBest[v]
		if !ok {
			continue
		}
		sum := fc.Add(rc)
		if !found || sum < bestSum {
			found = true
			bestSum = sum
			best = v
		}
	}
	return best, found
}

func bestCostPerVertex(tree *SearchTree) map[roadnet.VertexId]cost.Cost {
	best := make(map[roadnet.VertexId]cost.Cost)
	for label, node := range tree.all() {
		if existing, ok := best[label.Vertex]; !ok || node.Cost < existing {
			best[label.Vertex] = node.Cost
		}
	}
	return best
}

func mustState(tree *SearchTree, v roadnet.VertexId) state.Vector {
	for label, node := range tree.all() {
		if label.Vertex == v {
			return node.State
		}
	}
	return nil
}

// ReorientReverseRoute takes a Route discovered by a reverse search
// (edges in meeting-to-target order, each EdgeTraversal's state computed
// walking backward) and rebuilds it as a forward-style Route from
// meeting to target by re-running performTraversal forward over the same
// edge sequence, per spec.md §4.9's re-orientation step. The reverse
// search's own states and costs are discarded; only its edge *sequence*
// is reused.
func ReorientReverseRoute(si *Instance, meeting roadnet.VertexId, rev Route) (Route, error) {
	st := si.StateModel.InitialState()
	var prevEdge *roadnet.EdgeId
	edges := make([]EdgeTraversal, 0, len(rev.Edges))
	var total cost.Cost

	for _, step := range rev.Edges {
		et, err := performTraversal(si, step.EdgeId, prevEdge, st)
		if err != nil {
			return Route{}, err
		}
		edges = append(edges, et)
		total = total.Add(et.TotalCost())
		st = et.ResultState
		id := step.EdgeId
		prevEdge = &id
	}

	return Route{Edges: edges, Cost: total}, nil
}

func reverseEdgeOrder(edges []EdgeTraversal) {
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// checkNoSharedSourceVertex rejects a combined route where two distinct
// edges depart from the same source vertex, the loop-detection rule of
// spec.md §4.9 guarding against a malformed meeting-point stitch.
func checkNoSharedSourceVertex(g *roadnet.Graph, edges []EdgeTraversal) error {
	seenSrc := make(map[roadnet.VertexId]bool)
	for _, et := range edges {
		e, err := g.Edge(et.EdgeId)
		if err != nil {
			return err
		}
		if seenSrc[e.Src] {
			return ErrLoopAfterReorientation
		}
		seenSrc[e.Src] = true
	}
	return nil
}
