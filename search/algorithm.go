package search

import (
	"time"

	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// Outcome distinguishes why a Run call returned, per spec.md §4.11:
// termination is a result, not an error.
type Outcome int

const (
	// OutcomeTargetReached means the popped label's vertex matched the
	// requested target; the tree holds a complete shortest path to it.
	OutcomeTargetReached Outcome = iota
	// OutcomeFrontierExhausted means the frontier emptied before
	// reaching target (or there was no target, i.e. a full single-source
	// tree was requested).
	OutcomeFrontierExhausted
	// OutcomeTerminated means a TerminationModel stopped the search
	// early; the tree is partial.
	OutcomeTerminated
)

// Direction selects forward (out-edges, Src→Dst adjacency) or reverse
// (in-edges, walked against Dst→Src adjacency) traversal, per spec.md
// §4.7's "reverse search is symmetric using the reverse adjacency".
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// Run executes the vertex-oriented label-setting search of spec.md §4.7
// from source, optionally toward target, using si's model stack and the
// given TerminationModel. initial is the state vector at source (usually
// si.StateModel.InitialState(), but callers building a bidirectional
// search's reverse half may provide target's initial state used in that
// direction's own coordinate frame).
func Run(si *Instance, source roadnet.VertexId, target *roadnet.VertexId, dir Direction, initial state.Vector, term TerminationModel) (*SearchTree, Outcome, error) {
	if term == nil {
		term = NeverTerminate{}
	}

	rootLabel, err := si.labelModel().LabelFrom(source, initial, si.StateModel)
	if err != nil {
		return nil, 0, NewSearchError(StateKind, err)
	}
	tree := NewSearchTree(rootLabel, initial)

	frontier := NewFrontier()
	rootH, err := heuristicFor(si, target, source, initial)
	if err != nil {
		return nil, 0, err
	}
	frontier.Push(rootLabel, 0, rootH)

	start := time.Now()
	iterations := 0

	for !frontier.Empty() {
		prevLabel, prevCost, ok := frontier.Pop(tree)
		if !ok {
			break
		}
		iterations++

		if target != nil && prevLabel.Vertex == *target {
			tree.setIterations(iterations)
			return tree, OutcomeTargetReached, nil
		}

		prevNode, ok := tree.Get(prevLabel)
		if !ok {
			return nil, 0, NewSearchError(InternalKind, ErrLabelNotInTree)
		}
		prevState := prevNode.State
		prevEdge := prevNode.Incoming

		outEdges, err := adjacency(si.Graph, prevLabel.Vertex, dir)
		if err != nil {
			return nil, 0, NewSearchError(GraphKind, err)
		}

		for _, out := range outEdges {
			ok, err := si.Frontier.ValidFrontier(out, prevState, si.StateModel)
			if err != nil {
				return nil, 0, NewSearchError(FrontierKind, err)
			}
			if !ok {
				continue
			}

			var prevEdgeId *roadnet.EdgeId
			if prevEdge != nil {
				id := prevEdge.EdgeId
				prevEdgeId = &id
			}

			forwardEdge := orientEdge(si.Graph, out, dir, prevLabel.Vertex)
			et, err := performTraversal(si, forwardEdge, prevEdgeId, prevState)
			if err != nil {
				return nil, 0, err
			}

			nextVertex, err := destinationVertex(si.Graph, out, dir)
			if err != nil {
				return nil, 0, NewSearchError(GraphKind, err)
			}
			nextCost := prevCost.Add(et.TotalCost())
			nextLabel, err := si.labelModel().LabelFrom(nextVertex, et.ResultState, si.StateModel)
			if err != nil {
				return nil, 0, NewSearchError(StateKind, err)
			}

			existing, has := tree.Get(nextLabel)
			if !has || nextCost < existing.Cost {
				tree.Insert(nextLabel, nextCost, prevLabel, et)
				h, err := heuristicFor(si, target, nextVertex, et.ResultState)
				if err != nil {
					return nil, 0, err
				}
				frontier.Push(nextLabel, nextCost, h)
			}
		}

		if term.Check(iterations, tree.Len(), time.Since(start)) {
			tree.setIterations(iterations)
			return tree, OutcomeTerminated, nil
		}
	}

	tree.setIterations(iterations)
	if target != nil {
		return tree, OutcomeFrontierExhausted, NewSearchError(NoPathKind, &NoPathError{Src: source, Dst: *target, TreeSize: tree.Len()})
	}
	return tree, OutcomeFrontierExhausted, nil
}

// heuristicFor evaluates si's heuristic from v toward target, or returns
// cost.Zero when no target is set (a full single-source tree has nothing
// to estimate distance-to, so it degrades to plain Dijkstra ordering).
func heuristicFor(si *Instance, target *roadnet.VertexId, v roadnet.VertexId, st state.Vector) (cost.Cost, error) {
	if target == nil {
		return 0, nil
	}
	return si.heuristic()(v, *target, st, si.StateModel)
}

// adjacency returns the edge ids to expand from v in the given Direction:
// out-edges for Forward, in-edges for Reverse.
func adjacency(g *roadnet.Graph, v roadnet.VertexId, dir Direction) ([]roadnet.EdgeId, error) {
	if dir == Forward {
		return g.OutEdges(v)
	}
	return g.InEdges(v)
}

// orientEdge returns the EdgeId to feed into performTraversal. Both
// directions traverse the same underlying edge id; performTraversal
// always fetches the forward-oriented (Src, Edge, Dst) triplet from the
// graph regardless of search direction, per spec.md §4.7.
func orientEdge(_ *roadnet.Graph, edge roadnet.EdgeId, _ Direction, _ roadnet.VertexId) roadnet.EdgeId {
	return edge
}

// destinationVertex returns the vertex the search moves to when
// expanding edge in the given Direction: Dst for Forward, Src for
// Reverse (since reverse search walks against the edge's natural
// orientation).
func destinationVertex(g *roadnet.Graph, edge roadnet.EdgeId, dir Direction) (roadnet.VertexId, error) {
	e, err := g.Edge(edge)
	if err != nil {
		return 0, err
	}
	if dir == Forward {
		return e.Dst, nil
	}
	return e.Src, nil
}
