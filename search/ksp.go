package search

import (
	"container/heap"

	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/frontier"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// KSPOptions configures both k-shortest-path algorithms of spec.md §4.10.
type KSPOptions struct {
	K      int
	Accept AcceptFunc // nil defaults to AcceptAll
	Term   TerminationModel
}

func (o KSPOptions) accept() AcceptFunc {
	if o.Accept != nil {
		return o.Accept
	}
	return AcceptAll
}

// viaCandidate is one (vertex, summed cost) entry in SVP's intersection
// priority queue.
type viaCandidate struct {
	vertex roadnet.VertexId
	sum    cost.Cost
}

type viaPQ []viaCandidate

func (pq viaPQ) Len() int            { return len(pq) }
func (pq viaPQ) Less(i, j int) bool  { return pq[i].sum < pq[j].sum }
func (pq viaPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *viaPQ) Push(x interface{}) { *pq = append(*pq, x.(viaCandidate)) }
func (pq *viaPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// SingleVia implements the SVP k-shortest-path algorithm of spec.md
// §4.10: run one forward search from source and one reverse search from
// target to completion, rank every vertex common to both trees by
// summed cost, and accept via-vertex candidates in ascending order of
// that sum until k routes are accepted, the candidate queue empties, or
// opts.Term signals.
func SingleVia(si *Instance, source, target roadnet.VertexId, opts KSPOptions) ([]Route, error) {
	accept := opts.accept()

	fwdTree, _, err := Run(si, source, nil, Forward, si.StateModel.InitialState(), opts.Term)
	if err != nil {
		return nil, err
	}
	revTree, _, err := Run(si, target, nil, Reverse, si.StateModel.InitialState(), opts.Term)
	if err != nil {
		return nil, err
	}

	fwdBest := bestCostPerVertex(fwdTree)
	revBest := bestCostPerVertex(revTree)

	pq := make(viaPQ, 0, len(fwdBest))
	for v, fc := range fwdBest {
		if rc, ok := revBest[v]; ok {
			pq = append(pq, viaCandidate{vertex: v, sum: fc.Add(rc)})
		}
	}
	heap.Init(&pq)

	var accepted []Route
	for pq.Len() > 0 && (opts.K <= 0 || len(accepted) < opts.K) {
		via := heap.Pop(&pq).(viaCandidate)

		route, err := routeThroughVia(si, fwdTree, revTree, via.vertex)
		if err != nil {
			return nil, err
		}
		if accept(route, accepted) {
			accepted = append(accepted, route)
		}
	}
	return accepted, nil
}

// routeThroughVia concatenates the forward route from fwdTree's root to
// via with the reoriented reverse route from via to revTree's root.
func routeThroughVia(si *Instance, fwdTree, revTree *SearchTree, via roadnet.VertexId) (Route, error) {
	fwdLabel, err := si.labelModel().LabelFrom(via, mustState(fwdTree, via), si.StateModel)
	if err != nil {
		return Route{}, NewSearchError(StateKind, err)
	}
	revLabel, err := si.labelModel().LabelFrom(via, mustState(revTree, via), si.StateModel)
	if err != nil {
		return Route{}, NewSearchError(StateKind, err)
	}

	fwdRoute, err := Backtrack(fwdTree, fwdLabel)
	if err != nil {
		return Route{}, err
	}
	revRoute, err := Backtrack(revTree, revLabel)
	if err != nil {
		return Route{}, err
	}
	reverseEdgeOrder(revRoute.Edges)

	reoriented, err := ReorientReverseRoute(si, via, revRoute)
	if err != nil {
		return Route{}, err
	}

	combined := append(append([]EdgeTraversal{}, fwdRoute.Edges...), reoriented.Edges...)
	if err := checkNoSharedSourceVertex(si.Graph, combined); err != nil {
		return Route{}, NewSearchError(InternalKind, err)
	}
	return Route{Edges: combined, Cost: fwdRoute.Cost.Add(reoriented.Cost)}, nil
}

// Yen implements Yen's k-shortest-loopless-paths algorithm of spec.md
// §4.10: bootstrap with the true shortest path, then repeatedly spur off
// every prefix of the last accepted path, excising edges shared with
// prior accepted paths rooted at the same prefix, re-running the search
// from the spur vertex, and admitting candidates by opts.Accept.
func Yen(si *Instance, source, target roadnet.VertexId, opts KSPOptions) ([]Route, error) {
	accept := opts.accept()

	shortestTree, outcome, err := Run(si, source, &target, Forward, si.StateModel.InitialState(), opts.Term)
	if err != nil {
		return nil, err
	}
	if outcome != OutcomeTargetReached {
		return nil, nil
	}
	shortestRoute, err := Backtrack(shortestTree, Label{Vertex: target})
	if err != nil {
		return nil, err
	}

	accepted := []Route{shortestRoute}
	var candidates []Route

	for opts.K <= 0 || len(accepted) < opts.K {
		lastPath := accepted[len(accepted)-1]

		for i := 0; i < len(lastPath.Edges); i++ {
			rootEdges := lastPath.Edges[:i]
			spurVertex, err := spurVertexAt(si.Graph, lastPath, i, source)
			if err != nil {
				return nil, err
			}

			excludedEdges := make(map[roadnet.EdgeId]bool)
			for _, p := range accepted {
				if sharesRoot(p, rootEdges, si.Graph) && i < len(p.Edges) {
					excludedEdges[p.Edges[i].EdgeId] = true
				}
			}

			spurFrontier := excludingFrontier{inner: si.Frontier, excluded: excludedEdges}
			spurSI := *si
			spurSI.Frontier = spurFrontier

			rootState, err := stateAfter(si, rootEdges)
			if err != nil {
				return nil, err
			}

			spurTree, spurOutcome, err := Run(&spurSI, spurVertex, &target, Forward, rootState, opts.Term)
			if err != nil {
				if se, ok := err.(*SearchError); ok && se.Kind() == NoPathKind {
					continue
				}
				return nil, err
			}
			if spurOutcome != OutcomeTargetReached {
				continue
			}
			spurRoute, err := Backtrack(spurTree, Label{Vertex: target})
			if err != nil {
				return nil, err
			}

			candidate := Route{
				Edges: append(append([]EdgeTraversal{}, rootEdges...), spurRoute.Edges...),
				Cost:  sumCost(rootEdges).Add(spurRoute.Cost),
			}
			candidates = append(candidates, candidate)
		}

		if len(candidates) == 0 {
			break
		}
		best, rest := popCheapest(candidates)
		candidates = rest
		if accept(best, accepted) {
			accepted = append(accepted, best)
		}
	}
	return accepted, nil
}

func spurVertexAt(g *roadnet.Graph, route Route, i int, source roadnet.VertexId) (roadnet.VertexId, error) {
	if i == 0 {
		return source, nil
	}
	e, err := g.Edge(route.Edges[i-1].EdgeId)
	if err != nil {
		return 0, err
	}
	return e.Dst, nil
}

func sharesRoot(p Route, root []EdgeTraversal, g *roadnet.Graph) bool {
	if len(p.Edges) < len(root) {
		return false
	}
	for i, et := range root {
		if p.Edges[i].EdgeId != et.EdgeId {
			return false
		}
	}
	return true
}

func stateAfter(si *Instance, edges []EdgeTraversal) (state.Vector, error) {
	st := si.StateModel.InitialState()
	var prevEdge *roadnet.EdgeId
	for _, et := range edges {
		traversed, err := performTraversal(si, et.EdgeId, prevEdge, st)
		if err != nil {
			return nil, err
		}
		st = traversed.ResultState
		id := et.EdgeId
		prevEdge = &id
	}
	return st, nil
}

func sumCost(edges []EdgeTraversal) cost.Cost {
	var total cost.Cost
	for _, et := range edges {
		total = total.Add(et.TotalCost())
	}
	return total
}

func popCheapest(candidates []Route) (Route, []Route) {
	bestIdx := 0
	for i, c := range candidates {
		if c.Cost < candidates[bestIdx].Cost {
			bestIdx = i
		}
	}
	best := candidates[bestIdx]
	rest := append(candidates[:bestIdx:bestIdx], candidates[bestIdx+1:]...)
	return best, rest
}

// excludingFrontier wraps a frontier.Model, additionally rejecting any
// edge id present in excluded, letting Yen's spur step cut a specific
// edge from consideration without mutating the shared frontier model.
type excludingFrontier struct {
	inner    frontier.Model
	excluded map[roadnet.EdgeId]bool
}

func (f excludingFrontier) ValidFrontier(edge roadnet.EdgeId, st state.Vector, sm *state.Model) (bool, error) {
	if f.excluded[edge] {
		return false, nil
	}
	return f.inner.ValidFrontier(edge, st, sm)
}
