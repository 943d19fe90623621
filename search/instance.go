package search

import (
	"github.com/routeforge/corridor/access"
	costpkg "github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/frontier"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/traversal"
)

// Instance is the per-query search instance of spec.md §2/§4.7: a shared
// read-only Graph plus the per-query model stack assembled for this one
// query. Built once per query by the application loop, then owned solely
// by the worker goroutine running that query (spec.md §5's "no shared
// mutable state" rule).
type Instance struct {
	Graph      *roadnet.Graph
	StateModel *state.Model
	Traversal  traversal.Model
	Access     access.Model
	Cost       *costpkg.Model
	Frontier   frontier.Model
	LabelModel LabelModel
	Heuristic  HeuristicFunc // ZeroHeuristic for plain Dijkstra
}

func (si *Instance) labelModel() LabelModel {
	if si.LabelModel != nil {
		return si.LabelModel
	}
	return VertexOnlyLabelModel{}
}

func (si *Instance) heuristic() HeuristicFunc {
	if si.Heuristic != nil {
		return si.Heuristic
	}
	return ZeroHeuristic
}
