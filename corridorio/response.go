package corridorio

import (
	"time"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/search"
	"github.com/routeforge/corridor/state"
)

// EdgeTraversalDTO is the wire rendering of one search.EdgeTraversal, per
// spec.md §6: the raw cost components plus the result state rendered
// through the state model's per-variable output units.
type EdgeTraversalDTO struct {
	EdgeId        roadnet.EdgeId                    `json:"edge_id"`
	AccessCost    float64                           `json:"access_cost"`
	TraversalCost float64                           `json:"traversal_cost"`
	ResultState   map[string]state.SerializedValue  `json:"result_state"`
}

// Response is the output of one core search, per spec.md §6: the
// originating Query, timing breakdown, the backtracked route rendered as
// EdgeTraversalDTOs, and search-tree bookkeeping.
type Response struct {
	Request Query `json:"request"`

	SearchExecutedTime time.Time     `json:"search_executed_time"`
	SearchRuntime      time.Duration `json:"search_runtime"`
	RouteRuntime       time.Duration `json:"route_runtime"`
	TotalRuntime       time.Duration `json:"total_runtime"`

	Route []EdgeTraversalDTO `json:"route"`

	TreeSize   int `json:"tree_size"`
	Iterations int `json:"iterations"`
}

// newEdgeTraversalDTO renders one EdgeTraversal through sm, converting
// its result state into the external per-variable unit rendering.
func newEdgeTraversalDTO(sm *state.Model, et search.EdgeTraversal) (EdgeTraversalDTO, error) {
	rendered, err := sm.Serialize(et.ResultState)
	if err != nil {
		return EdgeTraversalDTO{}, err
	}
	return EdgeTraversalDTO{
		EdgeId:        et.EdgeId,
		AccessCost:    float64(et.AccessCost),
		TraversalCost: float64(et.TraversalCost),
		ResultState:   rendered,
	}, nil
}

// NewResponse builds a Response from the originating query, the state
// model used to render per-edge states, the backtracked route, and the
// search's own bookkeeping (tree size, iteration count). Timing fields
// are filled in by the caller (the batch worker or CLI driver) since
// this package performs no search itself.
func NewResponse(req Query, sm *state.Model, route search.Route, treeSize, iterations int) (Response, error) {
	dtos := make([]EdgeTraversalDTO, len(route.Edges))
	for i, et := range route.Edges {
		dto, err := newEdgeTraversalDTO(sm, et)
		if err != nil {
			return Response{}, err
		}
		dtos[i] = dto
	}
	return Response{
		Request:    req,
		Route:      dtos,
		TreeSize:   treeSize,
		Iterations: iterations,
	}, nil
}
