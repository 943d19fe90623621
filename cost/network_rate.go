package cost

import "github.com/routeforge/corridor/roadnet"

// NetworkRateKind distinguishes the four shapes a NetworkCostRate's
// evaluation can take, per spec.md §4.4.
type NetworkRateKind int

const (
	// RateZero always contributes Zero.
	RateZero NetworkRateKind = iota
	// RateEdgeLookup contributes a Cost looked up by the traversed
	// EdgeId (for access costs, the edge being entered).
	RateEdgeLookup
	// RateVertexLookup contributes a Cost looked up by the pivot VertexId.
	RateVertexLookup
	// RateCombined sums the contributions of its inner rates.
	RateCombined
)

// NetworkCostRate maps edge/vertex identity, independent of the state
// delta, to a Cost contribution — e.g. a toll table or a congestion
// surcharge keyed by location rather than by the traveler's own state.
type NetworkCostRate struct {
	Kind        NetworkRateKind
	EdgeTable   map[roadnet.EdgeId]Cost
	VertexTable map[roadnet.VertexId]Cost
	Inner       []NetworkCostRate // used by RateCombined
}

// ZeroRate returns a rate that always contributes Zero.
func ZeroRate() NetworkCostRate { return NetworkCostRate{Kind: RateZero} }

// EdgeLookup returns a rate keyed by EdgeId, defaulting to Zero for edges
// absent from table.
func EdgeLookup(table map[roadnet.EdgeId]Cost) NetworkCostRate {
	return NetworkCostRate{Kind: RateEdgeLookup, EdgeTable: table}
}

// VertexLookup returns a rate keyed by VertexId, defaulting to Zero for
// vertices absent from table.
func VertexLookup(table map[roadnet.VertexId]Cost) NetworkCostRate {
	return NetworkCostRate{Kind: RateVertexLookup, VertexTable: table}
}

// Combined returns the sum of inner's contributions.
func Combined(inner ...NetworkCostRate) NetworkCostRate {
	return NetworkCostRate{Kind: RateCombined, Inner: inner}
}

// EdgeContext carries the identifiers a NetworkCostRate may key its
// lookup on for a single edge traversal.
type EdgeContext struct {
	Edge   roadnet.EdgeId
	Vertex roadnet.VertexId // the edge's destination vertex
}

// AccessContext carries the identifiers for an access-model (turn)
// evaluation: the pivot vertex and the two edges meeting there.
type AccessContext struct {
	PrevEdge roadnet.EdgeId
	NextEdge roadnet.EdgeId
	Vertex   roadnet.VertexId // the shared pivot vertex
}

// TraversalCost evaluates this rate for one edge traversal.
func (r NetworkCostRate) TraversalCost(ctx EdgeContext) (Cost, error) {
	switch r.Kind {
	case RateZero:
		return Zero, nil
	case RateEdgeLookup:
		return r.EdgeTable[ctx.Edge], nil
	case RateVertexLookup:
		return r.VertexTable[ctx.Vertex], nil
	case RateCombined:
		var total Cost
		for _, inner := range r.Inner {
			c, err := inner.TraversalCost(ctx)
			if err != nil {
				return 0, err
			}
			total += c
		}
		return total, nil
	default:
		return 0, ErrUnknownRateKind
	}
}

// AccessCost evaluates this rate for one access-model (turn) application.
// Edge-keyed rates are looked up against ctx.NextEdge, matching the
// convention that a turn's cost is attributed to the edge being entered.
func (r NetworkCostRate) AccessCost(ctx AccessContext) (Cost, error) {
	switch r.Kind {
	case RateZero:
		return Zero, nil
	case RateEdgeLookup:
		return r.EdgeTable[ctx.NextEdge], nil
	case RateVertexLookup:
		return r.VertexTable[ctx.Vertex], nil
	case RateCombined:
		var total Cost
		for _, inner := range r.Inner {
			c, err := inner.AccessCost(ctx)
			if err != nil {
				return 0, err
			}
			total += c
		}
		return total, nil
	default:
		return 0, ErrUnknownRateKind
	}
}
