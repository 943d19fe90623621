package mapmatch

import (
	"github.com/routeforge/corridor/roadnet"
)

// Matcher matches a Trace to a road network, producing per-point
// matches and an inferred path. Implementations receive only the Graph
// (no per-query model state); map matching is a network-topology
// operation independent of the traversal/cost stack.
type Matcher interface {
	Match(trace Trace, g *roadnet.Graph) (Result, error)
	Name() string
}

// SimpleMatcher matches each trace point to the nearest edge by
// endpoint distance, then emits the matched path as the sequence of
// distinct consecutive matched edges. It does not fill gaps between
// non-adjacent matched edges with a shortest path, and ignores trace
// timestamps; it assumes points already lie on or near the correct
// road, making it suitable for dense, high-quality traces only.
type SimpleMatcher struct{}

// NewSimpleMatcher returns a SimpleMatcher.
func NewSimpleMatcher() SimpleMatcher { return SimpleMatcher{} }

// Name identifies this matcher for logging.
func (SimpleMatcher) Name() string { return "simple_map_matching" }

// Match implements Matcher.
func (m SimpleMatcher) Match(trace Trace, g *roadnet.Graph) (Result, error) {
	if trace.Empty() {
		return Result{}, ErrEmptyTrace
	}

	pointMatches := make([]PointMatch, 0, trace.Len())
	var matchedPath []roadnet.EdgeId
	var lastEdge *roadnet.EdgeId

	for i, p := range trace.Points {
		edgeId, dist, err := nearestEdge(g, p.X, p.Y)
		if err != nil {
			return Result{}, &PointMatchError{Index: i, Message: err.Error()}
		}

		pointMatches = append(pointMatches, PointMatch{EdgeId: edgeId, Distance: dist})

		if lastEdge == nil || *lastEdge != edgeId {
			matchedPath = append(matchedPath, edgeId)
			id := edgeId
			lastEdge = &id
		}
	}

	return Result{PointMatches: pointMatches, MatchedPath: matchedPath}, nil
}
