package mapmatch

import (
	"fmt"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/unit"
)

// DTWMatcher wraps another Matcher and scores its output by Dynamic
// Time Warping: it aligns the trace's cumulative observed-distance
// profile against the matched path's cumulative edge-length profile,
// so a caller can flag matches where the path's length diverges badly
// from what the trace actually covered, without needing an HMM-based
// matcher.
type DTWMatcher struct {
	Base Matcher
}

// NewDTWMatcher returns a DTWMatcher delegating point-to-edge matching
// to base.
func NewDTWMatcher(base Matcher) DTWMatcher {
	return DTWMatcher{Base: base}
}

// Name identifies this matcher for logging.
func (m DTWMatcher) Name() string { return m.Base.Name() + "+dtw" }

// Match runs Base.Match, then sets AlignmentCost on the result.
func (m DTWMatcher) Match(trace Trace, g *roadnet.Graph) (Result, error) {
	result, err := m.Base.Match(trace, g)
	if err != nil {
		return Result{}, err
	}

	traceCum := cumulativeTraceDistance(trace)
	pathCum, err := cumulativePathLength(g, result.MatchedPath)
	if err != nil {
		return Result{}, fmt.Errorf("mapmatch: computing matched path length: %w", err)
	}

	dist, err := warpDistance(traceCum, pathCum)
	if err != nil {
		return Result{}, fmt.Errorf("mapmatch: scoring alignment: %w", err)
	}

	result.AlignmentCost = dist
	return result, nil
}

// cumulativeTraceDistance returns, for each trace point, the
// great-circle distance accumulated from the trace's first point.
func cumulativeTraceDistance(trace Trace) []float64 {
	cum := make([]float64, len(trace.Points))
	for i := 1; i < len(trace.Points); i++ {
		prev, curr := trace.Points[i-1], trace.Points[i]
		cum[i] = cum[i-1] + unit.HaversineMeters(prev.X, prev.Y, curr.X, curr.Y)
	}
	return cum
}

// cumulativePathLength returns, for each edge in path, the matched
// path's length accumulated up to and including that edge.
func cumulativePathLength(g *roadnet.Graph, path []roadnet.EdgeId) ([]float64, error) {
	cum := make([]float64, len(path))
	for i, id := range path {
		e, err := g.Edge(id)
		if err != nil {
			return nil, err
		}
		prev := 0.0
		if i > 0 {
			prev = cum[i-1]
		}
		cum[i] = prev + e.Length
	}
	return cum, nil
}
