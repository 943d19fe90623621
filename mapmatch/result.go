package mapmatch

import "github.com/routeforge/corridor/roadnet"

// PointMatch is the matched edge for one trace point, plus the
// distance (meters) from the observed point to that edge's nearer
// endpoint.
type PointMatch struct {
	EdgeId   roadnet.EdgeId
	Distance float64
}

// Result is the output of matching a Trace: one PointMatch per
// observed point, plus the inferred path as the sequence of distinct
// consecutive matched edges (spec.md's map-matching supplement).
type Result struct {
	PointMatches []PointMatch
	MatchedPath  []roadnet.EdgeId

	// AlignmentCost is the Dynamic Time Warping distance between the
	// trace's cumulative observed-distance profile and the matched
	// path's cumulative edge-length profile, set by DTWMatcher only
	// (zero otherwise). A large value means the matched path's length
	// grows very differently from the trace's observed progress, a
	// sign the nearest-edge snap picked a bad path.
	AlignmentCost float64
}
