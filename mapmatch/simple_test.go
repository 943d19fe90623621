package mapmatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/corridor/roadnet"
)

// buildLineGraph builds three vertices strung west to east along the
// equator with two connecting edges: 0 -> 1 -> 2.
func buildLineGraph(t *testing.T) *roadnet.Graph {
	t.Helper()
	b := roadnet.NewBuilder()
	v0 := b.AddVertex(0.0, 0.0)
	v1 := b.AddVertex(0.01, 0.0)
	v2 := b.AddVertex(0.02, 0.0)
	b.AddEdge(v0, v1, 1000)
	b.AddEdge(v1, v2, 1000)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestSimpleMatcher_Name(t *testing.T) {
	require.Equal(t, "simple_map_matching", NewSimpleMatcher().Name())
}

func TestSimpleMatcher_EmptyTraceIsRejected(t *testing.T) {
	g := buildLineGraph(t)
	_, err := NewSimpleMatcher().Match(Trace{}, g)
	require.ErrorIs(t, err, ErrEmptyTrace)
}

func TestSimpleMatcher_MatchesEachPointToNearestEdge(t *testing.T) {
	g := buildLineGraph(t)
	trace := Trace{Points: []Point{
		{X: 0.0, Y: 0.0},
		{X: 0.005, Y: 0.0},
		{X: 0.015, Y: 0.0},
	}}

	result, err := NewSimpleMatcher().Match(trace, g)
	require.NoError(t, err)
	require.Len(t, result.PointMatches, 3)
	require.Equal(t, roadnet.EdgeId(0), result.PointMatches[0].EdgeId)
}

func TestSimpleMatcher_CollapsesRepeatedConsecutiveEdges(t *testing.T) {
	g := buildLineGraph(t)
	trace := Trace{Points: []Point{
		{X: 0.0, Y: 0.0},
		{X: 0.001, Y: 0.0},
		{X: 0.002, Y: 0.0},
		{X: 0.02, Y: 0.0},
	}}

	result, err := NewSimpleMatcher().Match(trace, g)
	require.NoError(t, err)
	require.Len(t, result.PointMatches, 4)
	// First three points all match edge 0 and should collapse to a single
	// entry in the matched path.
	require.LessOrEqual(t, len(result.MatchedPath), 2)
}

func TestSimpleMatcher_EmptyGraphReturnsPointMatchError(t *testing.T) {
	b := roadnet.NewBuilder()
	b.AddVertex(0, 0)
	g, err := b.Build()
	require.NoError(t, err)

	_, err = NewSimpleMatcher().Match(Trace{Points: []Point{{X: 0, Y: 0}}}, g)
	require.ErrorIs(t, err, ErrPointMatchFailed)
}
