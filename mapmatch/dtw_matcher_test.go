package mapmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDTWMatcher_Name(t *testing.T) {
	require.Equal(t, "simple_map_matching+dtw", NewDTWMatcher(NewSimpleMatcher()).Name())
}

func TestDTWMatcher_SetsAlignmentCostForCleanTrace(t *testing.T) {
	g := buildLineGraph(t)
	trace := Trace{Points: []Point{
		{X: 0.0, Y: 0.0},
		{X: 0.01, Y: 0.0},
		{X: 0.02, Y: 0.0},
	}}

	result, err := NewDTWMatcher(NewSimpleMatcher()).Match(trace, g)
	require.NoError(t, err)
	require.Len(t, result.MatchedPath, 2)
	require.GreaterOrEqual(t, result.AlignmentCost, 0.0)
}

func TestDTWMatcher_PropagatesBaseMatcherError(t *testing.T) {
	g := buildLineGraph(t)
	_, err := NewDTWMatcher(NewSimpleMatcher()).Match(Trace{}, g)
	require.ErrorIs(t, err, ErrEmptyTrace)
}
