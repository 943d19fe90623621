package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

func TestFrontier_LazyDeletionSkipsStale(t *testing.T) {
	tree := NewSearchTree(Label{Vertex: 0}, state.Vector{})
	f := NewFrontier()

	lbl := Label{Vertex: 1}
	et := EdgeTraversal{EdgeId: 1, ResultState: state.Vector{}}
	tree.Insert(lbl, cost.Cost(5), Label{Vertex: 0}, et)
	f.Push(lbl, cost.Cost(5), cost.Zero)

	// Improve the tree's cost for lbl without popping first; the stale
	// higher-cost entry should be silently discarded on Pop.
	tree.Insert(lbl, cost.Cost(2), Label{Vertex: 0}, et)
	f.Push(lbl, cost.Cost(2), cost.Zero)

	gotLabel, gotCost, ok := f.Pop(tree)
	require.True(t, ok)
	require.Equal(t, lbl, gotLabel)
	require.Equal(t, cost.Cost(2), gotCost)

	_, _, ok = f.Pop(tree)
	require.False(t, ok, "the stale cost-5 entry must be discarded, not returned")
}

func TestFrontier_OrdersByPriorityIncludingHeuristic(t *testing.T) {
	tree := NewSearchTree(Label{Vertex: 0}, state.Vector{})
	f := NewFrontier()

	near := Label{Vertex: 1}
	far := Label{Vertex: 2}
	et := EdgeTraversal{ResultState: state.Vector{}}
	tree.Insert(near, cost.Cost(3), Label{Vertex: 0}, et)
	tree.Insert(far, cost.Cost(1), Label{Vertex: 0}, et)

	// far has lower actual cost but a much larger heuristic estimate, so
	// its priority (cost+heuristic) should sort after near's.
	f.Push(far, cost.Cost(1), cost.Cost(100))
	f.Push(near, cost.Cost(3), cost.Zero)

	gotLabel, _, ok := f.Pop(tree)
	require.True(t, ok)
	require.Equal(t, near, gotLabel)
}

func TestSearchTree_InsertRelabelsParent(t *testing.T) {
	tree := NewSearchTree(Label{Vertex: 0}, state.Vector{})
	child := Label{Vertex: 1}
	otherParent := Label{Vertex: 2}
	tree.Insert(otherParent, cost.Cost(1), Label{Vertex: 0}, EdgeTraversal{ResultState: state.Vector{}})
	tree.Insert(child, cost.Cost(5), Label{Vertex: 0}, EdgeTraversal{ResultState: state.Vector{}})

	root, _ := tree.Get(Label{Vertex: 0})
	require.Contains(t, root.Children, child)

	// Re-parent child under otherParent with a cheaper cost.
	tree.Insert(child, cost.Cost(2), otherParent, EdgeTraversal{ResultState: state.Vector{}})

	root, _ = tree.Get(Label{Vertex: 0})
	require.NotContains(t, root.Children, child)
	parentNode, _ := tree.Get(otherParent)
	require.Contains(t, parentNode.Children, child)
}

func TestTerminationModels(t *testing.T) {
	require.True(t, IterationsLimit{Limit: 10}.Check(10, 0, 0))
	require.False(t, IterationsLimit{Limit: 10}.Check(9, 0, 0))

	require.True(t, SolutionSizeLimit{Limit: 5}.Check(0, 6, 0))
	require.False(t, SolutionSizeLimit{Limit: 5}.Check(0, 5, 0))

	require.True(t, QueryRuntimeLimit{Limit: time.Millisecond, Frequency: 1}.Check(1, 0, 2*time.Millisecond))
	require.False(t, QueryRuntimeLimit{Limit: time.Millisecond, Frequency: 1}.Check(1, 0, 0))

	combined := CombinedTermination{Models: []TerminationModel{
		IterationsLimit{Limit: 1000},
		SolutionSizeLimit{Limit: 1},
	}}
	require.True(t, combined.Check(0, 2, 0))
	require.False(t, NeverTerminate{}.Check(1000000, 1000000, time.Hour))
}

func TestLabelModel_VertexOnly(t *testing.T) {
	m := VertexOnlyLabelModel{}
	lbl, err := m.LabelFrom(7, nil, nil)
	require.NoError(t, err)
	require.Equal(t, Label{Vertex: 7}, lbl)
}

func TestLabelModel_SoCBucket(t *testing.T) {
	sb := state.NewBuilder()
	require.NoError(t, sb.Declare("trip_soc", state.VariableConfig{Kind: state.Ratio, InitialValue: 1.0}))
	sm := sb.Build()

	m := SoCBucketLabelModel{VariableName: "trip_soc", BucketCount: 4}
	st := sm.InitialState()
	require.NoError(t, sm.SetRatio(st, "trip_soc", 0.5))

	lbl, err := m.LabelFrom(3, st, sm)
	require.NoError(t, err)
	require.Equal(t, roadnet.VertexId(3), lbl.Vertex)
	require.Equal(t, int32(2), lbl.Discriminator)
}
