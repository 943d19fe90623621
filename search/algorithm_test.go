package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/corridor/access"
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/traversal"
)

// buildDiamondGraph builds:
//
//	0 --(10)--> 1 --(10)--> 3
//	0 --(5)--> 2 --(5)--> 3
//
// so the shortest path from 0 to 3 goes through 2 (cost 10), not 1
// (cost 20).
func buildDiamondGraph(t *testing.T) *roadnet.Graph {
	t.Helper()
	b := roadnet.NewBuilder()
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(0, 0.05)
	v2 := b.AddVertex(0.05, 0)
	v3 := b.AddVertex(0.05, 0.05)
	b.AddEdge(v0, v1, 10)
	b.AddEdge(v1, v3, 10)
	b.AddEdge(v0, v2, 5)
	b.AddEdge(v2, v3, 5)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// noopAccess is an access.Model that never changes state, used where a
// test's cost model has no access-cost variable to exercise.
type noopAccess struct{}

func (noopAccess) InputFeatures() []state.InputFeature   { return nil }
func (noopAccess) OutputFeatures() []state.OutputFeature { return nil }
func (noopAccess) TraverseAccess(access.Trajectory, state.Vector, *state.Model) error {
	return nil
}

// acceptAllFrontier is a frontier.Model that admits every edge.
type acceptAllFrontier struct{}

func (acceptAllFrontier) ValidFrontier(roadnet.EdgeId, state.Vector, *state.Model) (bool, error) {
	return true, nil
}

func buildDistanceSearchInstance(t *testing.T, g *roadnet.Graph) (*Instance, *state.Model) {
	t.Helper()
	sb := state.NewBuilder()
	require.NoError(t, sb.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}))
	require.NoError(t, sb.Declare("trip_distance", state.VariableConfig{Kind: state.Distance, Accumulate: true}))
	sm := sb.Build()

	distSvc := traversal.NewDistanceService(g)
	tm, err := distSvc.BuildModel(traversal.BuildParams{}, sm)
	require.NoError(t, err)

	cm, err := cost.New(sm, cost.WithWeight("trip_distance", 1.0))
	require.NoError(t, err)

	si := &Instance{
		Graph:      g,
		StateModel: sm,
		Traversal:  tm,
		Access:     noopAccess{},
		Cost:       cm,
		Frontier:   acceptAllFrontier{},
	}
	return si, sm
}

func TestRun_ForwardShortestPath_PrefersCheaperBranch(t *testing.T) {
	g := buildDiamondGraph(t)
	si, sm := buildDistanceSearchInstance(t, g)

	target := roadnet.VertexId(3)
	tree, outcome, err := Run(si, roadnet.VertexId(0), &target, Forward, sm.InitialState(), nil)
	require.NoError(t, err)
	require.Equal(t, OutcomeTargetReached, outcome)

	targetLabel := Label{Vertex: target}
	route, err := Backtrack(tree, targetLabel)
	require.NoError(t, err)
	require.Len(t, route.Edges, 2)
	require.InDelta(t, 10.0, route.Cost.Float64(), 1e-9)
}

func TestRun_NoPath_ReturnsNoPathError(t *testing.T) {
	b := roadnet.NewBuilder()
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(1, 1)
	b.AddVertex(2, 2) // isolated, unreachable from v0/v1
	g, err := b.Build()
	require.NoError(t, err)
	_ = v1

	si, sm := buildDistanceSearchInstance(t, g)
	target := roadnet.VertexId(2)
	_, outcome, err := Run(si, v0, &target, Forward, sm.InitialState(), nil)
	require.Error(t, err)
	require.Equal(t, OutcomeFrontierExhausted, outcome)

	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)
	require.Equal(t, NoPathKind, searchErr.Kind())
	require.ErrorIs(t, err, ErrNoPathExists)
}

func TestBacktrack_DuplicateEdgeDetected(t *testing.T) {
	tree := NewSearchTree(Label{Vertex: 0}, state.Vector{})
	et := EdgeTraversal{EdgeId: 7, ResultState: state.Vector{}}
	tree.Insert(Label{Vertex: 1}, cost.Cost(1), Label{Vertex: 0}, et)
	// Force a cycle: label 1's parent points back to a label whose own
	// incoming edge is the same edge id, simulating a corrupted tree.
	tree.Insert(Label{Vertex: 2}, cost.Cost(2), Label{Vertex: 1}, et)
	tree.nodes[Label{Vertex: 1}].Parent = Label{Vertex: 2}

	_, err := Backtrack(tree, Label{Vertex: 2})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDuplicateEdgeInBacktrack)
}
