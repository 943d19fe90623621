package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/corridor/access"
	"github.com/routeforge/corridor/corridorio"
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/search"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/traversal"
)

type noopAccess struct{}

func (noopAccess) InputFeatures() []state.InputFeature   { return nil }
func (noopAccess) OutputFeatures() []state.OutputFeature { return nil }
func (noopAccess) TraverseAccess(access.Trajectory, state.Vector, *state.Model) error { return nil }

type acceptAllFrontier struct{}

func (acceptAllFrontier) ValidFrontier(roadnet.EdgeId, state.Vector, *state.Model) (bool, error) {
	return true, nil
}

// buildLineGraph builds 0 --(10)--> 1 --(10)--> 2.
func buildLineGraph(t *testing.T) *roadnet.Graph {
	t.Helper()
	b := roadnet.NewBuilder()
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(0.05, 0)
	v2 := b.AddVertex(0.1, 0)
	b.AddEdge(v0, v1, 10)
	b.AddEdge(v1, v2, 10)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func distanceFactory(g *roadnet.Graph) InstanceFactory {
	return func(q corridorio.Query) (*search.Instance, error) {
		sb := state.NewBuilder()
		if err := sb.Declare("edge_distance", state.VariableConfig{Kind: state.Distance}); err != nil {
			return nil, err
		}
		if err := sb.Declare("trip_distance", state.VariableConfig{Kind: state.Distance, Accumulate: true}); err != nil {
			return nil, err
		}
		sm := sb.Build()

		tm, err := traversal.NewDistanceService(g).BuildModel(traversal.BuildParams{}, sm)
		if err != nil {
			return nil, err
		}
		cm, err := cost.New(sm, cost.WithWeight("trip_distance", 1.0))
		if err != nil {
			return nil, err
		}
		return &search.Instance{
			Graph:      g,
			StateModel: sm,
			Traversal:  tm,
			Access:     noopAccess{},
			Cost:       cm,
			Frontier:   acceptAllFrontier{},
		}, nil
	}
}

func TestRunner_RunsBatchAndBacktracksRoutes(t *testing.T) {
	g := buildLineGraph(t)
	target := roadnet.VertexId(2)
	runner := NewRunner(distanceFactory(g), 2, search.NeverTerminate{}, nil)

	jobs := []Job{
		{ID: 1, Query: corridorio.Query{OriginVertex: 0, DestinationVertex: &target}},
		{ID: 2, Query: corridorio.Query{OriginVertex: 0, DestinationVertex: &target}},
	}

	results := runner.Run(context.Background(), jobs)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.Len(t, r.Response.Route, 2)
		require.InDelta(t, 20.0, r.Response.Route[0].TraversalCost+r.Response.Route[1].TraversalCost, 1e-6)
	}
}

func TestRunner_JobFailureIsolatedFromOthers(t *testing.T) {
	g := buildLineGraph(t)
	unreachable := roadnet.VertexId(0)
	target := roadnet.VertexId(2)
	runner := NewRunner(distanceFactory(g), 2, search.NeverTerminate{}, nil)

	jobs := []Job{
		{ID: 1, Query: corridorio.Query{OriginVertex: 2, DestinationVertex: &unreachable}}, // no reverse edges
		{ID: 2, Query: corridorio.Query{OriginVertex: 0, DestinationVertex: &target}},
	}

	results := runner.Run(context.Background(), jobs)
	require.Len(t, results, 2)
	require.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
}
