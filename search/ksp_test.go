package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeforge/corridor/roadnet"
)

func TestSingleVia_FindsMultipleRoutes(t *testing.T) {
	g := buildDiamondGraph(t)
	si, _ := buildDistanceSearchInstance(t, g)

	routes, err := SingleVia(si, roadnet.VertexId(0), roadnet.VertexId(3), KSPOptions{K: 2, Accept: AcceptAll})
	require.NoError(t, err)
	require.NotEmpty(t, routes)
	require.InDelta(t, 10.0, routes[0].Cost.Float64(), 1e-9)
}

func TestYen_BootstrapsWithShortestPath(t *testing.T) {
	g := buildDiamondGraph(t)
	si, _ := buildDistanceSearchInstance(t, g)

	routes, err := Yen(si, roadnet.VertexId(0), roadnet.VertexId(3), KSPOptions{K: 2, Accept: AcceptAll})
	require.NoError(t, err)
	require.NotEmpty(t, routes)
	require.InDelta(t, 10.0, routes[0].Cost.Float64(), 1e-9)
}

func TestYen_NoPathReturnsError(t *testing.T) {
	b := roadnet.NewBuilder()
	v0 := b.AddVertex(0, 0)
	b.AddVertex(1, 1)
	g, err := b.Build()
	require.NoError(t, err)

	si, _ := buildDistanceSearchInstance(t, g)
	_, err = Yen(si, v0, roadnet.VertexId(1), KSPOptions{K: 1})
	require.Error(t, err)
}

func TestSimilarity_AcceptAllAlwaysTrue(t *testing.T) {
	require.True(t, AcceptAll(Route{}, []Route{{}}))
}

func TestSimilarity_EdgeIdCosine_RejectsIdenticalRoute(t *testing.T) {
	r := Route{Edges: []EdgeTraversal{{EdgeId: 1}, {EdgeId: 2}}}
	accept := EdgeIdCosineSimilarity(0.99)
	require.False(t, accept(r, []Route{r}))
}

func TestSimilarity_EdgeIdCosine_AcceptsDisjointRoute(t *testing.T) {
	a := Route{Edges: []EdgeTraversal{{EdgeId: 1}, {EdgeId: 2}}}
	b := Route{Edges: []EdgeTraversal{{EdgeId: 3}, {EdgeId: 4}}}
	accept := EdgeIdCosineSimilarity(0.5)
	require.True(t, accept(b, []Route{a}))
}
