package roadnet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func twoEdgeLinear(t *testing.T) *Graph {
	t.Helper()
	b := NewBuilder()
	b.AddVertex(0, 0)
	b.AddVertex(1, 0)
	b.AddVertex(2, 0)
	b.AddEdge(0, 1, 100)
	b.AddEdge(1, 2, 200)
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBuilder_LinearGraph(t *testing.T) {
	g := twoEdgeLinear(t)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())

	out, err := g.OutEdges(0)
	require.NoError(t, err)
	require.Equal(t, []EdgeId{0}, out)

	in, err := g.InEdges(2)
	require.NoError(t, err)
	require.Equal(t, []EdgeId{1}, in)

	src, e, dst, err := g.Triplet(1)
	require.NoError(t, err)
	require.Equal(t, VertexId(1), src)
	require.Equal(t, VertexId(2), dst)
	require.Equal(t, 200.0, e.Length)
}

func TestBuilder_NegativeLength(t *testing.T) {
	b := NewBuilder()
	b.AddVertex(0, 0)
	b.AddVertex(1, 0)
	b.AddEdge(0, 1, -5)
	_, err := b.Build()
	require.ErrorIs(t, err, ErrNegativeLength)
}

func TestBuilder_DanglingEndpoint(t *testing.T) {
	b := NewBuilder()
	b.AddVertex(0, 0)
	b.AddEdge(0, 5, 10)
	_, err := b.Build()
	require.ErrorIs(t, err, ErrDanglingEndpoint)
}

func TestGraph_OutOfRange(t *testing.T) {
	g := twoEdgeLinear(t)
	_, err := g.Vertex(99)
	require.True(t, errors.Is(err, ErrVertexOutOfRange))
	_, err = g.Edge(99)
	require.True(t, errors.Is(err, ErrEdgeOutOfRange))
	_, err = g.OutEdges(-1)
	require.True(t, errors.Is(err, ErrVertexOutOfRange))
}

func TestNetworkBuilder_SharedVertices(t *testing.T) {
	nb := NewNetworkBuilder()
	nb.AddVertex(0, 0)
	nb.AddVertex(1, 1)

	car, carID := nb.NewEdgeList()
	car.AddEdge(0, 1, 50)

	truck, truckID := nb.NewEdgeList()
	// truck edge list omits the edge entirely (restricted road)

	net, err := nb.Build()
	require.NoError(t, err)
	require.Equal(t, 2, net.EdgeListCount())

	carGraph, err := net.Graph(carID)
	require.NoError(t, err)
	require.Equal(t, 1, carGraph.EdgeCount())

	truckGraph, err := net.Graph(truckID)
	require.NoError(t, err)
	require.Equal(t, 0, truckGraph.EdgeCount())
	require.Equal(t, 2, truckGraph.VertexCount())
	_ = truck
}
