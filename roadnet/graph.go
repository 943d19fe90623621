package roadnet

// Graph is one immutable directed road network: a dense vertex array, a
// dense edge array, and forward/reverse adjacency built once by Builder.
//
// Concurrency: Graph has no mutex. It is safe for unsynchronized concurrent
// reads from any number of goroutines precisely because nothing in this
// package ever mutates a Graph after Build returns it — the same discipline
// the teacher core.Graph enforces with RWMutex, specialized to the
// "immutable after construction, shared by reference" lifecycle spec.md §3
// requires for the road network.
type Graph struct {
	vertices []Vertex
	edges    []Edge

	// forward[v] lists, in edge-id order, the edges whose Src == v.
	forward [][]EdgeId
	// reverse[v] lists, in edge-id order, the edges whose Dst == v.
	reverse [][]EdgeId
}

// VertexCount returns the number of vertices in the graph. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertex returns the Vertex at id, or ErrVertexOutOfRange if id is invalid.
// Complexity: O(1).
func (g *Graph) Vertex(id VertexId) (Vertex, error) {
	if id < 0 || int(id) >= len(g.vertices) {
		return Vertex{}, ErrVertexOutOfRange
	}
	return g.vertices[id], nil
}

// Edge returns the Edge at id, or ErrEdgeOutOfRange if id is invalid.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeId) (Edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, ErrEdgeOutOfRange
	}
	return g.edges[id], nil
}

// OutEdges returns the ids of edges leaving v, in ascending EdgeId order.
// The returned slice is the Graph's own backing array and must not be
// mutated by the caller. Complexity: O(1) to obtain, O(deg(v)) to scan.
func (g *Graph) OutEdges(v VertexId) ([]EdgeId, error) {
	if v < 0 || int(v) >= len(g.vertices) {
		return nil, ErrVertexOutOfRange
	}
	return g.forward[v], nil
}

// InEdges returns the ids of edges arriving at v, in ascending EdgeId order.
// Same aliasing contract as OutEdges. Complexity: O(1) / O(deg(v)).
func (g *Graph) InEdges(v VertexId) ([]EdgeId, error) {
	if v < 0 || int(v) >= len(g.vertices) {
		return nil, ErrVertexOutOfRange
	}
	return g.reverse[v], nil
}

// Triplet returns the forward-oriented (src, edge, dst) triplet for an edge
// id: the source vertex, the edge itself, and the destination vertex. Search
// and model code always requests triplets this way — even when walking the
// reverse tree — per spec.md §4.7's "forward-oriented triplet" rule.
func (g *Graph) Triplet(id EdgeId) (VertexId, Edge, VertexId, error) {
	e, err := g.Edge(id)
	if err != nil {
		return 0, Edge{}, 0, err
	}
	return e.Src, e, e.Dst, nil
}

// Network aggregates one or more parallel EdgeListId graphs over a single
// shared vertex set, per spec.md §3's EdgeListId. Most deployments use a
// single-entry Network; multi-entry Networks let a query select, e.g., a
// truck-legal edge list distinct from the default car edge list while
// sharing vertex coordinates (and therefore map-matching/snapping results)
// across both.
type Network struct {
	vertices  []Vertex
	edgeLists []*Graph
}

// EdgeListCount returns the number of edge lists registered in the network.
func (n *Network) EdgeListCount() int { return len(n.edgeLists) }

// Graph returns the Graph for the given edge list, or
// ErrEdgeListOutOfRange if id is invalid. The returned Graph shares this
// Network's vertex coordinates.
func (n *Network) Graph(id EdgeListId) (*Graph, error) {
	if id < 0 || int(id) >= len(n.edgeLists) {
		return nil, ErrEdgeListOutOfRange
	}
	return n.edgeLists[id], nil
}
