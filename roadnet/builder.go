package roadnet

import "sort"

// Builder assembles a Graph incrementally, as a CSV-ingestion collaborator
// would: one AddVertex/AddEdge call per input row. Vertex ids and edge ids
// are assigned densely in call order — spec.md §6 requires "edge ids and
// vertex ids are contiguous from 0", so Builder enforces this by
// construction rather than validating it after the fact.
//
// Builder is not safe for concurrent use; it is meant to be driven
// single-threaded at process start (or reload), then handed off as an
// immutable Graph. This mirrors the teacher builder package's
// "BuildGraph(gopts, bopts, cons...)" single-orchestrator shape, simplified
// to the append-only ingestion this domain needs instead of topology
// generators.
type Builder struct {
	vertices []Vertex
	edges    []Edge
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddVertex appends a vertex and returns its assigned VertexId.
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(x, y float32) VertexId {
	id := VertexId(len(b.vertices))
	b.vertices = append(b.vertices, Vertex{X: x, Y: y})
	return id
}

// AddEdge appends an edge from src to dst with the given length, and returns
// its assigned EdgeId. It does not validate src/dst here (Build does a
// single bounds pass over all edges); this keeps ingestion a tight O(1)
// append per CSV row.
func (b *Builder) AddEdge(src, dst VertexId, length float64) EdgeId {
	id := EdgeId(len(b.edges))
	b.edges = append(b.edges, Edge{Src: src, Dst: dst, Length: length})
	return id
}

// Build validates the accumulated vertices/edges and produces an immutable
// Graph with forward and reverse adjacency. Each edge appears exactly once
// in forward[src] and once in reverse[dst], per spec.md §3's adjacency
// invariant.
//
// Errors: ErrNegativeLength if any edge length < 0; ErrDanglingEndpoint if
// any edge references a vertex id outside [0, VertexCount).
//
// Complexity: O(V + E log d) — O(E) to bucket edges, O(E log d) to produce
// deterministic per-vertex EdgeId-ascending adjacency ordering.
func (b *Builder) Build() (*Graph, error) {
	n := len(b.vertices)
	for i, e := range b.edges {
		if e.Length < 0 {
			return nil, ErrNegativeLength
		}
		if int(e.Src) < 0 || int(e.Src) >= n || int(e.Dst) < 0 || int(e.Dst) >= n {
			return nil, ErrDanglingEndpoint
		}
		_ = i
	}

	g := &Graph{
		vertices: b.vertices,
		edges:    b.edges,
		forward:  make([][]EdgeId, n),
		reverse:  make([][]EdgeId, n),
	}
	for id, e := range b.edges {
		eid := EdgeId(id)
		g.forward[e.Src] = append(g.forward[e.Src], eid)
		g.reverse[e.Dst] = append(g.reverse[e.Dst], eid)
	}
	// EdgeIds are already assigned in ascending append order, so the bucket
	// slices above are already sorted; an explicit sort guards against any
	// future ingestion path that builds forward/reverse out of order.
	for v := range g.forward {
		sort.Slice(g.forward[v], func(i, j int) bool { return g.forward[v][i] < g.forward[v][j] })
		sort.Slice(g.reverse[v], func(i, j int) bool { return g.reverse[v][i] < g.reverse[v][j] })
	}

	return g, nil
}

// NetworkBuilder assembles a Network: one shared vertex set plus one or
// more parallel edge lists (spec.md §3 EdgeListId).
type NetworkBuilder struct {
	vertices  []Vertex
	edgeLists []*Builder
}

// NewNetworkBuilder returns a NetworkBuilder with no edge lists yet; call
// NewEdgeList to register one.
func NewNetworkBuilder() *NetworkBuilder {
	return &NetworkBuilder{}
}

// AddVertex appends a vertex shared across all edge lists in this network.
func (nb *NetworkBuilder) AddVertex(x, y float32) VertexId {
	id := VertexId(len(nb.vertices))
	nb.vertices = append(nb.vertices, Vertex{X: x, Y: y})
	return id
}

// NewEdgeList registers and returns a fresh *Builder for a new EdgeListId,
// and the id it was assigned.
func (nb *NetworkBuilder) NewEdgeList() (*Builder, EdgeListId) {
	id := EdgeListId(len(nb.edgeLists))
	b := NewBuilder()
	nb.edgeLists = append(nb.edgeLists, b)
	return b, id
}

// Build validates and freezes every registered edge list against the
// shared vertex set, producing an immutable Network.
func (nb *NetworkBuilder) Build() (*Network, error) {
	graphs := make([]*Graph, len(nb.edgeLists))
	for i, b := range nb.edgeLists {
		// Each edge-list builder only knows the vertices added to it
		// directly, so splice in the network's shared vertex set before
		// validating bounds.
		b.vertices = nb.vertices
		g, err := b.Build()
		if err != nil {
			return nil, err
		}
		graphs[i] = g
	}
	return &Network{vertices: nb.vertices, edgeLists: graphs}, nil
}
