// Package roadnet defines the immutable directed road graph that the search
// core runs over: dense-indexed vertices and edges, plus forward and reverse
// adjacency. A Graph is built once per process (or once per reload cycle) via
// Builder and then shared by reference, read-only, across every worker
// goroutine for the remainder of its lifetime — no locks are needed on the
// hot path because nothing ever mutates a Graph after Build.
//
// Vertex and edge identity is positional: VertexId and EdgeId are dense
// indices into the Graph's internal arrays, not opaque handles, so callers
// may use them directly as array/slice indices in per-query scratch state
// (e.g. a StateVector-per-label map keyed by vertex).
package roadnet
