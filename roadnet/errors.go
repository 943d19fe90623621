package roadnet

import "errors"

// Sentinel errors for roadnet construction and lookups. Callers should branch
// with errors.Is, never string comparison.
var (
	// ErrVertexOutOfRange indicates a VertexId >= vertex count (or negative).
	ErrVertexOutOfRange = errors.New("roadnet: vertex id out of range")

	// ErrEdgeOutOfRange indicates an EdgeId >= edge count (or negative).
	ErrEdgeOutOfRange = errors.New("roadnet: edge id out of range")

	// ErrEdgeListOutOfRange indicates an EdgeListId >= edge-list count.
	ErrEdgeListOutOfRange = errors.New("roadnet: edge list id out of range")

	// ErrNegativeLength indicates an edge was added with length < 0.
	ErrNegativeLength = errors.New("roadnet: edge length must be non-negative")

	// ErrDanglingEndpoint indicates an edge references a vertex id that has
	// not been added to the builder.
	ErrDanglingEndpoint = errors.New("roadnet: edge endpoint not in vertex set")
)
