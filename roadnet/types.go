package roadnet

// VertexId is a dense index into a Graph's vertex array.
//
// Invariant: for any Graph g and VertexId v obtained from g, 0 <= v <
// g.VertexCount(). VertexId values from different Graph instances are not
// interchangeable.
type VertexId int32

// EdgeId is a dense index into a Graph's edge array. Same positional
// contract as VertexId.
type EdgeId int32

// EdgeListId selects one of possibly several parallel edge lists defined over
// the same vertex set (e.g. a truck-restricted edge list alongside the
// default car edge list). Most deployments have exactly one.
type EdgeListId int32

// Vertex is a graph node: a 2-D coordinate in WGS84 degrees, stored as
// float32 to keep tens of millions of vertices in memory (the precision loss
// is well under map-matching/snapping tolerance).
type Vertex struct {
	X float32 // longitude
	Y float32 // latitude
}

// Edge is a directed connection between two vertices with a non-negative
// length in meters. Src and Dst are positions in the owning Graph's vertex
// array, valid only in that Graph's context.
type Edge struct {
	Src    VertexId
	Dst    VertexId
	Length float64 // meters
}
