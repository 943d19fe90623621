// Package state implements spec.md §4.1: a typed, unit-aware schema over a
// flat []float64 state vector. Every other model package (traversal,
// access, cost, frontier, search) reads and writes state exclusively
// through this package's typed getters/setters rather than touching a
// StateVector's backing array directly, so the accumulator/overwrite and
// unit-conversion rules are enforced in exactly one place.
//
// The design mirrors the teacher's dijkstra.Options / builder.BuilderOption
// functional-options discipline (DefaultOptions + opts ...Option), adapted
// to a schema that is assembled once per query from the traversal/access
// models selected for that query (§4.1 "Assembly"), then reused to produce
// one StateVector per search-tree label.
package state
