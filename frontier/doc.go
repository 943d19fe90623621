// Package frontier implements the admissibility-filter stack of spec.md
// §4.5: valid_frontier(edge, previous_state, tree) -> bool, called before
// an edge is admitted as a search candidate. Defaults are a road-class
// filter, a vehicle-restriction filter, and their logical-AND combination.
package frontier
