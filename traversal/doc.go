// Package traversal implements the composable traversal-model stack of
// spec.md §4.2: per-edge state updates (traverse_edge) and A*-admissible
// lower-bound estimates (estimate_traversal), built from a process-start
// Service and combined via Combined into one model per query.
package traversal
