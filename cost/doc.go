// Package cost converts state-vector transitions into the non-negative
// scalar Cost that drives the search frontier's priority queue, per
// spec.md §4.4. A CostModel is built once per query from a weight map, a
// per-variable VehicleCostRate, a per-variable NetworkCostRate, and a
// CostAggregation, then evaluated once per edge traversal (and once per
// access-model application) for the rest of that query's search.
package cost
