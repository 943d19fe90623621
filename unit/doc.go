// Package unit implements the canonical-base-unit conversions spec.md §6
// requires at every process boundary: meters for distance, seconds for
// time, meters-per-second for speed, a joules-equivalent for energy, and a
// dimensionless ratio for state of charge. All internal StateVector storage
// (package state) is always in these base units; unit only converts at the
// edges — reading a query's speed_limit_unit, or serializing a Response's
// result_state in each StateVariableConfig's configured output unit.
//
// Conversion factors are grounded on the original source's
// util/unit/distance_unit.rs and model/unit/distance_unit.rs (NREL
// routee-compass, Rust) — the corpus's Go repos have no equivalent unit
// package, so this one follows the teacher's sentinel-error, no-panic
// discipline (core/errors.go, dijkstra/types.go) applied to a new domain.
package unit
