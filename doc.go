// Package corridor is a vehicle-routing search engine: a composable
// traversal/access/cost/frontier model stack over a static road
// network, label-setting (Dijkstra/A*) and bidirectional search, and
// k-shortest-paths, built for a single process to run many independent
// queries concurrently against one shared, read-only graph.
//
//	roadnet/    — the road network: dense vertex/edge arrays, built once
//	unit/       — canonical unit conversions (distance, time, speed, ...)
//	state/      — per-query state vectors threaded through a search
//	traversal/  — edge-traversal cost/time/energy models
//	access/     — turn and access-restriction models
//	frontier/   — edge-admissibility filters (road class, restrictions)
//	cost/       — aggregates state into a scalar search weight
//	search/     — the label-setting engine: Dijkstra, A*, bidirectional, KSP
//	batch/      — the concurrent multi-query worker pool
//	config/     — YAML configuration and hot-reload
//	corridorio/ — query/response wire types
//	roadnetio/  — CSV/gzip graph and auxiliary-table loading
//	mapmatch/   — GPS trace to road network matching
//	cmd/corridor/ — the CLI entry point
//
// This module has no package at its root; it exists to hold the
// packages above and the documentation of how they fit together.
package corridor
