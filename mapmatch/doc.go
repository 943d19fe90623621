// Package mapmatch implements simple trace-to-network map matching,
// supplementing spec.md's distilled scope with the baseline algorithm
// NREL's routee-compass ships alongside its search core
// (algorithm/map_matching/model/simple/simple_map_matching.rs): match
// each observed point to its nearest edge, then emit the path as the
// sequence of distinct consecutive matched edges.
//
// This baseline makes no attempt to fill gaps between non-adjacent
// matched edges with a shortest path, and ignores trace timestamps. It
// is intended for dense, high-quality traces; sparse or noisy GPS
// traces need an HMM-based matcher, out of scope here.
//
// DTWMatcher wraps any Matcher and adds an AlignmentCost to its Result,
// using dynamic time warping (warpDistance) to compare the trace's
// cumulative observed distance against the matched path's cumulative
// edge length, a cheap way to flag a bad match without a full
// probabilistic model.
package mapmatch
