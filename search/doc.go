// Package search implements the label-setting search core of spec.md
// §4.6-§4.12: labels and the search tree, the lazy-deletion priority
// queue, the forward/reverse vertex-oriented label-setting algorithm,
// edge-traversal composition, bidirectional search with reverse-route
// re-orientation, k-shortest-path variants (single-via and Yen's),
// pluggable termination models, and route backtracking.
package search
