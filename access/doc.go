// Package access implements the access-model stack of spec.md §4.3:
// transition penalties applied over a 5-tuple (v1, e_prev, v2, e_next,
// v3), invoked only when a previous edge exists in the search tree. The
// default implementation is a turn-delay model driven by a per-edge
// heading table and an angular-threshold turn classifier.
package access
