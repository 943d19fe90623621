package search

import (
	"github.com/routeforge/corridor/cost"
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// EdgeTraversal is the result of one edge-traversal-composition pass
// (spec.md §4.8): the admitted edge, its access and traversal cost
// components, and the resulting state vector.
type EdgeTraversal struct {
	EdgeId        roadnet.EdgeId
	AccessCost    cost.Cost
	TraversalCost cost.Cost
	ResultState   state.Vector
}

// TotalCost is AccessCost + TraversalCost, per spec.md §8's invariant
// total_cost(E) == access_cost(E) + traversal_cost(E).
func (et EdgeTraversal) TotalCost() cost.Cost {
	return et.AccessCost.Add(et.TraversalCost)
}

// SearchTreeNode is one node of a SearchTree: its best-known Cost from
// the root, the EdgeTraversal that produced it (nil for the root), and
// its parent/child Labels, per spec.md §4.6.
type SearchTreeNode struct {
	Cost      cost.Cost
	State     state.Vector   // state accumulated on arrival at this node
	Incoming  *EdgeTraversal // nil for the root
	Parent    Label          // zero value meaningless for the root
	HasParent bool
	Children  []Label
}

// SearchTree maps Label to SearchTreeNode with exactly one root (the
// label with HasParent == false), per spec.md §4.6.
type SearchTree struct {
	nodes      map[Label]*SearchTreeNode
	root       Label
	iterations int
}

// NewSearchTree returns a SearchTree whose only node is root, with Cost
// zero, rootState as its arrival state, and no incoming edge, per
// spec.md §8's root invariant.
func NewSearchTree(root Label, rootState state.Vector) *SearchTree {
	t := &SearchTree{nodes: make(map[Label]*SearchTreeNode), root: root}
	t.nodes[root] = &SearchTreeNode{Cost: cost.Zero, State: rootState}
	return t
}

// Root returns the tree's root Label.
func (t *SearchTree) Root() Label { return t.root }

// Len returns the number of nodes in the tree.
func (t *SearchTree) Len() int { return len(t.nodes) }

// Iterations returns the number of frontier pops performed to produce
// this tree, for Response's iterations bookkeeping (spec.md §6).
func (t *SearchTree) Iterations() int { return t.iterations }

// setIterations records the final iteration count; called by Run once
// the label-setting loop exits.
func (t *SearchTree) setIterations(n int) { t.iterations = n }

// Get returns the node for label, and whether it exists.
func (t *SearchTree) Get(label Label) (*SearchTreeNode, bool) {
	n, ok := t.nodes[label]
	return n, ok
}

// Insert adds or replaces the node at label with the given cost, parent,
// and incoming edge traversal, maintaining the parent's child set
// (spec.md §4.6's "bidirectional consistency" requirement). If label
// already had a different parent (a cost improvement relabels its
// route), the old parent's child entry for label is removed first.
func (t *SearchTree) Insert(label Label, c cost.Cost, parent Label, incoming EdgeTraversal) {
	if existing, ok := t.nodes[label]; ok && existing.HasParent && existing.Parent != parent {
		t.removeChild(existing.Parent, label)
	}
	t.nodes[label] = &SearchTreeNode{
		Cost:      c,
		State:     incoming.ResultState,
		Incoming:  &incoming,
		Parent:    parent,
		HasParent: true,
	}
	if parentNode, ok := t.nodes[parent]; ok {
		if !containsLabel(parentNode.Children, label) {
			parentNode.Children = append(parentNode.Children, label)
		}
	}
}

func (t *SearchTree) removeChild(parent, child Label) {
	parentNode, ok := t.nodes[parent]
	if !ok {
		return
	}
	for i, c := range parentNode.Children {
		if c == child {
			parentNode.Children = append(parentNode.Children[:i], parentNode.Children[i+1:]...)
			return
		}
	}
}

// all exposes the tree's full label->node map for callers (bidirectional
// meeting-point search) that must scan every node rather than look one
// up by label.
func (t *SearchTree) all() map[Label]*SearchTreeNode {
	return t.nodes
}

func containsLabel(labels []Label, target Label) bool {
	for _, l := range labels {
		if l == target {
			return true
		}
	}
	return false
}
