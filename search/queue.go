package search

import (
	"container/heap"

	"github.com/routeforge/corridor/cost"
)

// frontierItem is one (Label, Cost) entry in the frontier priority queue.
// seq breaks cost ties by insertion order, satisfying spec.md §5's "ties
// broken by insertion order (any deterministic tie-break is acceptable)".
type frontierItem struct {
	label    Label
	gCost    cost.Cost // actual cost from root, compared against the tree for staleness
	priority cost.Cost // gCost + heuristic estimate; what the heap orders on
	seq      uint64
	index    int // maintained by heap.Interface for Fix/Remove, unused here
}

// frontierPQ is a min-heap of *frontierItem ordered by priority ascending
// (ties by seq ascending), the ReverseCost ordering of spec.md §4.6
// expressed directly as a Less function rather than via cost.ReverseCost,
// mirroring the teacher dijkstra package's nodePQ: push duplicates,
// discard stale entries lazily on pop instead of a true decrease-key.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontierPQ) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// Frontier is the search's priority queue: a binary min-heap keyed by
// Cost, with lazy deletion against a SearchTree's current best costs
// (spec.md §4.6). The caller supplies the tree on every Pop so a stale
// entry — one whose cost no longer matches the label's best known cost —
// is discarded rather than acted on.
type Frontier struct {
	pq      frontierPQ
	nextSeq uint64
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.pq)
	return f
}

// Push inserts label at actual cost g, ordered in the heap by g+h.
func (f *Frontier) Push(label Label, g cost.Cost, h cost.Cost) {
	heap.Push(&f.pq, &frontierItem{label: label, gCost: g, priority: g.Add(h), seq: f.nextSeq})
	f.nextSeq++
}

// Empty reports whether the frontier has no entries (stale or fresh).
func (f *Frontier) Empty() bool { return f.pq.Len() == 0 }

// Pop repeatedly discards stale entries against tree, then returns the
// next fresh (label, cost) pair and true, or the zero value and false if
// the frontier is exhausted.
func (f *Frontier) Pop(tree *SearchTree) (Label, cost.Cost, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(*frontierItem)
		node, ok := tree.Get(item.label)
		if !ok || node.Cost != item.gCost {
			continue // stale: tree has since improved on (or never had) this cost
		}
		return item.label, item.gCost, true
	}
	return Label{}, 0, false
}
