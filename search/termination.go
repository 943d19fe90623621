package search

import "time"

// TerminationModel is a composable stop condition for the label-setting
// loop, per spec.md §4.11. Check is called once per expanded frontier pop
// (after the popped label's out-edges have been expanded) and returns
// true when the search should stop; termination is a distinguishable
// result, not an error, so the caller can still backtrack a partial tree.
type TerminationModel interface {
	Check(iterations, treeSize int, elapsed time.Duration) bool
}

// QueryRuntimeLimit stops the search once elapsed wall-clock time exceeds
// Limit, checked every Frequency iterations to keep the clock read cheap.
type QueryRuntimeLimit struct {
	Limit     time.Duration
	Frequency int
}

// Check implements TerminationModel.
func (q QueryRuntimeLimit) Check(iterations, _ int, elapsed time.Duration) bool {
	freq := q.Frequency
	if freq <= 0 {
		freq = 1
	}
	if iterations%freq != 0 {
		return false
	}
	return elapsed >= q.Limit
}

// IterationsLimit stops the search after Limit frontier pops.
type IterationsLimit struct {
	Limit int
}

// Check implements TerminationModel.
func (l IterationsLimit) Check(iterations, _ int, _ time.Duration) bool {
	return iterations >= l.Limit
}

// SolutionSizeLimit stops the search once the tree exceeds Limit nodes.
type SolutionSizeLimit struct {
	Limit int
}

// Check implements TerminationModel.
func (l SolutionSizeLimit) Check(_, treeSize int, _ time.Duration) bool {
	return treeSize > l.Limit
}

// CombinedTermination short-circuit-ORs its inner models, per spec.md
// §4.11: the search stops as soon as any one model says to.
type CombinedTermination struct {
	Models []TerminationModel
}

// Check implements TerminationModel.
func (c CombinedTermination) Check(iterations, treeSize int, elapsed time.Duration) bool {
	for _, m := range c.Models {
		if m.Check(iterations, treeSize, elapsed) {
			return true
		}
	}
	return false
}

// NeverTerminate never stops the search early (the loop still ends
// naturally when the frontier empties or the target is reached).
type NeverTerminate struct{}

// Check implements TerminationModel.
func (NeverTerminate) Check(_, _ int, _ time.Duration) bool { return false }
