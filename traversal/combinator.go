package traversal

import "github.com/routeforge/corridor/state"

// Combined wraps an ordered list of sub-models behind a single Model,
// per spec.md §4.2's combinator. Dependency order (e.g. Distance before
// Speed before Time) is the caller's responsibility; Combined calls
// children strictly in the order given.
type Combined struct {
	children      []Model
	ignoreMissing bool
}

// NewCombined returns a Combined over children. If ignoreMissing is true,
// a child whose TraverseEdge/EstimateTraversal fails with
// ErrMissingInputFeature is skipped rather than aborting the whole call.
func NewCombined(ignoreMissing bool, children ...Model) *Combined {
	return &Combined{children: children, ignoreMissing: ignoreMissing}
}

// InputFeatures returns the union of all children's input features.
func (c *Combined) InputFeatures() []state.InputFeature {
	var out []state.InputFeature
	for _, child := range c.children {
		out = append(out, child.InputFeatures()...)
	}
	return out
}

// OutputFeatures returns the union of all children's output features.
func (c *Combined) OutputFeatures() []state.OutputFeature {
	var out []state.OutputFeature
	for _, child := range c.children {
		out = append(out, child.OutputFeatures()...)
	}
	return out
}

// TraverseEdge calls every child's TraverseEdge in order.
func (c *Combined) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	for _, child := range c.children {
		if err := child.TraverseEdge(traj, st, sm); err != nil {
			if c.ignoreMissing && err == ErrMissingInputFeature {
				continue
			}
			return err
		}
	}
	return nil
}

// EstimateTraversal calls every child's EstimateTraversal in order.
func (c *Combined) EstimateTraversal(od ODPair, st state.Vector, sm *state.Model) error {
	for _, child := range c.children {
		if err := child.EstimateTraversal(od, st, sm); err != nil {
			if c.ignoreMissing && err == ErrMissingInputFeature {
				continue
			}
			return err
		}
	}
	return nil
}
