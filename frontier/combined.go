package frontier

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// Combined admits an edge iff every inner Model admits it: the logical
// AND of spec.md §4.5.
type Combined struct {
	inner []Model
}

// NewCombined returns a Combined over inner.
func NewCombined(inner ...Model) *Combined {
	return &Combined{inner: inner}
}

// ValidFrontier implements Model.
func (c *Combined) ValidFrontier(edge roadnet.EdgeId, previousState state.Vector, sm *state.Model) (bool, error) {
	for _, m := range c.inner {
		ok, err := m.ValidFrontier(edge, previousState, sm)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
