package state

// Vector is a fixed-length state vector: one float64 per variable in a
// Model, in the variable's canonical base unit. Its length always equals
// the Model it was produced from; spec.md §3 calls this "one per tree
// node" — each search-tree node's StateVector is an independently owned
// Vector, cheap to copy (a flat float64 slice) across the frontier.
type Vector []float64

// Model is the built, immutable schema for one query: an ordered
// name->(index, config) map. Index values are dense, matching their
// position in any Vector produced by this Model.
type Model struct {
	order []string
	vars  map[string]variable
}

// Size returns the number of variables (and thus the length of every
// Vector this Model produces).
func (m *Model) Size() int { return len(m.order) }

// Names returns the variable names in index order.
func (m *Model) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Index returns the dense index of name, for models that want to cache
// lookups at build time rather than on every traverse_edge call (spec.md
// §4.1 "get_index").
func (m *Model) Index(name string) (int, error) {
	v, ok := m.vars[name]
	if !ok {
		return 0, ErrUnknownStateVariableName
	}
	return v.index, nil
}

// Config returns the VariableConfig registered for name.
func (m *Model) Config(name string) (VariableConfig, error) {
	v, ok := m.vars[name]
	if !ok {
		return VariableConfig{}, ErrUnknownStateVariableName
	}
	return v.config, nil
}

// InitialState returns a fresh Vector with every slot set to its
// variable's configured InitialValue (spec.md §4.1 "initial_state").
func (m *Model) InitialState() Vector {
	v := make(Vector, len(m.order))
	for _, name := range m.order {
		v[m.vars[name].index] = m.vars[name].config.InitialValue
	}
	return v
}

// Clone returns an independent copy of v, safe to mutate without affecting
// the original — used when forking state across frontier candidates
// (spec.md §4.7's "Copy prev_state into result_state").
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

func (m *Model) lookup(name string, want Kind) (variable, error) {
	v, ok := m.vars[name]
	if !ok {
		return variable{}, ErrUnknownStateVariableName
	}
	if v.config.Kind != want {
		return variable{}, &FeatureTypeError{Name: name, Expected: want, Found: v.config.Kind}
	}
	return v, nil
}
