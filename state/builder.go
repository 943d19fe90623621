package state

// OutputFeature is a (name, config) declaration a traversal or access model
// makes for a state variable it writes, per spec.md §4.2's output_features.
type OutputFeature struct {
	Name   string
	Config VariableConfig
}

// InputFeature is a (name, unit) declaration a traversal or access model
// makes for a state variable it reads, per spec.md §4.2's input_features.
// Unit is advisory (for documentation/validation); the model always reads
// through the base-unit typed getters regardless.
type InputFeature struct {
	Name string
	Unit string
}

// Builder assembles a Model from the output features declared by every
// traversal and access model selected for one query (spec.md §4.1
// "Assembly"), then an optional overlay of user-provided initial
// values/units from the query. Mirrors the teacher's
// newBuilderConfig(opts...)-style single-pass resolution, specialized to
// this package's dedup-by-name-and-kind rule instead of functional options.
type Builder struct {
	order []string
	vars  map[string]variable
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{vars: make(map[string]variable)}
}

// Declare registers name with config. If name was already declared by an
// earlier model, the two declarations must agree on Kind
// (ErrUnexpectedFeatureType otherwise, via *FeatureTypeError); the first
// declaration's InitialValue/Accumulate/OutputUnit win, matching spec.md
// §4.1's "deduplicating by name" step, which only requires type agreement.
func (b *Builder) Declare(name string, cfg VariableConfig) error {
	if existing, ok := b.vars[name]; ok {
		if existing.config.Kind != cfg.Kind {
			return &FeatureTypeError{Name: name, Expected: existing.config.Kind, Found: cfg.Kind}
		}
		return nil
	}
	idx := len(b.order)
	b.order = append(b.order, name)
	b.vars[name] = variable{name: name, index: idx, config: cfg}
	return nil
}

// Overlay applies a user-provided initial value/output unit to an
// already-declared variable, per spec.md §4.1's "restricted to names
// already present" rule. Overlaying an unknown name is
// ErrUnknownStateVariableName.
func (b *Builder) Overlay(name string, initialValue float64, outputUnit string) error {
	v, ok := b.vars[name]
	if !ok {
		return ErrUnknownStateVariableName
	}
	v.config.InitialValue = initialValue
	if outputUnit != "" {
		v.config.OutputUnit = outputUnit
	}
	b.vars[name] = v
	return nil
}

// Build freezes the Builder into an immutable Model. The Builder remains
// usable afterward but further Declare/Overlay calls do not retroactively
// affect Models already built.
func (b *Builder) Build() *Model {
	order := make([]string, len(b.order))
	copy(order, b.order)
	vars := make(map[string]variable, len(b.vars))
	for k, v := range b.vars {
		vars[k] = v
	}
	return &Model{order: order, vars: vars}
}
