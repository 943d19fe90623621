package state

// VariableConfig declares one state variable: its semantic Kind, its
// initial numeric value (in the Kind's canonical base unit), whether
// updates accumulate (add) or overwrite (set), and an optional preferred
// output unit used only at serialization time — internal storage is always
// the base unit regardless of OutputUnit.
type VariableConfig struct {
	Kind Kind

	// InitialValue seeds StateModel.InitialState(), in the canonical base
	// unit for Kind.
	InitialValue float64

	// Accumulate, if true, means Add is permitted and semantically sound
	// (e.g. trip_distance). If false, only Set is permitted (e.g.
	// edge_speed, which is overwritten per edge, not summed).
	Accumulate bool

	// OutputUnit is the unit Serialize renders this variable's value in.
	// Empty means "the Kind's base unit".
	OutputUnit string
}

// variable is the resolved (name, index, config) triple stored in a built
// StateModel.
type variable struct {
	name   string
	index  int
	config VariableConfig
}
