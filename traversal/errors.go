package traversal

import "errors"

var (
	// ErrMissingEdgeSpeed indicates the speed model's per-edge lookup
	// table had no entry for a traversed edge, per spec.md §4.2.
	ErrMissingEdgeSpeed = errors.New("traversal: missing edge speed table entry")

	// ErrMissingInputFeature indicates a model's traverse_edge needed a
	// state variable that was absent and ignore_missing was not set on
	// the enclosing Combined model.
	ErrMissingInputFeature = errors.New("traversal: missing required input feature")

	// ErrUnknownVehicleClass indicates an EnergyService vehicle class
	// the energy model does not recognize (ICE, BEV, PHEV).
	ErrUnknownVehicleClass = errors.New("traversal: unknown vehicle class")

	// ErrZeroBatteryCapacity indicates an energy model for a battery
	// vehicle was built with a non-positive battery capacity.
	ErrZeroBatteryCapacity = errors.New("traversal: zero or negative battery capacity")

	// ErrNotAChargingStation indicates Charging's traverse_edge was asked
	// to evaluate a vertex absent from the charging station registry;
	// not itself fatal, callers check ahead via the service's IsStation.
	ErrNotAChargingStation = errors.New("traversal: vertex is not a registered charging station")
)
