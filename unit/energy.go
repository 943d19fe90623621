package unit

// EnergyUnit names a unit of energy. BaseEnergyUnit (Joules) is the
// canonical "joules-equivalent" unit spec.md §6 requires every StateVector
// to store energy values in, regardless of whether the energy is liquid
// fuel or battery electricity — trip_energy_liquid and trip_energy_electric
// are distinct state variables (see package state) that happen to share
// this unit family.
type EnergyUnit string

const (
	Joules          EnergyUnit = "joules"
	KilowattHours   EnergyUnit = "kwh"
	GallonsGasoline EnergyUnit = "gge" // gasoline-gallon-equivalent
	GallonsDiesel   EnergyUnit = "gde" // diesel-gallon-equivalent
	Liters          EnergyUnit = "liters_gasoline_equivalent"

	// BaseEnergyUnit is the canonical unit StateVector values are stored in.
	BaseEnergyUnit = Joules
)

// Energy density conversion factors to joules. Gasoline/diesel energy
// densities are standard EIA gallon-equivalent figures used throughout the
// routing/energy-modeling literature this spec is drawn from.
var energyToJoules = map[EnergyUnit]float64{
	Joules:          1.0,
	KilowattHours:   3.6e6,
	GallonsGasoline: 1.21e8,
	GallonsDiesel:   1.35e8,
	Liters:          3.2e7,
}

// ToBaseEnergy converts a value expressed in unit u into joules.
func ToBaseEnergy(value float64, u EnergyUnit) (float64, error) {
	f, ok := energyToJoules[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return value * f, nil
}

// FromBaseEnergy converts a value expressed in joules into unit u.
func FromBaseEnergy(joules float64, u EnergyUnit) (float64, error) {
	f, ok := energyToJoules[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return joules / f, nil
}

// ConvertEnergy converts a value from one energy unit to another.
func ConvertEnergy(value float64, from, to EnergyUnit) (float64, error) {
	joules, err := ToBaseEnergy(value, from)
	if err != nil {
		return 0, err
	}
	return FromBaseEnergy(joules, to)
}
