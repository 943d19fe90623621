package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
	"github.com/routeforge/corridor/unit"
)

// VehicleClass selects which energy consumption path the Energy model
// exercises, per spec.md §4.2.
type VehicleClass int

const (
	// ICE is a liquid-fuel-only vehicle: all energy goes to trip_energy_liquid.
	ICE VehicleClass = iota
	// BEV is a battery-electric vehicle: all energy goes to
	// trip_energy_electric, and trip_soc is updated.
	BEV
	// PHEV is a plug-in hybrid: electric until trip_soc falls below
	// PHEVSwitchThreshold, then liquid.
	PHEV
)

// EnergyPredictor is the opaque (speed, grade) → energy-rate function the
// Energy model composes with the vehicle configuration, per spec.md
// §4.2's "opaque predictor" contract. The production predictor may be
// backed by a learned model; the core never inspects its internals.
type EnergyPredictor interface {
	// EnergyRate returns joules per meter for the given speed (meters per
	// second) and grade (dimensionless rise/run).
	EnergyRate(speedMetersPerSecond, grade float64) float64
}

// ConstantEnergyPredictor is a trivial EnergyPredictor useful for tests
// and for vehicles with no learned consumption model: a fixed rate
// regardless of speed or grade.
type ConstantEnergyPredictor struct {
	RateJoulesPerMeter float64
}

// EnergyRate implements EnergyPredictor.
func (p ConstantEnergyPredictor) EnergyRate(_, _ float64) float64 { return p.RateJoulesPerMeter }

// EnergyService is the process-start collaborator for the default Energy
// traversal model: an immutable vehicle class, predictor, and (for
// battery vehicles) battery capacity, per spec.md §4.2.
type EnergyService struct {
	class                 VehicleClass
	predictor             EnergyPredictor
	grade                 map[roadnet.EdgeId]float64
	batteryCapacityJoules float64
}

// NewEnergyService returns an EnergyService. batteryCapacityJoules is
// ignored for class == ICE.
func NewEnergyService(class VehicleClass, predictor EnergyPredictor, grade map[roadnet.EdgeId]float64, batteryCapacityJoules float64) *EnergyService {
	return &EnergyService{class: class, predictor: predictor, grade: grade, batteryCapacityJoules: batteryCapacityJoules}
}

// BuildModel resolves per-query battery parameters (battery capacity
// override, PHEV switch threshold) and validates battery capacity for
// battery vehicles. BuildParams.StartingSoC is not read here.
func (s *EnergyService) BuildModel(p BuildParams, sm *state.Model) (Model, error) {
	if s.class != ICE {
		capacity := s.batteryCapacityJoules
		if p.BatteryCapacityJoules > 0 {
			capacity = p.BatteryCapacityJoules
		}
		if capacity <= 0 {
			return nil, ErrZeroBatteryCapacity
		}
		return &energyModel{service: s, batteryCapacityJoules: capacity, phevThreshold: p.PHEVSwitchThreshold}, nil
	}
	return &energyModel{service: s}, nil
}

type energyModel struct {
	service               *EnergyService
	batteryCapacityJoules float64
	phevThreshold         float64
}

func (m *energyModel) InputFeatures() []state.InputFeature {
	return []state.InputFeature{
		{Name: "edge_distance", Unit: "meters"},
		{Name: "edge_speed", Unit: "meters_per_second"},
	}
}

func (m *energyModel) OutputFeatures() []state.OutputFeature {
	features := []state.OutputFeature{
		{Name: "trip_energy_liquid", Config: state.VariableConfig{Kind: state.Energy, Accumulate: true}},
	}
	if m.service.class != ICE {
		features = append(features,
			state.OutputFeature{Name: "trip_energy_electric", Config: state.VariableConfig{Kind: state.Energy, Accumulate: true}},
			state.OutputFeature{Name: "trip_soc", Config: state.VariableConfig{Kind: state.Ratio, Accumulate: false, InitialValue: 1.0}},
		)
	}
	return features
}

func (m *energyModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	distance, err := sm.GetDistance(st, "edge_distance")
	if err != nil {
		return err
	}
	speed, err := sm.GetSpeed(st, "edge_speed")
	if err != nil {
		return err
	}
	grade := m.service.grade[traj.Edge]
	energy := m.service.predictor.EnergyRate(speed, grade) * distance

	switch m.service.class {
	case ICE:
		return sm.AddEnergy(st, "trip_energy_liquid", energy)
	case BEV:
		return m.consumeElectric(st, sm, energy)
	case PHEV:
		soc, err := sm.GetRatio(st, "trip_soc")
		if err != nil {
			return err
		}
		if soc < m.phevThreshold {
			return sm.AddEnergy(st, "trip_energy_liquid", energy)
		}
		return m.consumeElectric(st, sm, energy)
	default:
		return ErrUnknownVehicleClass
	}
}

func (m *energyModel) consumeElectric(st state.Vector, sm *state.Model, energy float64) error {
	if err := sm.AddEnergy(st, "trip_energy_electric", energy); err != nil {
		return err
	}
	soc, err := sm.GetRatio(st, "trip_soc")
	if err != nil {
		return err
	}
	soc = unit.ClampRatio(soc - energy/m.batteryCapacityJoules)
	return sm.SetRatio(st, "trip_soc", soc)
}

// EstimateTraversal is a no-op: energy consumption has no admissible
// non-zero lower bound independent of route choice (regenerative braking
// can make net consumption arbitrarily close to zero).
func (m *energyModel) EstimateTraversal(_ ODPair, _ state.Vector, _ *state.Model) error {
	return nil
}
