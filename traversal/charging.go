package traversal

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// ChargingStation is a registered charger: its power delivery in watts
// and the power type it offers (e.g. "level2", "dcfc"), per spec.md §4.2.
type ChargingStation struct {
	PowerWatts float64
	PowerType  string
}

// ChargingService is the process-start collaborator for the default
// Charging traversal model: an immutable vertex → ChargingStation
// registry, per spec.md §4.2.
type ChargingService struct {
	stations map[roadnet.VertexId]ChargingStation
}

// NewChargingService returns a ChargingService backed by stations.
func NewChargingService(stations map[roadnet.VertexId]ChargingStation) *ChargingService {
	return &ChargingService{stations: stations}
}

// IsStation reports whether v is a registered charging station.
func (s *ChargingService) IsStation(v roadnet.VertexId) bool {
	_, ok := s.stations[v]
	return ok
}

// BuildModel resolves per-query charging preferences: the SoC threshold
// below which charging is triggered, the target SoC to charge to, the
// battery capacity (shared with the Energy model's configuration), and
// the set of station power types this vehicle accepts.
func (s *ChargingService) BuildModel(p BuildParams, sm *state.Model) (Model, error) {
	if _, err := sm.Index("trip_soc"); err != nil {
		return nil, err
	}
	if _, err := sm.Index("trip_time"); err != nil {
		return nil, err
	}
	if p.BatteryCapacityJoules <= 0 {
		return nil, ErrZeroBatteryCapacity
	}
	target := p.SoCFullTarget
	if target <= 0 {
		target = 1.0
	}
	return &chargingModel{
		service:               s,
		threshold:             p.ChargingThreshold,
		target:                target,
		batteryCapacityJoules: p.BatteryCapacityJoules,
		allowedPowerType:      p.AllowedStationPowerType,
	}, nil
}

type chargingModel struct {
	service               *ChargingService
	threshold             float64
	target                float64
	batteryCapacityJoules float64
	allowedPowerType      map[string]bool
}

func (m *chargingModel) InputFeatures() []state.InputFeature {
	return []state.InputFeature{{Name: "trip_soc", Unit: "ratio"}}
}

func (m *chargingModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "trip_soc", Config: state.VariableConfig{Kind: state.Ratio, Accumulate: false, InitialValue: 1.0}},
		{Name: "trip_time", Config: state.VariableConfig{Kind: state.Time, Accumulate: true}},
	}
}

// TraverseEdge evaluates a charging event at traj.Dst: if it is a
// registered station whose power type is permitted, and arrival SoC is
// below threshold, SoC is charged to target and the implied dwell time
// is added to trip_time.
func (m *chargingModel) TraverseEdge(traj Trajectory, st state.Vector, sm *state.Model) error {
	station, ok := m.service.stations[traj.Dst]
	if !ok {
		return nil
	}
	if len(m.allowedPowerType) > 0 && !m.allowedPowerType[station.PowerType] {
		return nil
	}
	soc, err := sm.GetRatio(st, "trip_soc")
	if err != nil {
		return err
	}
	if soc >= m.threshold {
		return nil
	}
	if station.PowerWatts <= 0 {
		return nil
	}
	dwellSeconds := (m.target - soc) * m.batteryCapacityJoules / station.PowerWatts
	if dwellSeconds < 0 {
		dwellSeconds = 0
	}
	if err := sm.SetRatio(st, "trip_soc", m.target); err != nil {
		return err
	}
	return sm.AddTime(st, "trip_time", dwellSeconds)
}

// EstimateTraversal is a no-op: whether a route passes a charging station
// at all is not decidable from an OD pair alone.
func (m *chargingModel) EstimateTraversal(_ ODPair, _ state.Vector, _ *state.Model) error {
	return nil
}
