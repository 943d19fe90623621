package access

import (
	"math"

	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// TurnCategory classifies a turn by the angular difference between the
// incoming and outgoing edge headings, per spec.md §4.3.
type TurnCategory int

const (
	NoTurn TurnCategory = iota
	SlightTurn
	RightTurn
	LeftTurn
	UTurn
)

// String renders a TurnCategory for error messages and logging.
func (c TurnCategory) String() string {
	switch c {
	case NoTurn:
		return "no-turn"
	case SlightTurn:
		return "slight"
	case RightTurn:
		return "right"
	case LeftTurn:
		return "left"
	case UTurn:
		return "u-turn"
	default:
		return "unknown"
	}
}

// TurnThresholds holds the angular boundaries (degrees) the classifier
// uses. A turn whose absolute bearing change is <= NoTurnDegrees is
// NoTurn; <= SlightDegrees is Slight; >= UTurnDegrees is UTurn; otherwise
// Right or Left by the sign of the signed bearing change.
type TurnThresholds struct {
	NoTurnDegrees float64
	SlightDegrees float64
	UTurnDegrees  float64
}

// DefaultTurnThresholds are reasonable defaults grounded on common
// turn-penalty heuristics: near-zero deflection is "no turn", up to 45
// degrees is "slight", 150 degrees or more is a "u-turn".
func DefaultTurnThresholds() TurnThresholds {
	return TurnThresholds{NoTurnDegrees: 10, SlightDegrees: 45, UTurnDegrees: 150}
}

// Classify returns the TurnCategory for a signed bearing change (degrees,
// positive meaning a clockwise/rightward deflection), normalized to
// (-180, 180] before classification.
func (t TurnThresholds) Classify(bearingChangeDegrees float64) TurnCategory {
	d := normalizeDegrees(bearingChangeDegrees)
	abs := math.Abs(d)
	switch {
	case abs <= t.NoTurnDegrees:
		return NoTurn
	case abs >= t.UTurnDegrees:
		return UTurn
	case abs <= t.SlightDegrees:
		return SlightTurn
	case d > 0:
		return RightTurn
	default:
		return LeftTurn
	}
}

func normalizeDegrees(d float64) float64 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

// TurnDelayService is the process-start collaborator for the default
// turn-delay access model: an immutable per-edge heading table and a
// category→seconds delay table, per spec.md §4.3.
type TurnDelayService struct {
	heading    map[roadnet.EdgeId]float64 // degrees, 0-360, compass bearing
	thresholds TurnThresholds
	delays     map[TurnCategory]float64 // seconds
}

// NewTurnDelayService returns a TurnDelayService. Any TurnCategory absent
// from delays defaults to zero delay.
func NewTurnDelayService(heading map[roadnet.EdgeId]float64, thresholds TurnThresholds, delays map[TurnCategory]float64) *TurnDelayService {
	return &TurnDelayService{heading: heading, thresholds: thresholds, delays: delays}
}

// BuildModel resolves state indices; turn delay has no query-time parameters.
func (s *TurnDelayService) BuildModel(_ BuildParams, sm *state.Model) (Model, error) {
	if _, err := sm.Index("edge_time"); err != nil {
		return nil, err
	}
	if _, err := sm.Index("trip_time"); err != nil {
		return nil, err
	}
	return &turnDelayModel{service: s}, nil
}

type turnDelayModel struct {
	service *TurnDelayService
}

func (m *turnDelayModel) InputFeatures() []state.InputFeature { return nil }

func (m *turnDelayModel) OutputFeatures() []state.OutputFeature {
	return []state.OutputFeature{
		{Name: "edge_turn_delay", Config: state.VariableConfig{Kind: state.Time, Accumulate: false}},
		{Name: "edge_time", Config: state.VariableConfig{Kind: state.Time, Accumulate: false}},
		{Name: "trip_time", Config: state.VariableConfig{Kind: state.Time, Accumulate: true}},
	}
}

func (m *turnDelayModel) TraverseAccess(traj Trajectory, st state.Vector, sm *state.Model) error {
	prevHeading, ok := m.service.heading[traj.EPrev]
	if !ok {
		return ErrMissingEdgeHeading
	}
	nextHeading, ok := m.service.heading[traj.ENext]
	if !ok {
		return ErrMissingEdgeHeading
	}

	category := m.service.thresholds.Classify(nextHeading - prevHeading)
	delay := m.service.delays[category]

	if err := sm.SetTime(st, "edge_turn_delay", delay); err != nil {
		return err
	}
	edgeTime, err := sm.GetTime(st, "edge_time")
	if err != nil {
		return err
	}
	if err := sm.SetTime(st, "edge_time", edgeTime+delay); err != nil {
		return err
	}
	return sm.AddTime(st, "trip_time", delay)
}
