package state

import "github.com/routeforge/corridor/unit"

// SerializedValue is one variable's rendering for the external Response
// JSON (spec.md §6): its value in OutputUnit, plus the unit name itself so
// a caller need not know the schema out of band.
type SerializedValue struct {
	Value      float64 `json:"value"`
	OutputUnit string  `json:"output_unit"`
}

func defaultUnit(k Kind) string {
	switch k {
	case Distance:
		return string(unit.BaseDistanceUnit)
	case Time:
		return string(unit.BaseTimeUnit)
	case Speed:
		return string(unit.BaseSpeedUnit)
	case Energy:
		return string(unit.BaseEnergyUnit)
	case Ratio:
		return string(unit.BaseRatioUnit)
	default:
		return ""
	}
}

func convertForOutput(k Kind, baseValue float64, outputUnit string) (float64, error) {
	switch k {
	case Distance:
		return unit.FromBaseDistance(baseValue, unit.DistanceUnit(outputUnit))
	case Time:
		return unit.FromBaseTime(baseValue, unit.TimeUnit(outputUnit))
	case Speed:
		return unit.FromBaseSpeed(baseValue, unit.SpeedUnit(outputUnit))
	case Energy:
		return unit.FromBaseEnergy(baseValue, unit.EnergyUnit(outputUnit))
	case Ratio:
		return unit.FromBaseRatio(baseValue, unit.RatioUnit(outputUnit))
	default:
		// Custom variables have no unit family; pass through unconverted.
		return baseValue, nil
	}
}

// Serialize renders every variable in v through its configured OutputUnit
// (or the Kind's base unit if none was configured), per spec.md §4.1's
// serialization contract.
func (m *Model) Serialize(v Vector) (map[string]SerializedValue, error) {
	out := make(map[string]SerializedValue, len(m.order))
	for _, name := range m.order {
		vr := m.vars[name]
		if vr.index >= len(v) {
			return nil, ErrIndexOutOfBounds
		}
		outUnit := vr.config.OutputUnit
		if outUnit == "" {
			outUnit = defaultUnit(vr.config.Kind)
		}
		val, err := convertForOutput(vr.config.Kind, v[vr.index], outUnit)
		if err != nil {
			return nil, err
		}
		out[name] = SerializedValue{Value: val, OutputUnit: outUnit}
	}
	return out, nil
}
