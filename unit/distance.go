package unit

// DistanceUnit names a unit of length. BaseDistanceUnit (Meters) is the
// canonical unit every StateVector stores distance values in.
type DistanceUnit string

// Supported distance units. Conversion factors are grounded on
// routee-compass-core/src/model/unit/distance_unit.rs.
const (
	Meters     DistanceUnit = "meters"
	Kilometers DistanceUnit = "kilometers"
	Miles      DistanceUnit = "miles"
	Feet       DistanceUnit = "feet"

	// BaseDistanceUnit is the canonical unit StateVector values are stored in.
	BaseDistanceUnit = Meters
)

// distanceToMeters gives the factor to multiply a value in unit u by to get
// meters.
var distanceToMeters = map[DistanceUnit]float64{
	Meters:     1.0,
	Kilometers: 1000.0,
	Miles:      1609.34,
	Feet:       0.3048,
}

// ToBaseDistance converts a value expressed in unit u into meters.
func ToBaseDistance(value float64, u DistanceUnit) (float64, error) {
	f, ok := distanceToMeters[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return value * f, nil
}

// FromBaseDistance converts a value expressed in meters into unit u.
func FromBaseDistance(meters float64, u DistanceUnit) (float64, error) {
	f, ok := distanceToMeters[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return meters / f, nil
}

// ConvertDistance converts a value from one distance unit to another.
func ConvertDistance(value float64, from, to DistanceUnit) (float64, error) {
	meters, err := ToBaseDistance(value, from)
	if err != nil {
		return 0, err
	}
	return FromBaseDistance(meters, to)
}
