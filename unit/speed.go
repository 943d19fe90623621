package unit

// SpeedUnit names a unit of velocity. BaseSpeedUnit (MetersPerSecond) is
// the canonical unit every StateVector stores speed values in.
type SpeedUnit string

const (
	MetersPerSecond   SpeedUnit = "mps"
	KilometersPerHour SpeedUnit = "kph"
	MilesPerHour      SpeedUnit = "mph"

	// BaseSpeedUnit is the canonical unit StateVector values are stored in.
	BaseSpeedUnit = MetersPerSecond
)

var speedToMPS = map[SpeedUnit]float64{
	MetersPerSecond:   1.0,
	KilometersPerHour: 1000.0 / 3600.0,
	MilesPerHour:      1609.34 / 3600.0,
}

// ToBaseSpeed converts a value expressed in unit u into meters per second.
func ToBaseSpeed(value float64, u SpeedUnit) (float64, error) {
	f, ok := speedToMPS[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return value * f, nil
}

// FromBaseSpeed converts a value expressed in meters per second into unit u.
func FromBaseSpeed(mps float64, u SpeedUnit) (float64, error) {
	f, ok := speedToMPS[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return mps / f, nil
}

// ConvertSpeed converts a value from one speed unit to another.
func ConvertSpeed(value float64, from, to SpeedUnit) (float64, error) {
	mps, err := ToBaseSpeed(value, from)
	if err != nil {
		return 0, err
	}
	return FromBaseSpeed(mps, to)
}
