package unit

// TimeUnit names a unit of duration. BaseTimeUnit (Seconds) is the
// canonical unit every StateVector stores time values in.
type TimeUnit string

const (
	Seconds TimeUnit = "seconds"
	Minutes TimeUnit = "minutes"
	Hours   TimeUnit = "hours"

	// BaseTimeUnit is the canonical unit StateVector values are stored in.
	BaseTimeUnit = Seconds
)

var timeToSeconds = map[TimeUnit]float64{
	Seconds: 1.0,
	Minutes: 60.0,
	Hours:   3600.0,
}

// ToBaseTime converts a value expressed in unit u into seconds.
func ToBaseTime(value float64, u TimeUnit) (float64, error) {
	f, ok := timeToSeconds[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return value * f, nil
}

// FromBaseTime converts a value expressed in seconds into unit u.
func FromBaseTime(seconds float64, u TimeUnit) (float64, error) {
	f, ok := timeToSeconds[u]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return seconds / f, nil
}

// ConvertTime converts a value from one time unit to another.
func ConvertTime(value float64, from, to TimeUnit) (float64, error) {
	seconds, err := ToBaseTime(value, from)
	if err != nil {
		return 0, err
	}
	return FromBaseTime(seconds, to)
}

// TimeFromDistanceSpeed computes distance/speed in base units (meters,
// meters-per-second), returning seconds. Grounded on
// compass-core/src/util/unit/time.rs's calculate_time, generalized to avoid
// the divide-by-zero spec.md §8 calls out for zero-length, zero-speed edges:
// a zero distance with zero speed yields zero time rather than an error,
// since no travel occurred; a positive distance with non-positive speed is
// the genuine error case.
func TimeFromDistanceSpeed(distanceMeters, speedMetersPerSecond float64) (float64, error) {
	if distanceMeters == 0 {
		return 0, nil
	}
	if speedMetersPerSecond <= 0 {
		return 0, ErrZeroSpeed
	}
	return distanceMeters / speedMetersPerSecond, nil
}
