package unit

import "errors"

// ErrUnknownUnit indicates a unit name did not match any constant known to
// the relevant Kind (e.g. "furlongs" for DistanceUnit).
var ErrUnknownUnit = errors.New("unit: unknown unit name")

// ErrZeroSpeed indicates a time-from-distance-and-speed computation was
// attempted with a zero or negative speed, which would divide by zero or
// produce a nonsensical negative time.
var ErrZeroSpeed = errors.New("unit: speed must be positive to compute time")
