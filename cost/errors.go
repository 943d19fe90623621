package cost

import "errors"

// Sentinel errors for the cost package. UserConfigurationError-shaped
// failures (spec.md §4.4's "model fails UserConfigurationError") are
// represented here as ErrNoMatchingWeight; callers branch with errors.Is.
var (
	// ErrNoMatchingWeight indicates a built weight map had no entry that
	// matched any declared state variable name, and IgnoreUnknownWeights
	// was not set.
	ErrNoMatchingWeight = errors.New("cost: no weight matches a known state variable")

	// ErrNaNCost indicates a computed Cost would be NaN; Cost.New refuses
	// to construct such a value, per spec.md §4.4's "NaN banned at
	// construction" ordering contract.
	ErrNaNCost = errors.New("cost: NaN cost is not permitted")

	// ErrUnknownRateKind indicates a VehicleCostRate or NetworkCostRate
	// carried a Kind value this package does not recognize.
	ErrUnknownRateKind = errors.New("cost: unknown rate kind")

	// ErrEmptyControlPoints indicates a piecewise-linear VehicleCostRate
	// was built with zero control points.
	ErrEmptyControlPoints = errors.New("cost: piecewise-linear rate has no control points")
)
