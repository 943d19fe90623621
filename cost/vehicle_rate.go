package cost

import "sort"

// VehicleRateKind distinguishes the four shapes a VehicleCostRate's
// evaluation can take, per spec.md §4.4.
type VehicleRateKind int

const (
	// RateIdentity passes the raw delta through unchanged: cost = delta.
	RateIdentity VehicleRateKind = iota
	// RateFactor multiplies the delta by a constant: cost = factor * delta.
	RateFactor
	// RateRawDifference ignores the delta's sign and uses its absolute
	// value: cost = |delta|.
	RateRawDifference
	// RatePiecewiseLinear interpolates Cost from the state variable's next
	// value (not the delta) across a sorted table of control points.
	RatePiecewiseLinear
)

// ControlPoint is one (x, cost) pair in a piecewise-linear VehicleCostRate.
type ControlPoint struct {
	X    float64
	Cost Cost
}

// VehicleCostRate maps a state variable's delta (or, for piecewise-linear
// rates, its next value) to a Cost contribution, per spec.md §4.4.
type VehicleCostRate struct {
	Kind   VehicleRateKind
	Factor float64        // used by RateFactor
	Points []ControlPoint // used by RatePiecewiseLinear; must be sorted by X
}

// Identity returns the identity rate.
func Identity() VehicleCostRate { return VehicleCostRate{Kind: RateIdentity} }

// Factor returns a constant-factor rate.
func Factor(f float64) VehicleCostRate { return VehicleCostRate{Kind: RateFactor, Factor: f} }

// RawDifference returns an absolute-value rate.
func RawDifference() VehicleCostRate { return VehicleCostRate{Kind: RateRawDifference} }

// PiecewiseLinear returns a piecewise-linear rate over points, sorted by
// X. ErrEmptyControlPoints if points is empty.
func PiecewiseLinear(points []ControlPoint) (VehicleCostRate, error) {
	if len(points) == 0 {
		return VehicleCostRate{}, ErrEmptyControlPoints
	}
	sorted := make([]ControlPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	return VehicleCostRate{Kind: RatePiecewiseLinear, Points: sorted}, nil
}

// Evaluate computes this rate's Cost contribution given the state
// variable's delta (next - prev) and its raw next value, the latter used
// only by RatePiecewiseLinear.
func (r VehicleCostRate) Evaluate(delta, next float64) (Cost, error) {
	switch r.Kind {
	case RateIdentity:
		return Cost(delta), nil
	case RateFactor:
		return Cost(r.Factor * delta), nil
	case RateRawDifference:
		if delta < 0 {
			delta = -delta
		}
		return Cost(delta), nil
	case RatePiecewiseLinear:
		return r.interpolate(next), nil
	default:
		return 0, ErrUnknownRateKind
	}
}

// interpolate performs linear interpolation between the two bracketing
// control points, with constant extrapolation beyond either end — the
// "reasonable default" spec.md §9's Open Question leaves for confirmation.
func (r VehicleCostRate) interpolate(x float64) Cost {
	points := r.Points
	if x <= points[0].X {
		return points[0].Cost
	}
	last := len(points) - 1
	if x >= points[last].X {
		return points[last].Cost
	}
	idx := sort.Search(len(points), func(i int) bool { return points[i].X >= x })
	lo, hi := points[idx-1], points[idx]
	span := hi.X - lo.X
	if span == 0 {
		return lo.Cost
	}
	frac := (x - lo.X) / span
	return lo.Cost + Cost(frac)*(hi.Cost-lo.Cost)
}
