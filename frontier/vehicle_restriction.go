package frontier

import (
	"github.com/routeforge/corridor/roadnet"
	"github.com/routeforge/corridor/state"
)

// VehicleParameter names a physical property of the traveling vehicle a
// restriction compares against, per spec.md §4.5.
type VehicleParameter int

const (
	Height VehicleParameter = iota
	Width
	Length
	Weight
	Axles
)

// ComparisonOp is the comparison a VehicleRestriction applies between the
// query-provided vehicle parameter and the restriction's threshold.
type ComparisonOp int

const (
	LessThan ComparisonOp = iota
	LessOrEqual
	Equal
	GreaterOrEqual
	GreaterThan
)

func (op ComparisonOp) evaluate(value, threshold float64) (bool, error) {
	switch op {
	case LessThan:
		return value < threshold, nil
	case LessOrEqual:
		return value <= threshold, nil
	case Equal:
		return value == threshold, nil
	case GreaterOrEqual:
		return value >= threshold, nil
	case GreaterThan:
		return value > threshold, nil
	default:
		return false, ErrUnknownComparisonOp
	}
}

// VehicleRestriction is one (parameter, operator, threshold) clause
// attached to an edge: an edge is passable by a vehicle only if its
// parameter value satisfies the clause (e.g. height < 4.1 meters for a
// low bridge), per spec.md §4.5.
type VehicleRestriction struct {
	Parameter VehicleParameter
	Op        ComparisonOp
	Threshold float64
}

// VehicleRestrictionFilter admits an edge iff every restriction attached
// to it is satisfied by the query-provided vehicle parameters, per
// spec.md §4.5. An edge with no restrictions is always admitted.
type VehicleRestrictionFilter struct {
	restrictions map[roadnet.EdgeId][]VehicleRestriction
	vehicle      map[VehicleParameter]float64
}

// NewVehicleRestrictionFilter returns a VehicleRestrictionFilter for the
// given restriction table and the query's own vehicle parameters. A
// parameter absent from vehicle is treated as zero.
func NewVehicleRestrictionFilter(restrictions map[roadnet.EdgeId][]VehicleRestriction, vehicle map[VehicleParameter]float64) *VehicleRestrictionFilter {
	return &VehicleRestrictionFilter{restrictions: restrictions, vehicle: vehicle}
}

// ValidFrontier implements Model.
func (f *VehicleRestrictionFilter) ValidFrontier(edge roadnet.EdgeId, _ state.Vector, _ *state.Model) (bool, error) {
	for _, r := range f.restrictions[edge] {
		ok, err := r.Op.evaluate(f.vehicle[r.Parameter], r.Threshold)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
