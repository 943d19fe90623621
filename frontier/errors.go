package frontier

import "errors"

// ErrUnknownComparisonOp indicates a VehicleRestriction carried a
// ComparisonOp this package does not recognize.
var ErrUnknownComparisonOp = errors.New("frontier: unknown comparison operator")
