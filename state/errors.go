package state

import (
	"errors"
	"fmt"
)

// Sentinel errors for the state package. Callers branch with errors.Is;
// UnexpectedFeatureType additionally carries the conflicting Kinds for
// diagnostics via errors.As on *FeatureTypeError.
var (
	// ErrUnknownStateVariableName indicates a lookup or an overlay referenced
	// a name not present in the assembled StateModel.
	ErrUnknownStateVariableName = errors.New("state: unknown state variable name")

	// ErrNonAccumulatorAdd indicates Add was called on a variable whose
	// config has Accumulate == false.
	ErrNonAccumulatorAdd = errors.New("state: add on non-accumulator variable")

	// ErrIndexOutOfBounds indicates a raw index into a StateVector fell
	// outside [0, len(vector)).
	ErrIndexOutOfBounds = errors.New("state: index out of bounds")
)

// FeatureTypeError reports that a variable name was declared by two models
// with disagreeing semantic Kinds — spec.md §4.1's "duplicates must agree
// on semantic type" rule — or that a typed getter/setter asked for a Kind
// other than the variable's declared one.
type FeatureTypeError struct {
	Name     string
	Expected Kind
	Found    Kind
}

func (e *FeatureTypeError) Error() string {
	return fmt.Sprintf("state: unexpected feature type for %q: expected %s, found %s", e.Name, e.Expected, e.Found)
}

// Is lets errors.Is(err, ErrUnexpectedFeatureType) match any *FeatureTypeError,
// regardless of the specific Name/Expected/Found it carries.
func (e *FeatureTypeError) Is(target error) bool {
	return target == ErrUnexpectedFeatureType
}

// ErrUnexpectedFeatureType is the sentinel FeatureTypeError.Is matches
// against; use errors.As to recover the offending Name/Expected/Found.
var ErrUnexpectedFeatureType = errors.New("state: unexpected feature type")
