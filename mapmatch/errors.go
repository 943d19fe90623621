package mapmatch

import (
	"errors"
	"fmt"
)

// ErrEmptyTrace is returned by Match when the input trace has zero
// points; there is nothing to match.
var ErrEmptyTrace = errors.New("mapmatch: trace has no points")

// ErrEmptyGraph is returned when the target graph has no edges, so no
// point can ever be matched to one.
var ErrEmptyGraph = errors.New("mapmatch: graph has no edges to match against")

// ErrEmptyAlignmentInput is returned by warpDistance when either
// profile it is asked to align has no samples.
var ErrEmptyAlignmentInput = errors.New("mapmatch: alignment profile has no samples")

// PointMatchError reports that a specific trace point could not be
// matched to any edge.
type PointMatchError struct {
	Index   int
	Message string
}

func (e *PointMatchError) Error() string {
	return fmt.Sprintf("mapmatch: point %d: %s", e.Index, e.Message)
}

// ErrPointMatchFailed is the sentinel PointMatchError.Is matches against.
var ErrPointMatchFailed = errors.New("mapmatch: point match failed")

// Is lets errors.Is(err, ErrPointMatchFailed) match any *PointMatchError.
func (e *PointMatchError) Is(target error) bool { return target == ErrPointMatchFailed }
