package mapmatch

// Point is one observed sample along a GPS trace: a WGS84 coordinate
// and, optionally, the time it was recorded. TimestampUnixSeconds is
// zero when unknown; SimpleMatcher never reads it (it does no
// speed-based matching), but it is carried through for matchers added
// later.
type Point struct {
	X                    float64 // longitude
	Y                    float64 // latitude
	TimestampUnixSeconds int64
}

// Trace is an ordered sequence of observed points, earliest first.
type Trace struct {
	Points []Point
}

// Len returns the number of points in the trace.
func (t Trace) Len() int { return len(t.Points) }

// Empty reports whether the trace has no points.
func (t Trace) Empty() bool { return len(t.Points) == 0 }
