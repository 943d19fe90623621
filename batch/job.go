package batch

import "github.com/routeforge/corridor/corridorio"

// Job is one query submitted to a Runner, tagged with a caller-assigned
// ID so results can be matched back to requests after concurrent
// execution reorders completion. RequestID is an opaque log-correlation
// token; Runner assigns one via uuid.NewString if the caller leaves it
// empty.
type Job struct {
	ID        int
	RequestID string
	Query     corridorio.Query
}

// JobResult is the outcome of running one Job. Err is set when the
// query failed (bad input, no path, internal error); Response is the
// zero value in that case. A failure in one Job never affects any
// other Job in the same batch, per spec.md §5's independent-queries
// guarantee.
type JobResult struct {
	ID       int
	Response corridorio.Response
	Err      error
}
