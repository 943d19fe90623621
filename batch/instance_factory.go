package batch

import (
	"github.com/routeforge/corridor/corridorio"
	"github.com/routeforge/corridor/search"
)

// InstanceFactory builds the per-query search.Instance for one Query's
// model-name/weights/vehicle-parameters selection. It closes over the
// process-lifetime Graph and model services (spec.md §5's "constructed
// at process start, shared by reference" stack); Runner calls it once
// per Job, on the worker goroutine that will run that Job, so the
// returned Instance and everything reachable from it is touched by
// exactly one goroutine.
type InstanceFactory func(q corridorio.Query) (*search.Instance, error)
