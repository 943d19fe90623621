package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/routeforge/corridor/corridorio"
	"github.com/routeforge/corridor/search"
)

// Runner executes a batch of Jobs with bounded concurrency, per spec.md
// §5's single-process worker pool: Concurrency workers pull from the
// batch, each running one query end-to-end with no parallelism inside
// the search itself.
type Runner struct {
	Factory     InstanceFactory
	Concurrency int
	Term        search.TerminationModel // termination applied to every query in the batch
	Logger      *zap.Logger
}

// NewRunner returns a Runner with the given factory and concurrency. A
// nil logger falls back to zap.NewNop().
func NewRunner(factory InstanceFactory, concurrency int, term search.TerminationModel, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{Factory: factory, Concurrency: concurrency, Term: term, Logger: logger}
}

// Run executes every Job in jobs, bounding in-flight queries to
// r.Concurrency via errgroup.SetLimit. A failing Job never cancels or
// affects any other Job; cancelling ctx stops workers from picking up
// new Jobs but any query already running finishes its current edge
// traversal before returning, per spec.md §5's soft-timeout rule (the
// termination model, not ctx, bounds an in-flight search).
func (r *Runner) Run(ctx context.Context, jobs []Job) []JobResult {
	results := make([]JobResult, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		if job.RequestID == "" {
			job.RequestID = uuid.NewString()
		}
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				results[i] = JobResult{ID: job.ID, Err: gCtx.Err()}
				return nil
			default:
			}
			resp, err := r.runOne(job)
			results[i] = JobResult{ID: job.ID, Response: resp, Err: err}
			if err != nil {
				r.Logger.Warn("query failed",
					zap.Int("job_id", job.ID),
					zap.String("request_id", job.RequestID),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// runOne builds the per-query Instance, runs the search, backtracks the
// route, and assembles the Response. It never returns a partially built
// Response: any failure at any stage aborts with just an error.
func (r *Runner) runOne(job Job) (corridorio.Response, error) {
	total := time.Now()

	si, err := r.Factory(job.Query)
	if err != nil {
		return corridorio.Response{}, err
	}

	target := job.Query.DestinationVertex

	searchStart := time.Now()
	tree, _, err := search.Run(si, job.Query.OriginVertex, target, search.Forward, si.StateModel.InitialState(), r.Term)
	searchRuntime := time.Since(searchStart)
	if err != nil {
		return corridorio.Response{}, err
	}

	var route search.Route
	routeStart := time.Now()
	if target != nil {
		route, err = search.Backtrack(tree, search.Label{Vertex: *target})
		if err != nil {
			return corridorio.Response{}, err
		}
	}
	routeRuntime := time.Since(routeStart)

	resp, err := corridorio.NewResponse(job.Query, si.StateModel, route, tree.Len(), tree.Iterations())
	if err != nil {
		return corridorio.Response{}, err
	}
	resp.SearchExecutedTime = total
	resp.SearchRuntime = searchRuntime
	resp.RouteRuntime = routeRuntime
	resp.TotalRuntime = time.Since(total)
	return resp, nil
}
