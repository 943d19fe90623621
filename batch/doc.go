// Package batch implements the multi-query execution model of spec.md
// §5: coarse-grained data parallelism over a single process. A bounded
// pool of worker goroutines consumes a batch of queries, each query
// executed end-to-end by one worker with no parallelism inside the
// search itself. The Graph and model services a Runner's
// InstanceFactory closes over are immutable and shared by reference
// across every worker; everything a single query touches (its
// *search.Instance, SearchTree, state vectors) is allocated fresh, on
// that worker, for that query alone.
package batch
