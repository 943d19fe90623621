package search

import (
	"errors"
	"fmt"

	"github.com/routeforge/corridor/roadnet"
)

// Kind is the error taxonomy of spec.md §7: a classification tag, not a
// concrete type, so callers branch on Kind() rather than on the
// underlying error's Go type.
type Kind int

const (
	// BuildKind covers model assembly / config inconsistency, fatal to
	// query build.
	BuildKind Kind = iota
	// GraphKind covers edge/vertex id out of range or missing adjacency.
	GraphKind
	// StateKind covers unknown state variable, wrong feature type,
	// non-accumulator add.
	StateKind
	// TraversalKind covers table lookup miss or predictor failure.
	TraversalKind
	// CostKind covers unknown state index or vector bounds in the cost model.
	CostKind
	// FrontierKind covers missing restriction data.
	FrontierKind
	// NoPathKind is NoPathExistsBetweenVertices: a query-level failure,
	// not a system error.
	NoPathKind
	// InternalKind covers a broken invariant (e.g. a loop in the result);
	// a bug signal, not a user-facing failure mode.
	InternalKind
)

// String renders a Kind for error messages and logging.
func (k Kind) String() string {
	switch k {
	case BuildKind:
		return "BuildError"
	case GraphKind:
		return "GraphError"
	case StateKind:
		return "StateError"
	case TraversalKind:
		return "TraversalModelFailure"
	case CostKind:
		return "CostError"
	case FrontierKind:
		return "FrontierModelFailure"
	case NoPathKind:
		return "NoPathExistsBetweenVertices"
	case InternalKind:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// SearchError wraps an underlying cause with the Kind taxonomy of
// spec.md §7, so callers can errors.As to a *SearchError and branch on
// Kind() without string matching, and errors.Is/errors.Unwrap still
// reach the original sentinel from state/cost/traversal/access/frontier.
type SearchError struct {
	kind  Kind
	cause error
}

// NewSearchError tags cause with kind.
func NewSearchError(kind Kind, cause error) *SearchError {
	return &SearchError{kind: kind, cause: cause}
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search: %s: %v", e.kind, e.cause)
}

// Kind reports the error taxonomy tag.
func (e *SearchError) Kind() Kind { return e.kind }

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *SearchError) Unwrap() error { return e.cause }

// NoPathError is the NoPathExistsBetweenVertices query-level failure of
// spec.md §7: the frontier emptied with a target set but no route to it
// was ever admitted.
type NoPathError struct {
	Src, Dst roadnet.VertexId
	TreeSize int
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("search: no path exists from %d to %d (tree size %d)", e.Src, e.Dst, e.TreeSize)
}

// ErrNoPathExists is the sentinel NoPathError.Is matches against.
var ErrNoPathExists = errors.New("search: no path exists between vertices")

// Is lets errors.Is(err, ErrNoPathExists) match any *NoPathError.
func (e *NoPathError) Is(target error) bool { return target == ErrNoPathExists }

// ErrDuplicateEdgeInBacktrack signals InternalKind: backtracking a route
// encountered the same edge id twice, an invariant violation.
var ErrDuplicateEdgeInBacktrack = errors.New("search: duplicate edge id in backtracked route")

// ErrLoopAfterReorientation signals that a bidirectional search's
// re-oriented combined route visits the same source vertex twice,
// rejected per spec.md §4.9's loop-detection rule.
var ErrLoopAfterReorientation = errors.New("search: loop detected after reverse-route re-orientation")

// ErrLabelNotInTree indicates a backtrack or lookup referenced a Label
// absent from the SearchTree.
var ErrLabelNotInTree = errors.New("search: label not present in tree")
