package metapath

import "errors"

var (
	// ErrNilMetagraph is returned when a nil metagraph pointer is passed.
	ErrNilMetagraph = errors.New("metapath: metagraph is nil")

	// ErrNilMetapath is returned when a predicate receives a metapath with
	// no edges.
	ErrNilMetapath = errors.New("metapath: metapath has no edges")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("metapath: invalid option supplied")

	// ErrCandidateBudget is reported by an Enumerator whose combination
	// budget ran out before the search space was exhausted; results already
	// produced remain valid.
	ErrCandidateBudget = errors.New("metapath: candidate budget exhausted")
)
