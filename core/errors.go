package core

import "errors"

// Sentinel errors for metagraph construction and input validation.
// All are package-prefixed and matched via errors.Is; callers get the
// offending value appended by fmt.Errorf("%w: ...") wrapping.
var (
	// ErrInvalidGeneratingSet indicates an empty generating set, or for
	// conditional metagraphs a partition whose halves overlap or are empty.
	ErrInvalidGeneratingSet = errors.New("core: invalid generating set")

	// ErrInvalidEdge indicates an edge with an empty invertex or outvertex,
	// overlapping invertex/outvertex, or elements outside the generating set.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrInvalidInput indicates an empty source or target set, or one that
	// references elements outside the generating set.
	ErrInvalidInput = errors.New("core: invalid source or target")

	// ErrNilEdge indicates a nil *Edge was passed where a value is required.
	ErrNilEdge = errors.New("core: edge is nil")
)
