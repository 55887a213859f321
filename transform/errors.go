package transform

import "errors"

var (
	// ErrNilMetagraph is returned when a nil metagraph pointer is passed.
	ErrNilMetagraph = errors.New("transform: metagraph is nil")

	// ErrNoEdges is returned by edge-centric transforms (Inverse, EFM) when
	// the input has no edges to derive from.
	ErrNoEdges = errors.New("transform: metagraph has no edges")

	// ErrGeneratingSetMismatch is returned by Product when the two operands
	// are not defined over the same generating set.
	ErrGeneratingSetMismatch = errors.New("transform: generating sets differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("transform: invalid option supplied")

	// ErrCombinationBudget is returned when a combination search ran out of
	// budget before covering the space; the partial result is still returned.
	ErrCombinationBudget = errors.New("transform: combination budget exhausted")
)
