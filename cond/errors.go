package cond

import "errors"

var (
	// ErrNilConditional is returned when an operation receives a nil
	// conditional metagraph.
	ErrNilConditional = errors.New("cond: nil conditional metagraph")

	// ErrNoInterpretations is returned when a quantified connectivity
	// predicate receives an empty interpretation list.
	ErrNoInterpretations = errors.New("cond: no interpretations supplied")

	// ErrOptionViolation is returned when a functional option received an
	// invalid value.
	ErrOptionViolation = errors.New("cond: invalid option value")
)
