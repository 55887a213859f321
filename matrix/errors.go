// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All exported operations return these
// sentinels (possibly wrapped with context via fmt.Errorf("...: %w")), and
// callers match them with errors.Is. No operation panics on user input.

package matrix

import "errors"

var (
	// ErrNilMetagraph indicates a nil *core.Metagraph was passed to a builder.
	ErrNilMetagraph = errors.New("matrix: metagraph is nil")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Indexers (At, Row, Col) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownElement indicates an element-addressed access (AtElements,
	// RowOf, ColOf) referenced an element outside the generating set.
	ErrUnknownElement = errors.New("matrix: unknown element")

	// ErrEmptyChain indicates a Triple was built without any edge.
	ErrEmptyChain = errors.New("matrix: triple edge chain is empty")

	// ErrShapeMismatch indicates two matrices with different element
	// orderings were combined.
	ErrShapeMismatch = errors.New("matrix: element orderings differ")
)
