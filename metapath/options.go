package metapath

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metagraph/matrix"
)

// DefaultMaxCandidates bounds how many edge combinations an enumeration
// inspects when the caller sets no explicit budget.
const DefaultMaxCandidates = 1 << 16

// Option configures metapath enumeration via functional arguments.
// An invalid Option (e.g. a negative budget) is recorded internally and
// surfaced as ErrOptionViolation when enumeration starts.
type Option func(*Options)

// Options holds the tunable parameters of Enumerate and All.
type Options struct {
	// Ctx allows cancellation and deadlines; checked between combinations.
	Ctx context.Context

	// IncludeAll keeps non-dominant metapaths in the output.
	IncludeAll bool

	// MaxCandidates caps the number of inspected combinations.
	// A value of 0 explicitly disables the cap.
	MaxCandidates int

	// Closure reuses a precomputed closure matrix instead of building one.
	Closure *matrix.TripleMatrix

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// dominant-only output, DefaultMaxCandidates budget, fresh closure.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		IncludeAll:    false,
		MaxCandidates: DefaultMaxCandidates,
		Closure:       nil,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAllMetapaths disables the dominant-only filter, so every valid
// metapath found is produced.
func WithAllMetapaths() Option {
	return func(o *Options) {
		o.IncludeAll = true
	}
}

// WithMaxCandidates caps the number of edge combinations the search
// inspects.
//
//	n > 0: limit to n combinations
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCandidates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCandidates = n
	}
}

// WithClosure reuses a closure matrix already computed for the same
// metagraph, skipping the fixpoint.
func WithClosure(m *matrix.TripleMatrix) Option {
	return func(o *Options) {
		if m != nil {
			o.Closure = m
		}
	}
}
