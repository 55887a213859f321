package cond

import (
	"context"
	"fmt"

	"github.com/katalvlaran/metagraph/logic"
)

// Option configures the quantified connectivity and redundancy predicates.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the operation starts.
type Option func(*options)

type options struct {
	ctx  context.Context
	eval logic.Evaluator
	max  int
	err  error
}

func defaultOptions() options {
	return options{
		ctx:  context.Background(),
		eval: logic.Eval,
		max:  0,
	}
}

// WithContext sets a custom context for cancellation; it is passed through
// to the underlying closure and enumeration work.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEvaluator replaces the default expression evaluator (logic.Eval).
// A nil evaluator is an ErrOptionViolation.
func WithEvaluator(eval logic.Evaluator) Option {
	return func(o *options) {
		if eval == nil {
			o.err = fmt.Errorf("%w: nil evaluator", ErrOptionViolation)
			return
		}
		o.eval = eval
	}
}

// WithMaxCandidates caps the combinations the per-interpretation metapath
// enumeration inspects. Zero means the package metapath default applies;
// negative values are an ErrOptionViolation.
func WithMaxCandidates(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCandidates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.max = n
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
