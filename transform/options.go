package transform

import (
	"context"
	"fmt"
)

// DefaultMaxCombinations bounds the combination searches of Projection,
// Dominates and Equivalent when the caller sets no explicit budget.
const DefaultMaxCombinations = 1 << 14

// Option tunes the transforms via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation at call entry.
type Option func(*options)

type options struct {
	ctx context.Context
	max int
	err error
}

func defaultOptions() options {
	return options{ctx: context.Background(), max: DefaultMaxCombinations}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxCombinations caps the number of inspected combinations.
//
//	n > 0: limit to n combinations
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCombinations(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCombinations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.max = n
	}
}
