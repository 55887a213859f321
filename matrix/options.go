// SPDX-License-Identifier: MIT

package matrix

import "context"

// Option tunes closure computation via functional arguments.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext lets callers cancel the closure fixpoint; the loop checks the
// context once per iteration and returns ctx.Err() on cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
