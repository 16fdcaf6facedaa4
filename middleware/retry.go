package middleware

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdbus"
)

// NewRetryMW creates a middleware that re-executes the inner stage when it
// fails with one of the given errx codes. Failures with any other code are
// re-surfaced immediately and unchanged; after the attempts are exhausted
// the last failure is returned as-is.
//
// Because the whole inner stage is re-run, handlers dispatched through this
// middleware should be idempotent for the retryable codes.
func NewRetryMW(attempts uint, delay time.Duration, retryableCodes ...string) cmdbus.Middleware {
	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (any, error) {
			var result any

			err := retry.Do(
				func() error {
					var innerErr error
					result, innerErr = next(ctx, cmd)
					return innerErr
				},
				retry.Context(ctx),
				retry.Attempts(attempts),
				retry.Delay(delay),
				retry.LastErrorOnly(true),
				retry.RetryIf(func(err error) bool {
					return errx.IsCodeIn(err, retryableCodes...)
				}),
			)

			return result, err
		}
	}
}
