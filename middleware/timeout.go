package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdbus"
)

// NewTimeoutMW creates a middleware that bounds the wall-clock time a
// handler may run. When the duration elapses before the inner stage returns,
// Execute fails with cmdbus.CodeCommandTimeout.
//
// The inner stage runs on a separate goroutine so the deadline can be
// enforced even when the handler never checks its context. CAVEAT: the
// abandoned goroutine is NOT stopped; it keeps running in the background and
// its eventual result is discarded, so side effects of a timed-out operation
// (e.g. a partially completed write) may still land after the caller has
// received the timeout failure. The context passed to the inner stage
// carries the deadline, so handlers that do honor cancellation stop early.
func NewTimeoutMW(timeout time.Duration) cmdbus.Middleware {
	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (any, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			type outcome struct {
				result any
				err    error
			}

			// Buffered so the abandoned goroutine can always complete its send.
			done := make(chan outcome, 1)

			go func() {
				result, err := next(ctx, cmd)
				done <- outcome{result: result, err: err}
			}()

			select {
			case out := <-done:
				return out.result, out.err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return nil, errx.New(
						"command execution timed out",
						errx.WithCode(cmdbus.CodeCommandTimeout),
						errx.WithDetails(errx.D{
							"command_kind": cmd.Kind().String(),
							"timeout":      timeout.String(),
						}),
					)
				}
				return nil, errx.Wrap(ctx.Err())
			}
		}
	}
}
