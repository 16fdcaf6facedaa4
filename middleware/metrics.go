package middleware

import (
	"context"
	"time"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/metrics"
)

// NewMetricsMW creates a middleware that reports per-command-kind
// observations to the given sink.
//
// The request counter is incremented on entry, unconditionally. The error
// counter is incremented only when the inner call fails. The duration is
// recorded exactly once per execution, regardless of outcome.
func NewMetricsMW(sink metrics.Sink) cmdbus.Middleware {
	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (result any, err error) {
			kind := cmd.Kind().String()

			sink.IncRequests(kind)

			start := time.Now()
			defer func() {
				sink.ObserveDuration(kind, time.Since(start))
				if err != nil {
					sink.IncErrors(kind)
				}
			}()

			return next(ctx, cmd)
		}
	}
}
