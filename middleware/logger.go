package middleware

import (
	"context"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/logger"
)

// NewLoggerMW creates a middleware that logs command execution.
//
// On entry it emits a start observation; on exit it logs the outcome with
// the execution duration. The command kind and correlation id reach the log
// entries through the context metadata injected by the bus. The logging
// level adapts to the error type: ERROR for internal errors, WARN for other
// failures, INFO for success. The original failure is always re-surfaced
// unchanged.
func NewLoggerMW(log logger.Logger) cmdbus.Middleware {
	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (any, error) {
			log := log.Named("cmdbus.logger").WithContext(ctx)

			log.Debug("command started")

			start := time.Now()

			result, err := next(ctx, cmd)

			log = log.With("duration", time.Since(start))

			if err != nil {
				e := errx.AsErrorX(err)
				log = log.With("error", map[string]any{
					"code":    e.Code(),
					"message": e.Error(),
					"type":    e.Type().String(),
					"trace":   e.Trace(),
					"details": e.Details(),
				})

				if e.Type() == errx.T_Internal {
					log.Error("command failed")
				} else {
					log.Warn("command failed")
				}
				return result, err
			}

			log.Info("command completed")
			return result, err
		}
	}
}
