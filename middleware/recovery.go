package middleware

import (
	"context"
	"fmt"
	"runtime"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/logger"
)

// NewRecoveryMW creates a middleware that recovers from panics in the
// pipeline and converts them to structured internal errors with stack
// traces. Register it first so it also covers panics in inner middlewares.
func NewRecoveryMW(log logger.Logger) cmdbus.Middleware {
	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (result any, err error) {
			log := log.Named("cmdbus.recovery").WithContext(ctx)

			defer func() {
				if r := recover(); r != nil {
					stackTrace := make([]byte, 4096) // 4KB
					stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

					log.
						With("stack_trace", string(stackTrace)).
						With("panic_message", fmt.Sprintf("%v", r)).
						Error("recovered from panic")

					err = errx.New("panic recovered at command pipeline", errx.WithDetails(errx.D{
						"stack_trace":   string(stackTrace),
						"panic_message": fmt.Sprintf("%v", r),
					}))
				}
			}()

			return next(ctx, cmd)
		}
	}
}
