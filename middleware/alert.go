package middleware

import (
	"context"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/alert"
	"github.com/rise-and-shine/cmdbus/logger"
	"github.com/rise-and-shine/cmdbus/meta"
)

const alertTimeout = 3 * time.Second

// NewAlertMW creates a middleware that notifies the alert provider about
// internal errors. The notification is sent on a background goroutine with
// its own timeout so dispatch latency is unaffected; the original failure is
// re-surfaced unchanged either way.
func NewAlertMW(log logger.Logger, provider alert.Provider) cmdbus.Middleware {
	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (any, error) {
			result, err := next(ctx, cmd)
			if err == nil {
				return result, nil
			}

			e := errx.AsErrorX(err)
			if e.Type() != errx.T_Internal {
				return result, err
			}

			operation := "command: " + cmd.Kind().String()
			details := make(map[string]string)
			for k, v := range meta.ExtractMetaFromContext(ctx) {
				details[string(k)] = v
			}

			newCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)

			go func() {
				defer cancel() // ensure newCtx is cancelled after sending alert

				sendErr := provider.SendError(newCtx, e.Code(), err.Error(), operation, details)
				if sendErr != nil {
					log.Named("cmdbus.alerting").
						With("alert_send_error", sendErr).
						Warn("failed to send error alert")
				}
			}()

			return result, err
		}
	}
}
