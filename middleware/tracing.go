package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/cmdbus"
)

const tracerName = "cmdbus"

// NewTracingMW creates a middleware that opens an OpenTelemetry span per
// command execution, named after the command kind. Failures are recorded on
// the span and re-surfaced unchanged.
func NewTracingMW() cmdbus.Middleware {
	tracer := otel.Tracer(tracerName)

	return func(next cmdbus.Handler) cmdbus.Handler {
		return func(ctx context.Context, cmd cmdbus.Command) (any, error) {
			ctx, span := tracer.Start(ctx, "command."+cmd.Kind().String(),
				trace.WithSpanKind(trace.SpanKindInternal))
			defer span.End()

			result, err := next(ctx, cmd)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return result, err
		}
	}
}
