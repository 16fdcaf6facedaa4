package metrics

import (
	"context"
	"time"

	"github.com/code19m/errx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/rise-and-shine/cmdbus"

// NewOTelSink returns a Sink backed by the globally configured OpenTelemetry
// meter provider. With no provider configured the global meter is a no-op,
// so the sink is always safe to use.
func NewOTelSink() (Sink, error) {
	meter := otel.Meter(scopeName)

	requests, err := meter.Int64Counter(
		"cmdbus.command.requests",
		metric.WithDescription("Total commands dispatched, by kind."),
	)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	errors, err := meter.Int64Counter(
		"cmdbus.command.errors",
		metric.WithDescription("Failed command executions, by kind."),
	)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	duration, err := meter.Float64Histogram(
		"cmdbus.command.duration",
		metric.WithDescription("Command execution duration, by kind."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &otelSink{
		requests: requests,
		errors:   errors,
		duration: duration,
	}, nil
}

type otelSink struct {
	requests metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

func (s *otelSink) IncRequests(kind string) {
	s.requests.Add(context.Background(), 1, metric.WithAttributes(kindAttr(kind)))
}

func (s *otelSink) IncErrors(kind string) {
	s.errors.Add(context.Background(), 1, metric.WithAttributes(kindAttr(kind)))
}

func (s *otelSink) ObserveDuration(kind string, d time.Duration) {
	s.duration.Record(context.Background(), d.Seconds(), metric.WithAttributes(kindAttr(kind)))
}

func kindAttr(kind string) attribute.KeyValue {
	return attribute.String("command_kind", kind)
}
