// Package metrics defines the minimal metrics capability consumed by the
// bus middlewares, with no-op and OpenTelemetry backed implementations.
package metrics

import "time"

// Sink receives per-command-kind observations from the metrics middleware.
// Implementations must tolerate concurrent calls.
type Sink interface {
	// IncRequests increments the request counter for a command kind.
	IncRequests(kind string)

	// IncErrors increments the error counter for a command kind.
	IncErrors(kind string)

	// ObserveDuration records one execution duration for a command kind.
	ObserveDuration(kind string, d time.Duration)
}

// NewNopSink returns a Sink that discards all observations. It stands in
// when no metrics backend is wired.
func NewNopSink() Sink {
	return nopSink{}
}

type nopSink struct{}

func (nopSink) IncRequests(string) {}

func (nopSink) IncErrors(string) {}

func (nopSink) ObserveDuration(string, time.Duration) {}
