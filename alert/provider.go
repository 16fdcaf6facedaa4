// Package alert defines the capability for surfacing internal errors to an
// external monitoring system.
package alert

import (
	"context"

	"github.com/rise-and-shine/cmdbus/logger"
)

// Provider defines the interface for sending error alerts.
// Implementations of this interface can send alerts to various monitoring systems.
type Provider interface {
	// SendError sends an error alert with the given details.
	// errCode is a specific code identifying the error, msg a human-readable
	// message, operation the operation during which the error occurred and
	// details additional key-value context.
	SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error
}

// NewLogProvider returns a Provider that writes alerts to the given logger.
// It stands in when no external alerting backend is wired.
func NewLogProvider(log logger.Logger) Provider {
	return &logProvider{log: log.Named("alert")}
}

type logProvider struct {
	log logger.Logger
}

func (p *logProvider) SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error {
	p.log.
		WithContext(ctx).
		With(
			"error_code", errCode,
			"operation", operation,
			"details", details,
		).
		Error(msg)
	return nil
}
