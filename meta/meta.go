// Package meta provides functionality for managing dispatch metadata through context.
package meta

import "context"

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// CorrelationID is an opaque identifier threaded through a command's
	// execution for cross-component log correlation.
	CorrelationID ContextKey = "correlation_id"

	// CommandKind identifies the kind of the command currently being dispatched.
	CommandKind ContextKey = "command_kind"

	// TraceID represents a unique identifier for tracing requests across services.
	TraceID ContextKey = "trace_id"

	// IPAddress contains the client's IP address.
	IPAddress ContextKey = "ip_address"

	// UserAgent contains the user agent string from the request.
	UserAgent ContextKey = "user_agent"

	// ServiceName identifies the name of current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"
)

// contextKeys lists every key handled by InjectMetaToContext and
// ExtractMetaFromContext. Keep in sync with the constants above.
var contextKeys = []ContextKey{ //nolint:gochecknoglobals // static key set shared by inject/extract
	CorrelationID,
	CommandKind,
	TraceID,
	IPAddress,
	UserAgent,
	ServiceName,
	ServiceVersion,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all metadata from the provided context.
// It retrieves values for all predefined context keys and returns them in a map.
// Only non-empty string values are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range contextKeys {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// GetCorrelationID returns the correlation id stored in the context,
// or an empty string when none is present.
func GetCorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(CorrelationID).(string)
	return v
}
