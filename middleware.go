package cmdbus

import "context"

// Handler executes the business logic for one command kind. It receives
// exactly the Command value passed to Execute, carrying the correlation id.
type Handler func(ctx context.Context, cmd Command) (any, error)

// Middleware wraps a Handler with cross-cutting behavior. It receives the
// next stage of the pipeline (another middleware or the handler itself) and
// returns the wrapped stage.
//
// Middlewares must not retain commands across calls; each invocation is
// independent. Whatever a middleware embeds at construction time (log sinks,
// metric counters) lives for the bus's lifetime and must tolerate concurrent
// use.
type Middleware func(next Handler) Handler

// chain folds middlewares around h right-to-left, so the first middleware in
// the slice becomes the outermost layer: it observes entry before and exit
// after everything beneath it.
func chain(h Handler, middlewares []Middleware) Handler {
	wrapped := h
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}
	return wrapped
}
