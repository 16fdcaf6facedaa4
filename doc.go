// Package cmdbus implements a command dispatch pipeline: a registry mapping
// command kinds to handlers, executed through an ordered chain of
// cross-cutting middlewares.
//
// A caller constructs a Command, the bus resolves it to the registered
// handler, wraps the handler in the middleware chain (first-registered
// middleware outermost) and invokes it. The handler's result or failure
// propagates back out through each middleware in reverse order.
//
// Handlers and middlewares are registered during startup; the registry is
// read-only once the bus begins serving. Dispatch attaches a correlation id
// to the command and mirrors it into context metadata so every stage of the
// pipeline and the logger observe the same value.
//
// The middleware subpackage ships logging, metrics, timeout, recovery,
// tracing, retry and alerting middlewares.
package cmdbus
