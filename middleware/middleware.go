// Package middleware provides cross-cutting middlewares for the command bus.
//
// Each constructor returns a cmdbus.Middleware. Order of registration on the
// bus is significant: the first-registered middleware is the outermost layer
// and observes the raw success or failure of everything beneath it.
//
// A typical chain, outermost first:
//
//	bus.Use(middleware.NewRecoveryMW(log))
//	bus.Use(middleware.NewTracingMW())
//	bus.Use(middleware.NewTimeoutMW(5 * time.Second))
//	bus.Use(middleware.NewLoggerMW(log))
//	bus.Use(middleware.NewMetricsMW(sink))
//	bus.Use(middleware.NewAlertMW(log, alertProvider))
//
// All middlewares are transparent to handler failures: they observe but
// always re-surface the original error unchanged. Only the timeout
// middleware originates a new failure kind, when its own deadline is
// exceeded.
package middleware
