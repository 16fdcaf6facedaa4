package cmdbus

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/code19m/errx"
	"github.com/samber/lo"

	"github.com/rise-and-shine/cmdbus/logger"
	"github.com/rise-and-shine/cmdbus/meta"
)

// Bus resolves commands to registered handlers and executes them through an
// ordered chain of middlewares.
//
// Handlers and middlewares are registered during startup; the registry
// freezes on the first Execute call and later registration fails with
// CodeRegistryFrozen. Concurrent Execute calls are safe: the frozen registry
// is read-only and each call builds its own pipeline invocation.
type Bus struct {
	mu          sync.Mutex
	handlers    map[Kind]Handler
	middlewares []Middleware
	frozen      atomic.Bool
	logger      logger.Logger
}

// New creates a Bus that reports through the given logger.
func New(log logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[Kind]Handler),
		logger:   log.Named("cmdbus"),
	}
}

// Register attaches the handler for a command kind. Exactly one handler may
// be registered per kind; a second registration fails with
// CodeDuplicateHandler and leaves the original handler in place.
func (b *Bus) Register(kind Kind, h Handler) error {
	if h == nil {
		return errx.New("nil handler", errx.WithDetails(errx.D{"command_kind": kind.String()}))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen.Load() {
		return errx.New(
			"handler registered after the bus started serving",
			errx.WithCode(CodeRegistryFrozen),
			errx.WithDetails(errx.D{"command_kind": kind.String()}),
		)
	}

	if _, exists := b.handlers[kind]; exists {
		return errx.New(
			"handler already registered for command kind",
			errx.WithCode(CodeDuplicateHandler),
			errx.WithDetails(errx.D{"command_kind": kind.String()}),
		)
	}

	b.handlers[kind] = h
	return nil
}

// Use appends a middleware to the chain. Order is significant: middlewares
// added earlier become outer layers, observing the call before and after all
// later-added ones and the handler itself.
func (b *Bus) Use(mw Middleware) error {
	if mw == nil {
		return errx.New("nil middleware")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen.Load() {
		return errx.New(
			"middleware added after the bus started serving",
			errx.WithCode(CodeRegistryFrozen),
		)
	}

	b.middlewares = append(b.middlewares, mw)
	return nil
}

// Execute resolves cmd to its handler and runs it through the middleware
// chain.
//
// The command's correlation id is set to correlationID, or to
// DefaultCorrelationID when empty, before any middleware observes the
// command; the same value is mirrored into ctx metadata for log enrichment.
// Handler results and failures propagate back unchanged: the bus never
// swallows or transforms pipeline errors.
func (b *Bus) Execute(ctx context.Context, cmd Command, correlationID string) (any, error) {
	b.freeze()

	h, ok := b.handlers[cmd.Kind()]
	if !ok {
		err := errx.New(
			"no handler registered for command kind",
			errx.WithCode(CodeUnregisteredCommand),
			errx.WithDetails(errx.D{
				"command_kind": cmd.Kind().String(),
				"registered":   fmt.Sprintf("%v", lo.Keys(b.handlers)),
			}),
		)
		b.logger.WithContext(ctx).Errorx(err)
		return nil, err
	}

	if correlationID == "" {
		correlationID = DefaultCorrelationID
	}
	cmd.SetCorrelationID(correlationID)

	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{
		meta.CorrelationID: correlationID,
		meta.CommandKind:   cmd.Kind().String(),
	})

	b.logger.WithContext(ctx).Debug("executing command")

	return chain(h, b.middlewares)(ctx, cmd)
}

// freeze closes the registry for modification. All registrations
// happened-before the first Execute, so later reads need no lock.
func (b *Bus) freeze() {
	if b.frozen.Load() {
		return
	}
	b.mu.Lock()
	b.frozen.Store(true)
	b.mu.Unlock()
}

// ForwardTo registers a typed handler for a command kind, asserting the
// concrete command type at dispatch time. This is a standalone function
// because Go doesn't support generic methods.
func ForwardTo[C Command](b *Bus, kind Kind, h func(ctx context.Context, cmd C) (any, error)) error {
	return b.Register(kind, func(ctx context.Context, cmd Command) (any, error) {
		typed, ok := cmd.(C)
		if !ok {
			return nil, errx.New(
				"command has unexpected concrete type",
				errx.WithType(errx.T_Internal),
				errx.WithDetails(errx.D{
					"command_kind": kind.String(),
					"got_type":     fmt.Sprintf("%T", cmd),
				}),
			)
		}
		return h(ctx, typed)
	})
}
