package cmdbus

import "github.com/code19m/errx"

// Error codes originated by the bus and its middlewares.
const (
	// CodeUnregisteredCommand is returned when no handler is registered for
	// a command's kind. This is a wiring error, not a transient fault, and
	// must not be retried.
	CodeUnregisteredCommand = "UNREGISTERED_COMMAND"

	// CodeDuplicateHandler is returned when a second handler is registered
	// for the same command kind. Fatal to startup.
	CodeDuplicateHandler = "DUPLICATE_HANDLER"

	// CodeCommandTimeout is returned by the timeout middleware when a
	// handler exceeds its deadline. The underlying operation is NOT
	// guaranteed to have been aborted.
	CodeCommandTimeout = "COMMAND_TIMEOUT"

	// CodeRegistryFrozen is returned when Register or Use is called after
	// the bus has started serving commands.
	CodeRegistryFrozen = "REGISTRY_FROZEN"
)

// IsUnregisteredCommand reports whether err carries CodeUnregisteredCommand.
func IsUnregisteredCommand(err error) bool {
	return errx.IsCodeIn(err, CodeUnregisteredCommand)
}

// IsDuplicateHandler reports whether err carries CodeDuplicateHandler.
func IsDuplicateHandler(err error) bool {
	return errx.IsCodeIn(err, CodeDuplicateHandler)
}

// IsTimeout reports whether err carries CodeCommandTimeout.
func IsTimeout(err error) bool {
	return errx.IsCodeIn(err, CodeCommandTimeout)
}
