package cmdbus

// Kind is the tag identifying a command variant. Applications define their
// kinds as a closed set of constants and attach exactly one handler per kind.
type Kind string

// String returns the kind as a plain string.
func (k Kind) String() string {
	return string(k)
}

// DefaultCorrelationID is the sentinel attached to a command when Execute is
// called without an explicit correlation id.
const DefaultCorrelationID = "-"

// Command is an inert data value naming an intended operation plus its
// parameters. Commands are never executed by themselves; the bus resolves
// them to a registered handler.
//
// The correlation id is mutable dispatch-time metadata, not part of the
// command's identity: the bus sets it on every Execute call and both the
// handler and every middleware observe the same value.
type Command interface {
	// Kind returns the command's type discriminator.
	Kind() Kind

	// CorrelationID returns the correlation id attached at dispatch time,
	// or DefaultCorrelationID when none was attached.
	CorrelationID() string

	// SetCorrelationID attaches a correlation id to the command.
	// Called by the bus; applications normally never call this directly.
	SetCorrelationID(id string)
}

// Base implements the correlation id plumbing of Command. Embed it in
// concrete command structs and implement Kind on the outer type:
//
//	type CreateUser struct {
//		cmdbus.Base
//		Username string
//		Email    string
//	}
//
//	func (CreateUser) Kind() cmdbus.Kind { return KindCreateUser }
//
// Commands embedding Base must be passed to the bus by pointer so that
// SetCorrelationID is visible to the handler and middlewares.
type Base struct {
	correlationID string
}

// CorrelationID returns the attached correlation id, or DefaultCorrelationID
// when none has been set.
func (b *Base) CorrelationID() string {
	if b.correlationID == "" {
		return DefaultCorrelationID
	}
	return b.correlationID
}

// SetCorrelationID attaches a correlation id to the command.
func (b *Base) SetCorrelationID(id string) {
	b.correlationID = id
}
