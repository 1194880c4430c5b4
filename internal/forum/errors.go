package forum

import "fmt"

// Kind classifies an engine failure so the transport layer can map it to a
// status code without inspecting message text.
type Kind int

const (
	// KindValidation covers malformed or out-of-bounds input. Never
	// partially applied.
	KindValidation Kind = iota + 1
	// KindNotFound covers references to ids that do not exist.
	KindNotFound
	// KindForbidden covers operations the caller is not allowed to perform:
	// locked-topic replies, self-reports, edits by non-authors.
	KindForbidden
	// KindConflict covers write collisions; callers may retry.
	KindConflict
)

// Error is a typed, recoverable engine failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func errForbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// requireUser rejects callers with no authenticated identity. The transport
// layer normally catches this first; the engine still refuses to mutate
// state on behalf of nobody.
func requireUser(actor Identity) error {
	if actor.ID == "" {
		return errForbidden("authentication required")
	}
	return nil
}
