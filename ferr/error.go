// Package ferr defines the error taxonomy used by every layout, validation,
// and emplacement operation in flatgo.
//
// Every failure in the flat-type core is total: it names the violated
// invariant (an ErrorKind from a closed set) and a byte offset relative to
// the start of the value that was being validated or constructed. A
// containing type offsets a field's error by the field's own position
// before propagating it, so a top-level Error always carries an absolute
// offset from the root value.
package ferr

import "fmt"

// ErrorKind is the closed set of reasons a flat-type operation can fail.
type ErrorKind uint8

const (
	// InsufficientSize means the byte slice is shorter than the type requires.
	InsufficientSize ErrorKind = iota + 1
	// BadAlign means the slice's starting address isn't aligned for the type.
	BadAlign
	// InvalidEnumTag means a tagged union's tag is outside [0, variant_count).
	InvalidEnumTag
	// InvalidData means a semantic invariant was violated (bad UTF-8, len > cap, …).
	InvalidData
	// Other is reserved for failures that don't fit the other kinds.
	Other
)

// String renders the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case InsufficientSize:
		return "InsufficientSize"
	case BadAlign:
		return "BadAlign"
	case InvalidEnumTag:
		return "InvalidEnumTag"
	case InvalidData:
		return "InvalidData"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// Error is the error value returned by every validate/emplace operation.
//
// Pos is relative to the start of the value being checked at the point the
// Error was created. A containing validator must call Offset before
// returning an inner error, so that by the time an Error reaches the
// caller of a top-level Validate/Emplace, Pos is absolute.
type Error struct {
	Kind ErrorKind
	Pos  int
}

// New creates an Error of the given kind at position pos.
func New(kind ErrorKind, pos int) Error {
	return Error{Kind: kind, Pos: pos}
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("flat: %s at byte offset %d", e.Kind, e.Pos)
}

// Offset returns a copy of e with Pos advanced by delta. It is called by a
// containing validator/emplacer once for every field it dispatches into, so
// that an error bubbling up through several nested containers accumulates
// the correct absolute offset.
func (e Error) Offset(delta int) Error {
	e.Pos += delta
	return e
}

// Is reports whether target is an Error with the same Kind, so that
// errors.Is(err, ferr.ErrBadAlign) works regardless of Pos.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// Sentinel errors for use with errors.Is when the caller only cares about
// the kind of failure, not its offset.
var (
	ErrInsufficientSize = Error{Kind: InsufficientSize}
	ErrBadAlign         = Error{Kind: BadAlign}
	ErrInvalidEnumTag   = Error{Kind: InvalidEnumTag}
	ErrInvalidData      = Error{Kind: InvalidData}
	ErrOther            = Error{Kind: Other}
)
