package json

import (
	"fmt"
	"runtime"
)

// ErrKind identifies the category of an Error raised by this package.
type ErrKind int

const (
	// MalformedJSON marks a tokenization, structural, or UTF-8 failure
	// while parsing JSON input.
	MalformedJSON ErrKind = iota
	// LimitViolation marks a configured parser Limits field being exceeded.
	LimitViolation
	// TypeMismatch marks a conversion requested between incompatible JSON
	// value kinds.
	TypeMismatch
	// IndexOutOfRange marks a negative array index, or a read of an
	// element past the end of an array.
	IndexOutOfRange
	// UnknownMember marks an object lookup by a key that does not exist.
	UnknownMember
	// FinalMember marks an attempt to overwrite a member previously
	// inserted with SetFinalValue.
	FinalMember
	// Locked marks a mutation attempted on a container after Lock.
	Locked
)

func (k ErrKind) String() string {
	switch k {
	case MalformedJSON:
		return "MalformedJSON"
	case LimitViolation:
		return "LimitViolation"
	case TypeMismatch:
		return "TypeMismatch"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case UnknownMember:
		return "UnknownMember"
	case FinalMember:
		return "FinalMember"
	case Locked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// Error is the single error type raised across this package. It carries
// the raise site (Func, Line) alongside the Kind so that callers can
// pattern-match on Kind without losing debugging context.
type Error struct {
	Kind ErrKind
	Func string
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (at %s:%d)", e.Kind, e.Msg, e.Func, e.Line)
}

// Is reports a match on Kind alone, so errors.Is(err,
// &Error{Kind: MalformedJSON}) holds for any *Error of that Kind,
// whatever its Func, Line, or Msg.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func raise(kind ErrKind, format string, args ...interface{}) *Error {
	pc, _, line, ok := runtime.Caller(2)
	funcName := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			funcName = fn.Name()
		}
	}
	return &Error{
		Kind: kind,
		Func: funcName,
		Line: line,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func errMalformed(format string, args ...interface{}) *Error {
	return raise(MalformedJSON, format, args...)
}

func errLimit(format string, args ...interface{}) *Error {
	return raise(LimitViolation, format, args...)
}

func errType(format string, args ...interface{}) *Error {
	return raise(TypeMismatch, format, args...)
}

func errIndex(format string, args ...interface{}) *Error {
	return raise(IndexOutOfRange, format, args...)
}

func errUnknown(format string, args ...interface{}) *Error {
	return raise(UnknownMember, format, args...)
}

func errFinal(format string, args ...interface{}) *Error {
	return raise(FinalMember, format, args...)
}

func errLocked(format string, args ...interface{}) *Error {
	return raise(Locked, format, args...)
}
