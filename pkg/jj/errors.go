package jj

import (
	"fmt"
)

// ErrorType categorizes accessor failures.
type ErrorType string

const (
	// ErrorTypeWrongType is returned when a value is absent or cannot be
	// converted to the requested type.
	ErrorTypeWrongType ErrorType = "WrongType"
	// ErrorTypeNotFound is returned by lookups that require existence.
	ErrorTypeNotFound ErrorType = "NotFound"
)

// Sentinels for use with errors.Is. They match any *Error of the same type.
var (
	ErrWrongType = &Error{Type: ErrorTypeWrongType}
	ErrNotFound  = &Error{Type: ErrorTypeNotFound}
)

// Error describes a failed strict access.
//
// Value holds the offending raw value when HasValue is true. Absent values
// are reported with HasValue false and print as nil.
type Error struct {
	Type     ErrorType
	Value    any
	HasValue bool
	Path     string
	Target   string
}

func wrongType(v Value, target string) *Error {
	return &Error{
		Type:     ErrorTypeWrongType,
		Value:    v.raw,
		HasValue: v.present,
		Path:     v.path,
		Target:   target,
	}
}

func notFound(path, target string) *Error {
	return &Error{
		Type:   ErrorTypeNotFound,
		Path:   path,
		Target: target,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Type {
	case ErrorTypeNotFound:
		return fmt.Sprintf("jj.NotFound: no value at path '%s'", e.Path)
	default:
		shown := "nil"
		if e.HasValue {
			shown = render(e.Value, true, "", defaultSpacer)
		}
		return fmt.Sprintf("jj.%s: can't convert %s at path '%s' to type '%s'", e.Type, shown, e.Path, e.Target)
	}
}

// Is reports whether target is an *Error of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}
