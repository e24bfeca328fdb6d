// Package errs defines the error taxonomy shared by the estimation engine.
// All failures are fatal to the call that raised them; nothing is retried.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure.
type Kind int

const (
	// KindValidation marks malformed or missing vessel/voyage fields.
	KindValidation Kind = iota
	// KindLookup marks a reference-table miss with no safe default.
	KindLookup
	// KindConfiguration marks a missing or unusable configuration value.
	KindConfiguration
	// KindComputation marks degenerate numeric input, e.g. zero-speed legs.
	KindComputation
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindLookup:
		return "lookup"
	case KindConfiguration:
		return "configuration"
	case KindComputation:
		return "computation"
	}
	return "unknown"
}

// Error carries a failure kind alongside a message naming the offending
// field or table key.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Validationf returns a KindValidation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Lookupf returns a KindLookup error.
func Lookupf(format string, args ...any) error {
	return &Error{Kind: KindLookup, Msg: fmt.Sprintf(format, args...)}
}

// Configurationf returns a KindConfiguration error.
func Configurationf(format string, args ...any) error {
	return &Error{Kind: KindConfiguration, Msg: fmt.Sprintf(format, args...)}
}

// Computationf returns a KindComputation error.
func Computationf(format string, args ...any) error {
	return &Error{Kind: KindComputation, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err (or any error it wraps) has the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
