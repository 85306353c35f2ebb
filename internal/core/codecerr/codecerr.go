// Package codecerr holds the error types shared by the text codecs
// FormatError is returned for malformed input, TypeError when an injected
// strategy hands back a value the codec cannot render
package codecerr

import (
	"errors"
	"fmt"
)

// FormatError reports malformed codec input
// Input is the offending fragment, not necessarily the whole string
type FormatError struct {
	Op     string
	Input  string
	Reason string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: invalid format %q", e.Op, e.Input)
	}
	return fmt.Sprintf("%s: %s: %q", e.Op, e.Reason, e.Input)
}

// TypeError reports a strategy result of an unsupported type
type TypeError struct {
	Directive string
}

// Error implements the error interface
func (e *TypeError) Error() string {
	return fmt.Sprintf("numberpattern: unsupported value returned for %q", e.Directive)
}

// Format builds a *FormatError
func Format(op, input, reason string) error {
	return &FormatError{Op: op, Input: input, Reason: reason}
}

// IsFormat reports whether err wraps a *FormatError
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsType reports whether err wraps a *TypeError
func IsType(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

// AsFormat returns the wrapped *FormatError if any
func AsFormat(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
