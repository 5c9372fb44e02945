// Package errors provides the domain errors shared by the card validation modules.
// Validation outcomes are never errors; these only describe malformed requests and
// lookups that cannot be satisfied.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource (e.g. a card network) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the request itself is malformed and cannot be evaluated.
	ErrInvalidInput = errors.New("invalid input")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
