// Package validation holds the predicates run against API responses. Each
// check returns nil or an *AssertionError naming the offending field; none of
// them attempt recovery.
package validation

import (
	"errors"
	"fmt"
)

// ErrAssertion is matched by every AssertionError.
var ErrAssertion = errors.New("assertion failed")

// AssertionError describes a single violated expectation.
type AssertionError struct {
	Field    string // dotted path, e.g. "results[0].location.street.number"
	Expected string
	Actual   string
	Message  string
}

func (e *AssertionError) Error() string {
	msg := e.Field + ": " + e.Message
	if e.Expected != "" || e.Actual != "" {
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual)
	}
	return msg
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertion
}

func fail(field, message string, expected, actual any) error {
	return &AssertionError{
		Field:    field,
		Expected: fmt.Sprint(expected),
		Actual:   fmt.Sprint(actual),
		Message:  message,
	}
}

func missing(field string) error {
	return &AssertionError{Field: field, Message: "should not be null"}
}

func empty(field string) error {
	return &AssertionError{Field: field, Message: "should not be empty"}
}
