// Package common provides shared errors and utilities used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors. These are fatal to a report request and are
	// surfaced before any aggregation begins.
	ErrMissingRoute  = errors.New("missing route endpoints")
	ErrInvalidFare   = errors.New("invalid fare")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Input errors.
	ErrNoRecords     = errors.New("no trip records")
	ErrUnknownPeriod = errors.New("unable to determine report period")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
