package ratesapi

import (
	"errors"
	"fmt"
)

// Error is returned when the rates API answers with a non-2xx status
type Error struct {
	StatusCode int
	Response   []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("rates api returned status %d", e.StatusCode)
}

// NewError creates a new rates API error
func NewError(statusCode int, response []byte) *Error {
	return &Error{StatusCode: statusCode, Response: response}
}

// IsHTTPError checks if an error is a rates API status error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
