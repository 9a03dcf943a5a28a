package services

import "errors"

// ValidationError names the offending request field. The HTTP layer
// turns it into a 400 with {message, field}.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var ErrOrderNotFound = errors.New("order not found")
