package generator

import (
	"errors"
	"strings"
)

// ErrInvalidRequest is matched by every *ValidationError.
var ErrInvalidRequest = errors.New("invalid id request")

// ErrorResponse describes one failed field of a request.
type ErrorResponse struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Param       string `json:"param,omitempty"`
	Value       any    `json:"value"`
}

// ValidationError is returned by Service.Generate for requests outside the configured limits.
type ValidationError struct {
	Errors []ErrorResponse
}

// Error implements error.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = "field '" + fe.FailedField + "' failed validation tag '" + fe.Tag + "'"
	}

	return ErrInvalidRequest.Error() + ": " + strings.Join(msgs, ", ")
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
