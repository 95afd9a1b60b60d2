// Package error defines domain-specific errors for the Password Strength Meter.
package error

import "errors"

// Strength evaluation request errors.
var (
	// ErrInvalidRequestBody is returned when an evaluation request cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrRequestTooLarge is returned when an evaluation request exceeds the configured size.
	ErrRequestTooLarge = errors.New("request body too large")
)

// StrengthErrorCode defines error codes for strength evaluation errors.
// Format: PWD-XXYYYY where XX is category and YYYY is specific error.
type StrengthErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeInvalidRequestBody StrengthErrorCode = "PWD-010001"
	ErrCodeRequestTooLarge    StrengthErrorCode = "PWD-010002"

	// Evaluation errors (02XXXX)
	ErrCodeEvaluationCanceled StrengthErrorCode = "PWD-020001"
)

// StrengthError represents a strength evaluation error with code and message.
type StrengthError struct {
	Code    StrengthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StrengthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StrengthError) Unwrap() error {
	return e.Err
}

// NewStrengthError creates a new StrengthError with the given code and message.
func NewStrengthError(code StrengthErrorCode, message string, err error) *StrengthError {
	return &StrengthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
