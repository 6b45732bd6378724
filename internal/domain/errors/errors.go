// Package errors defines the business errors returned by the use cases.
// Each carries the HTTP status and code the API renders in its envelope.
package errors

import (
	"net/http"
)

// AppError is implemented by every error the API renders with its own code.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context for 4xx responses, never sent for 5xx
	Details() string
}

// BaseError is the AppError used for all predefined errors.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError with the same code, so errors.Is(err, ErrSessionNotFound)
// holds for copies made by WithDetails.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Predefined error types
var (
	// Logistics errors
	ErrGeneratorNotFound = NewBaseError(
		http.StatusNotFound,
		"GENERATOR_NOT_FOUND",
		"Generator not found in the registry",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Logistics session not found or expired",
		"",
	)

	ErrRouteNotViable = NewBaseError(
		http.StatusUnprocessableEntity,
		"ROUTE_NOT_VIABLE",
		"Add an anchor generator to unlock the shared route",
		"",
	)

	ErrEventPublishFailed = NewBaseError(
		http.StatusBadGateway,
		"EVENT_PUBLISH_FAILED",
		"Failed to publish the collection request",
		"",
	)

	// Report errors
	ErrInvalidMonth = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MONTH",
		"Month index must be between 0 and 11",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Monthly report not found",
		"",
	)

	ErrCertificateNotFound = NewBaseError(
		http.StatusNotFound,
		"CERTIFICATE_NOT_FOUND",
		"No disposal certificate registered for this month",
		"",
	)

	ErrCertificateInvalid = NewBaseError(
		http.StatusUnprocessableEntity,
		"CERTIFICATE_INVALID",
		"Certificate does not match the registered report",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
