package validation

import (
	"fmt"
	"strings"
)

// Error code constants for machine-readable error identification.
const (
	ErrCodeRequired    = "required"
	ErrCodeMinLength   = "min_length"
	ErrCodeMaxLength   = "max_length"
	ErrCodePattern     = "pattern"
	ErrCodeFormat      = "format"
	ErrCodeMin         = "min"
	ErrCodeEnum        = "enum"
	ErrCodeInvalidJSON = "invalid_json"
)

// Location constants.
const (
	LocationBody  = "body"
	LocationPath  = "path"
	LocationQuery = "query"
)

// FieldError describes a validation failure for a single field.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field"`

	// Location indicates where the field is: body, path, query.
	Location string `json:"location"`

	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Received is the value that was received, when safe to echo.
	Received any `json:"received,omitempty"`

	// Expected describes what was expected.
	Expected string `json:"expected,omitempty"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Location, e.Field, e.Message)
	}
	return e.Message
}

// Result collects the outcome of validating one request.
type Result struct {
	Valid  bool          `json:"valid"`
	Errors []*FieldError `json:"errors,omitempty"`
}

// NewResult returns an empty, valid Result.
func NewResult() *Result {
	return &Result{Valid: true}
}

// AddError records a validation error.
func (r *Result) AddError(err *FieldError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// HasErrors reports whether any errors were recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
}

// Err returns the result as an error value, or nil when valid.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &Error{Errors: r.Errors}
}

// Error carries one or more field errors as a single error value, so
// callers can detect validation failures with errors.As.
type Error struct {
	Errors []*FieldError `json:"errors"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// NewError wraps field errors into an *Error.
func NewError(errs ...*FieldError) *Error {
	return &Error{Errors: errs}
}

// NewRequiredError creates an error for a missing required field.
func NewRequiredError(field, location string) *FieldError {
	return &FieldError{
		Field:    field,
		Location: location,
		Code:     ErrCodeRequired,
		Message:  fmt.Sprintf("field '%s' is required", field),
		Expected: "non-empty value",
	}
}

// NewMinLengthError creates an error for a string that is too short.
func NewMinLengthError(field, location string, minLength, actual int) *FieldError {
	return &FieldError{
		Field:    field,
		Location: location,
		Code:     ErrCodeMinLength,
		Message:  fmt.Sprintf("must be at least %d characters", minLength),
		Received: actual,
		Expected: fmt.Sprintf(">= %d characters", minLength),
	}
}

// NewMaxLengthError creates an error for a string that is too long.
func NewMaxLengthError(field, location string, maxLength, actual int) *FieldError {
	return &FieldError{
		Field:    field,
		Location: location,
		Code:     ErrCodeMaxLength,
		Message:  fmt.Sprintf("must be at most %d characters", maxLength),
		Received: actual,
		Expected: fmt.Sprintf("<= %d characters", maxLength),
	}
}

// NewFormatError creates an error for a format validation failure.
func NewFormatError(field, location, format string, received any) *FieldError {
	return &FieldError{
		Field:    field,
		Location: location,
		Code:     ErrCodeFormat,
		Message:  fmt.Sprintf("must be a valid %s", format),
		Received: received,
		Expected: "format: " + format,
	}
}

// NewMinError creates an error for a number below its minimum.
func NewMinError(field, location string, min int, received any) *FieldError {
	return &FieldError{
		Field:    field,
		Location: location,
		Code:     ErrCodeMin,
		Message:  fmt.Sprintf("must be >= %d", min),
		Received: received,
		Expected: fmt.Sprintf(">= %d", min),
	}
}

// NewEnumError creates an error for a value outside its closed set.
func NewEnumError(field, location string, allowed []string, received any) *FieldError {
	return &FieldError{
		Field:    field,
		Location: location,
		Code:     ErrCodeEnum,
		Message:  fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Received: received,
		Expected: "one of: " + strings.Join(allowed, ", "),
	}
}

// NewInvalidJSONError creates an error for a malformed request body.
func NewInvalidJSONError(message string) *FieldError {
	return &FieldError{
		Location: LocationBody,
		Code:     ErrCodeInvalidJSON,
		Message:  "invalid JSON: " + message,
	}
}
