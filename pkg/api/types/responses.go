// Package types provides the shared wire types used across the demo API.
// Keeping them in one place ensures every transport serializes the same
// contract.
package types

import "time"

// Result is the generic success/error envelope. Data is set iff Success
// is true, Error iff it is false; the two are mutually exclusive by
// construction (use OK and Fail).
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful Result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: &data}
}

// Fail creates a failed Result carrying an error message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

// Page is a paginated listing. Total counts the filtered collection
// before slicing, so an out-of-range page still reports the real size.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	HasMore  bool `json:"hasMore"`
}

// NewPage builds a Page and derives HasMore from the window position.
func NewPage[T any](items []T, total, page, pageSize int) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  page*pageSize < total,
	}
}

// ErrorResponse is the standard error body for non-envelope endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// DeleteResponse summarizes a completed delete.
type DeleteResponse struct {
	Success   bool `json:"success"`
	DeletedID int  `json:"deletedId"`
}

// MessageResponse is a simple message body.
type MessageResponse struct {
	Message string `json:"message"`
}
