// Package resource defines the entities served by the demo API: tasks,
// users, posts, and AI model info, together with their closed enums and
// request types. Enums travel as string tags and are validated at the
// boundary; unknown tags are rejected.
package resource

import (
	"github.com/polyrpc/demoapi/pkg/validation"
)

// Status is the lifecycle state of a Task. There is no transition
// graph: any status may replace any other.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// statusValues lists the allowed tags, in declaration order.
func statusValues() []string {
	return []string{
		string(StatusPending),
		string(StatusRunning),
		string(StatusCompleted),
		string(StatusFailed),
	}
}

// Valid reports whether s is a known status tag.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// ParseStatus converts a wire tag into a Status, rejecting unknown tags.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", validation.NewError(
			validation.NewEnumError("status", validation.LocationBody, statusValues(), s))
	}
	return st, nil
}

// Priority is the urgency of a Task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func priorityValues() []string {
	return []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}
}

// Valid reports whether p is a known priority tag.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts a wire tag into a Priority, rejecting unknown tags.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", validation.NewError(
			validation.NewEnumError("priority", validation.LocationBody, priorityValues(), s))
	}
	return p, nil
}

// Task is an item in the demo todo list.
type Task struct {
	// ID is assigned by the store and immutable after creation.
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status   `json:"status" yaml:"status"`
	Priority    Priority `json:"priority" yaml:"priority"`
}

// CreateTaskRequest is the input for task creation. Omitted optional
// fields take their documented defaults (status pending, priority
// medium).
type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// Validate checks the request fields.
func (r *CreateTaskRequest) Validate() *validation.Result {
	res := validation.NewResult()
	if r.Title == "" {
		res.AddError(validation.NewRequiredError("title", validation.LocationBody))
	}
	if r.Priority != nil && !r.Priority.Valid() {
		res.AddError(validation.NewEnumError("priority", validation.LocationBody, priorityValues(), string(*r.Priority)))
	}
	return res
}
