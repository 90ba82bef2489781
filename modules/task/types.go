package task

import (
	"bytes"
	"encoding/json"

	domain "github.com/example/taskboard/domain/task"
)

// Direction values for the move-priority operation.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Move types for the move-date operation.
const (
	MoveNextDay    = "nextDay"
	MovePlusTwo    = "plusTwo"
	MoveNextMonday = "nextMonday"
)

// NullableString distinguishes an absent JSON key from an explicit null in
// partial updates: absent leaves the field untouched, null clears it, a
// string value assigns it.
type NullableString struct {
	Set   bool
	Value *string
}

var jsonNull = []byte("null")

// UnmarshalJSON records that the key was present before decoding the value.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON encodes the value, or null when cleared.
func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(*n.Value)
}

// IsZero reports whether the key was absent, so omitzero drops it on
// re-encode.
func (n NullableString) IsZero() bool {
	return !n.Set
}

// CreateTaskRequest is the request for creating a task. Only the title is
// required; everything else has a default.
type CreateTaskRequest struct {
	OwnerID     string          `json:"owner_id,omitempty"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Urgency     *domain.Urgency `json:"urgency,omitempty"`
	DueDate     *string         `json:"due_date,omitempty"`
	ProjectID   *string         `json:"project_id,omitempty"`
	FollowUp    *bool           `json:"follow_up,omitempty"`
	URL1        *string         `json:"url1,omitempty"`
	URL2        *string         `json:"url2,omitempty"`
	URL3        *string         `json:"url3,omitempty"`
}

// UpdateTaskRequest is the partial-update request. Nil pointers leave the
// corresponding field untouched; ProjectID is tri-state (see
// NullableString).
type UpdateTaskRequest struct {
	OwnerID     string             `json:"owner_id,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Status      *domain.TaskStatus `json:"status,omitempty"`
	Urgency     *domain.Urgency    `json:"urgency,omitempty"`
	DueDate     *string            `json:"due_date,omitempty"`
	ProjectID   NullableString     `json:"project_id,omitzero"`
	FollowUp    *bool              `json:"follow_up,omitempty"`
	URL1        *string            `json:"url1,omitempty"`
	URL2        *string            `json:"url2,omitempty"`
	URL3        *string            `json:"url3,omitempty"`
}

// HasChanges reports whether at least one recognized field was supplied.
func (r UpdateTaskRequest) HasChanges() bool {
	return r.Title != nil ||
		r.Description != nil ||
		r.Status != nil ||
		r.Urgency != nil ||
		r.DueDate != nil ||
		r.ProjectID.Set ||
		r.FollowUp != nil ||
		r.URL1 != nil ||
		r.URL2 != nil ||
		r.URL3 != nil
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct {
	OwnerID   string  `json:"owner_id,omitempty"`
	Status    string  `json:"status,omitempty"` // Open, Completed or All
	Search    string  `json:"search,omitempty"`
	ProjectID string  `json:"project_id,omitempty"`
	From      *string `json:"from,omitempty"`
	To        *string `json:"to,omitempty"`
}

// ListTasksResponse is the response containing matching tasks.
type ListTasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int            `json:"total"`
}

// MovePriorityRequest is the request for the move-priority operation.
type MovePriorityRequest struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id,omitempty"`
	Direction string `json:"direction"`
}

// MoveDateRequest is the request for the move-date operation.
type MoveDateRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
	Type    string `json:"type"`
}

// CompleteTaskRequest is the request for the complete operation.
type CompleteTaskRequest struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
}

// RolloverRequest is the request for the rollover sweep. Today defaults to
// the current time when omitted; supplying it keeps the sweep testable
// without touching the real clock.
type RolloverRequest struct {
	OwnerID string  `json:"owner_id,omitempty"`
	Today   *string `json:"today,omitempty"`
}

// RolloverResponse reports the tasks moved by a sweep.
type RolloverResponse struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int            `json:"total"`
}
