package task

import "time"

// EventKind identifies the change that produced an event.
type EventKind string

const (
	// EventCreated is published after a task is created.
	EventCreated EventKind = "created"
	// EventUpdated is published after a task is updated, including every
	// task moved by the rollover sweep.
	EventUpdated EventKind = "updated"
	// EventCompleted is published when a task transitions to Completed via
	// the complete operation, distinct from generic updates.
	EventCompleted EventKind = "completed"
	// EventDeleted is published after a task is deleted. It carries only
	// the identifier; the record is gone.
	EventDeleted EventKind = "deleted"
)

// Event is a notification published after a committed mutation. Task is a
// detached snapshot for created/updated/completed events and nil for
// deleted events.
type Event struct {
	Kind   EventKind `json:"kind"`
	TaskID string    `json:"task_id"`
	Task   *Task     `json:"task,omitempty"`
	At     time.Time `json:"at"`
}

// NewEvent builds an event carrying a snapshot of t.
func NewEvent(kind EventKind, t *Task) Event {
	return Event{
		Kind:   kind,
		TaskID: t.ID,
		Task:   t.Snapshot(),
		At:     time.Now().UTC(),
	}
}

// NewDeletedEvent builds a deleted event carrying only the identifier.
func NewDeletedEvent(taskID string) Event {
	return Event{
		Kind:   EventDeleted,
		TaskID: taskID,
		At:     time.Now().UTC(),
	}
}
