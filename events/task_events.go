// Package events defines the typed domain events emitted by the task module.
package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCreatedEvent is emitted when a new task is created.
type TaskCreatedEvent struct {
	TaskID     string    `json:"task_id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	AssigneeID string    `json:"assignee_id"`
	ReporterID string    `json:"reporter_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskCreatedV1 is the typed event definition for task creation.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskCreatedEvent](
	"task", "TaskCreated", "v1",
)

// TaskUpdatedEvent is emitted when a task's free-form fields change.
type TaskUpdatedEvent struct {
	TaskID    string    `json:"task_id"`
	ActorID   string    `json:"actor_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskUpdatedV1 is the typed event definition for task field updates.
// Subject: events.task.v1.task-updated
var TaskUpdatedV1 = helper.EventDefinition[TaskUpdatedEvent](
	"task", "TaskUpdated", "v1",
)

// TaskStatusChangedEvent is emitted for every workflow transition. ClosedAt
// and ApprovedBy are set only when To is "closed".
type TaskStatusChangedEvent struct {
	TaskID     string     `json:"task_id"`
	Title      string     `json:"title"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	ActorID    string     `json:"actor_id"`
	AssigneeID string     `json:"assignee_id"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	ApprovedBy string     `json:"approved_by,omitempty"`
	ChangedAt  time.Time  `json:"changed_at"`
}

// TaskStatusChangedV1 is the typed event definition for workflow transitions.
// Subject: events.task.v1.task-status-changed
var TaskStatusChangedV1 = helper.EventDefinition[TaskStatusChangedEvent](
	"task", "TaskStatusChanged", "v1",
)

// TimeLoggedEvent is emitted when a time entry is appended to a task.
type TimeLoggedEvent struct {
	TaskID    string    `json:"task_id"`
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	Hours     float64   `json:"hours"`
	Date      string    `json:"date"`
	TotalTime float64   `json:"total_time"`
	LoggedAt  time.Time `json:"logged_at"`
}

// TimeLoggedV1 is the typed event definition for time logging.
// Subject: events.task.v1.time-logged
var TimeLoggedV1 = helper.EventDefinition[TimeLoggedEvent](
	"task", "TimeLogged", "v1",
)

// TaskDeletedEvent is emitted when a task is deleted.
type TaskDeletedEvent struct {
	TaskID    string    `json:"task_id"`
	ActorID   string    `json:"actor_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// TaskDeletedV1 is the typed event definition for task deletion.
// Subject: events.task.v1.task-deleted
var TaskDeletedV1 = helper.EventDefinition[TaskDeletedEvent](
	"task", "TaskDeleted", "v1",
)
