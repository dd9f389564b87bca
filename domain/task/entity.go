// Package task provides the core domain types for tracked work items.
package task

import "time"

// Type classifies a tracked work item.
type Type string

const (
	TypeBug         Type = "bug"
	TypeTask        Type = "task"
	TypeFeature     Type = "feature"
	TypeImprovement Type = "improvement"
)

// IsValid returns true if the type is a known task type.
func (t Type) IsValid() bool {
	switch t {
	case TypeBug, TypeTask, TypeFeature, TypeImprovement:
		return true
	default:
		return false
	}
}

// Priority indicates how urgent a task is.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid returns true if the priority is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Status represents where a task sits in its lifecycle.
type Status string

const (
	// StatusOpen indicates the task has not been started.
	StatusOpen Status = "open"
	// StatusInProgress indicates the assignee is working on the task.
	StatusInProgress Status = "in-progress"
	// StatusPendingApproval indicates the work is done and awaits manager review.
	StatusPendingApproval Status = "pending-approval"
	// StatusClosed indicates a manager approved and closed the task.
	StatusClosed Status = "closed"
	// StatusReopened indicates a manager rejected the work for another pass.
	StatusReopened Status = "reopened"
)

// IsValid returns true if the status is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusPendingApproval, StatusClosed, StatusReopened:
		return true
	default:
		return false
	}
}

// TimeEntry is a logged record of hours spent on a task on a given day.
// Entries are append-only; they are never edited or removed.
type TimeEntry struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
	Date        string    `json:"date"` // calendar day, formatted as 2006-01-02
	CreatedAt   time.Time `json:"created_at"`
}

// Task is the core domain entity representing a tracked work item.
type Task struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Type           Type        `json:"type"`
	Priority       Priority    `json:"priority"`
	Status         Status      `json:"status"`
	AssigneeID     string      `json:"assignee_id"`
	AssigneeName   string      `json:"assignee_name"`
	ReporterID     string      `json:"reporter_id"`
	ReporterName   string      `json:"reporter_name"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	DueDate        *time.Time  `json:"due_date,omitempty"`
	ClosedAt       *time.Time  `json:"closed_at,omitempty"`
	ApprovedBy     string      `json:"approved_by,omitempty"`
	TimeEntries    []TimeEntry `json:"time_entries"`
	TotalTimeSpent float64     `json:"total_time_spent"`
}

// RecalcTotalTime recomputes TotalTimeSpent as the exact sum of all entry
// hours. TotalTimeSpent is never set independently.
func (t *Task) RecalcTotalTime() {
	var sum float64
	for _, e := range t.TimeEntries {
		sum += e.Hours
	}
	t.TotalTimeSpent = sum
}

// Clone returns a deep copy of the task. Callers may mutate the copy without
// affecting the stored record.
func (t *Task) Clone() *Task {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.ClosedAt != nil {
		d := *t.ClosedAt
		c.ClosedAt = &d
	}
	c.TimeEntries = make([]TimeEntry, len(t.TimeEntries))
	copy(c.TimeEntries, t.TimeEntries)
	return &c
}

// DateLayout is the calendar-day format used by time entries and trend buckets.
const DateLayout = "2006-01-02"

// MaxEntryHours is the upper bound for a single time entry.
const MaxEntryHours = 24.0
