package task

import (
	"context"
	"time"

	domain "github.com/example/task-tracker/domain/task"
)

// CreateTaskRequest is the request for creating a task. The reporter is the
// session's user; id, timestamps and time tracking fields are store-assigned.
type CreateTaskRequest struct {
	SessionID   string          `json:"session_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        domain.Type     `json:"type"`
	Priority    domain.Priority `json:"priority"`
	AssigneeID  string          `json:"assignee_id"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// UpdateTaskRequest is the request for updating a task's free-form fields.
// Empty fields are left unchanged. Status is deliberately absent: status only
// moves through the change-status service so the workflow gate cannot be
// bypassed.
type UpdateTaskRequest struct {
	SessionID   string          `json:"session_id"`
	TaskID      string          `json:"task_id"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Type        domain.Type     `json:"type,omitempty"`
	Priority    domain.Priority `json:"priority,omitempty"`
	AssigneeID  string          `json:"assignee_id,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	SessionID string `json:"session_id"`
	TaskID    string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task. Deleted is false
// when the task id was unknown; that is a report, not an error.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// ListTasksRequest is the request for listing tasks. AssigneeID narrows the
// list to one assignee; empty lists every task in insertion order.
type ListTasksRequest struct {
	AssigneeID string `json:"assignee_id,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
}

// AddTimeEntryRequest is the request for logging time against a task. The
// logging user is the session's user. Date is a calendar day (2006-01-02);
// empty means today.
type AddTimeEntryRequest struct {
	SessionID   string  `json:"session_id"`
	TaskID      string  `json:"task_id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Date        string  `json:"date,omitempty"`
}

// AddTimeEntryResponse is the response for logging time.
type AddTimeEntryResponse struct {
	Entry          domain.TimeEntry `json:"entry"`
	TotalTimeSpent float64          `json:"total_time_spent"`
}

// ChangeStatusRequest is the request for a workflow transition.
type ChangeStatusRequest struct {
	SessionID string        `json:"session_id"`
	TaskID    string        `json:"task_id"`
	Status    domain.Status `json:"status"`
}

// TaskResponse is the response carrying a single task snapshot.
type TaskResponse struct {
	Task domain.Task `json:"task"`
}

// TaskPort defines the interface driving adapters use to interact with the
// task store (hexagonal port).
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, sessionID, taskID string) (bool, error)
	ListTasks(ctx context.Context, assigneeID string) ([]domain.Task, error)
	AddTimeEntry(ctx context.Context, req *AddTimeEntryRequest) (*AddTimeEntryResponse, error)
	ChangeStatus(ctx context.Context, req *ChangeStatusRequest) (*domain.Task, error)
}
