package query

import (
	domain "github.com/example/task-tracker/domain/task"
)

// FilterTasksRequest is the request for filtering a task snapshot.
// AssigneeScope narrows the snapshot before the filters run, matching the
// developer view that only shows self-assigned tasks; managers leave it
// empty to see everything.
type FilterTasksRequest struct {
	AssigneeScope string      `json:"assignee_scope,omitempty"`
	Filters       TaskFilters `json:"filters"`
}

// FilterTasksResponse is the response for filtering tasks.
type FilterTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
}

// DailyTrendRequest is the request for the activity histogram.
type DailyTrendRequest struct {
	AssigneeScope string `json:"assignee_scope,omitempty"`
	WindowDays    int    `json:"window_days,omitempty"` // defaults to 7
}

// DailyTrendResponse is the response for the activity histogram.
type DailyTrendResponse struct {
	Buckets []TrendBucket `json:"buckets"`
}

// UniqueAssigneesRequest is the request for listing distinct assignees.
type UniqueAssigneesRequest struct {
	AssigneeScope string `json:"assignee_scope,omitempty"`
}

// UniqueAssigneesResponse is the response for listing distinct assignees.
type UniqueAssigneesResponse struct {
	Assignees []Assignee `json:"assignees"`
}

// TaskStatsRequest is the request for the dashboard aggregates.
type TaskStatsRequest struct {
	AssigneeScope string `json:"assignee_scope,omitempty"`
}

// TaskStatsResponse is the response for the dashboard aggregates.
type TaskStatsResponse struct {
	Stats Stats `json:"stats"`
}
