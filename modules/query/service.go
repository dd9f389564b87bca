package query

import (
	"context"
	"fmt"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/go-monolith/mono"
)

// snapshot fetches the current task collection through the task port.
func (m *QueryModule) snapshot(ctx context.Context, assigneeScope string) ([]domain.Task, error) {
	tasks, err := m.taskPort.ListTasks(ctx, assigneeScope)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task snapshot: %w", err)
	}
	return tasks, nil
}

// filterTasks handles the filter-tasks service request.
func (m *QueryModule) filterTasks(ctx context.Context, req FilterTasksRequest, _ *mono.Msg) (FilterTasksResponse, error) {
	tasks, err := m.snapshot(ctx, req.AssigneeScope)
	if err != nil {
		return FilterTasksResponse{}, err
	}

	filtered := FilterTasks(tasks, req.Filters)
	return FilterTasksResponse{Tasks: filtered, Total: len(filtered)}, nil
}

// dailyTrend handles the daily-trend service request.
func (m *QueryModule) dailyTrend(ctx context.Context, req DailyTrendRequest, _ *mono.Msg) (DailyTrendResponse, error) {
	tasks, err := m.snapshot(ctx, req.AssigneeScope)
	if err != nil {
		return DailyTrendResponse{}, err
	}

	return DailyTrendResponse{Buckets: DailyTrend(tasks, req.WindowDays)}, nil
}

// uniqueAssignees handles the unique-assignees service request.
func (m *QueryModule) uniqueAssignees(ctx context.Context, req UniqueAssigneesRequest, _ *mono.Msg) (UniqueAssigneesResponse, error) {
	tasks, err := m.snapshot(ctx, req.AssigneeScope)
	if err != nil {
		return UniqueAssigneesResponse{}, err
	}

	return UniqueAssigneesResponse{Assignees: UniqueAssignees(tasks)}, nil
}

// taskStats handles the task-stats service request.
func (m *QueryModule) taskStats(ctx context.Context, req TaskStatsRequest, _ *mono.Msg) (TaskStatsResponse, error) {
	tasks, err := m.snapshot(ctx, req.AssigneeScope)
	if err != nil {
		return TaskStatsResponse{}, err
	}

	return TaskStatsResponse{Stats: ComputeStats(tasks)}, nil
}
