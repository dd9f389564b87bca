package task

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/domain/user"
	"github.com/example/task-tracker/domain/workflow"
	"github.com/example/task-tracker/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// resolveActor turns a session token into the acting user.
func (m *TaskModule) resolveActor(ctx context.Context, sessionID string) (*user.User, error) {
	actor, authenticated, err := m.authPort.CurrentUser(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if !authenticated {
		return nil, domain.ErrNotAuthenticated
	}
	return actor, nil
}

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	actor, err := m.resolveActor(ctx, req.SessionID)
	if err != nil {
		return TaskResponse{}, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return TaskResponse{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return TaskResponse{}, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if !req.Type.IsValid() {
		return TaskResponse{}, fmt.Errorf("%w: unknown task type %q", domain.ErrValidation, req.Type)
	}
	if !req.Priority.IsValid() {
		return TaskResponse{}, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, req.Priority)
	}

	assignee, found, err := m.authPort.GetUser(ctx, req.AssigneeID)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to look up assignee: %w", err)
	}
	if !found {
		return TaskResponse{}, fmt.Errorf("%w: unknown assignee %q", domain.ErrValidation, req.AssigneeID)
	}

	now := time.Now()
	newTask := &domain.Task{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Priority:     req.Priority,
		Status:       domain.StatusOpen,
		AssigneeID:   assignee.ID,
		AssigneeName: assignee.Name,
		ReporterID:   actor.ID,
		ReporterName: actor.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
		DueDate:      req.DueDate,
		TimeEntries:  []domain.TimeEntry{},
	}

	if err := m.repo.Save(newTask); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:     newTask.ID,
			Title:      newTask.Title,
			Type:       string(newTask.Type),
			Priority:   string(newTask.Priority),
			AssigneeID: newTask.AssigneeID,
			ReporterID: newTask.ReporterID,
			CreatedAt:  newTask.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", newTask.ID, err)
		}
	}

	return TaskResponse{Task: *newTask}, nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return TaskResponse{Task: *t}, nil
}

// updateTask handles the update-task service request. Provided fields
// overwrite the existing ones; status never moves here.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	actor, err := m.resolveActor(ctx, req.SessionID)
	if err != nil {
		return TaskResponse{}, err
	}

	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if !workflow.CanEdit(t, actor) {
		return TaskResponse{}, fmt.Errorf("%w: only the assignee or a manager may edit task %s", domain.ErrPermissionDenied, t.ID)
	}

	if req.Title != "" {
		t.Title = req.Title
	}
	if req.Description != "" {
		t.Description = req.Description
	}
	if req.Type != "" {
		if !req.Type.IsValid() {
			return TaskResponse{}, fmt.Errorf("%w: unknown task type %q", domain.ErrValidation, req.Type)
		}
		t.Type = req.Type
	}
	if req.Priority != "" {
		if !req.Priority.IsValid() {
			return TaskResponse{}, fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, req.Priority)
		}
		t.Priority = req.Priority
	}
	if req.AssigneeID != "" {
		assignee, found, err := m.authPort.GetUser(ctx, req.AssigneeID)
		if err != nil {
			return TaskResponse{}, fmt.Errorf("failed to look up assignee: %w", err)
		}
		if !found {
			return TaskResponse{}, fmt.Errorf("%w: unknown assignee %q", domain.ErrValidation, req.AssigneeID)
		}
		t.AssigneeID = assignee.ID
		t.AssigneeName = assignee.Name
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	t.UpdatedAt = time.Now()

	if err := m.repo.Save(t); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:    t.ID,
			ActorID:   actor.ID,
			UpdatedAt: t.UpdatedAt,
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskUpdated event for task %s: %v", t.ID, err)
		}
	}

	return TaskResponse{Task: *t}, nil
}

// deleteTask handles the delete-task service request. An unknown id reports
// Deleted=false rather than failing; a closed task is never deletable.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	actor, err := m.resolveActor(ctx, req.SessionID)
	if err != nil {
		return DeleteTaskResponse{}, err
	}

	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return DeleteTaskResponse{Deleted: false}, nil
		}
		return DeleteTaskResponse{}, fmt.Errorf("failed to load task: %w", err)
	}

	if !workflow.CanDelete(t, actor) {
		return DeleteTaskResponse{}, fmt.Errorf("%w: only the reporter or a manager may delete task %s, and never a closed one", domain.ErrPermissionDenied, t.ID)
	}

	if err := m.repo.Delete(req.TaskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return DeleteTaskResponse{Deleted: false}, nil
		}
		return DeleteTaskResponse{}, fmt.Errorf("failed to delete task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			ActorID:   actor.ID,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %s: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	var (
		tasks []*domain.Task
		err   error
	)
	if req.AssigneeID != "" {
		tasks, err = m.repo.FindByAssignee(req.AssigneeID)
	} else {
		tasks, err = m.repo.FindAll()
	}
	if err != nil {
		return ListTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	response := ListTasksResponse{
		Tasks: make([]domain.Task, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, *t)
	}
	return response, nil
}

// addTimeEntry handles the add-time-entry service request. The hours bound
// (0, 24] is enforced here at the store boundary, not left to form widgets.
func (m *TaskModule) addTimeEntry(ctx context.Context, req AddTimeEntryRequest, _ *mono.Msg) (AddTimeEntryResponse, error) {
	actor, err := m.resolveActor(ctx, req.SessionID)
	if err != nil {
		return AddTimeEntryResponse{}, err
	}

	if req.Hours <= 0 || req.Hours > domain.MaxEntryHours {
		return AddTimeEntryResponse{}, fmt.Errorf("%w: hours must be in (0, %v], got %v", domain.ErrValidation, domain.MaxEntryHours, req.Hours)
	}
	if strings.TrimSpace(req.Description) == "" {
		return AddTimeEntryResponse{}, fmt.Errorf("%w: entry description is required", domain.ErrValidation)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return AddTimeEntryResponse{}, fmt.Errorf("%w: date must be formatted as %s", domain.ErrValidation, domain.DateLayout)
	}

	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return AddTimeEntryResponse{}, err
	}

	if !workflow.CanEdit(t, actor) {
		return AddTimeEntryResponse{}, fmt.Errorf("%w: only the assignee or a manager may log time on task %s", domain.ErrPermissionDenied, t.ID)
	}

	now := time.Now()
	entry := domain.TimeEntry{
		ID:          uuid.New().String(),
		TaskID:      t.ID,
		UserID:      actor.ID,
		Description: req.Description,
		Hours:       req.Hours,
		Date:        date,
		CreatedAt:   now,
	}

	t.TimeEntries = append(t.TimeEntries, entry)
	t.RecalcTotalTime()
	t.UpdatedAt = now

	if err := m.repo.Save(t); err != nil {
		return AddTimeEntryResponse{}, fmt.Errorf("failed to save time entry: %w", err)
	}

	if m.eventBus != nil {
		event := events.TimeLoggedEvent{
			TaskID:    t.ID,
			EntryID:   entry.ID,
			UserID:    entry.UserID,
			Hours:     entry.Hours,
			Date:      entry.Date,
			TotalTime: t.TotalTimeSpent,
			LoggedAt:  now,
		}
		if err := events.TimeLoggedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TimeLogged event for task %s: %v", t.ID, err)
		}
	}

	return AddTimeEntryResponse{Entry: entry, TotalTimeSpent: t.TotalTimeSpent}, nil
}

// changeStatus handles the change-status service request. The workflow gate
// validates the transition before anything is written; closing stamps
// ClosedAt and ApprovedBy in the same save as the status itself.
func (m *TaskModule) changeStatus(ctx context.Context, req ChangeStatusRequest, _ *mono.Msg) (TaskResponse, error) {
	actor, err := m.resolveActor(ctx, req.SessionID)
	if err != nil {
		return TaskResponse{}, err
	}

	if !req.Status.IsValid() {
		return TaskResponse{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, req.Status)
	}

	t, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if err := workflow.CanTransition(t, actor, req.Status); err != nil {
		return TaskResponse{}, err
	}

	from := t.Status
	now := time.Now()
	t.Status = req.Status
	t.UpdatedAt = now
	if req.Status == domain.StatusClosed {
		t.ClosedAt = &now
		t.ApprovedBy = actor.ID
	}

	if err := m.repo.Save(t); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to change status: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskStatusChangedEvent{
			TaskID:     t.ID,
			Title:      t.Title,
			From:       string(from),
			To:         string(t.Status),
			ActorID:    actor.ID,
			AssigneeID: t.AssigneeID,
			ClosedAt:   t.ClosedAt,
			ApprovedBy: t.ApprovedBy,
			ChangedAt:  now,
		}
		if err := events.TaskStatusChangedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskStatusChanged event for task %s: %v", t.ID, err)
		}
	}

	return TaskResponse{Task: *t}, nil
}
