// Package notification is a driven adapter that turns task events into
// notification log entries, standing in for the dashboard banners of a UI.
package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	TaskID    string    `json:"task_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule subscribes to task events and keeps an in-memory log.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskStatusChangedV1, m.handleStatusChanged, m); err != nil {
		return fmt.Errorf("failed to register TaskStatusChanged consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TimeLoggedV1, m.handleTimeLogged, m); err != nil {
		return fmt.Errorf("failed to register TimeLogged consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCreated, TaskStatusChanged, TimeLogged, TaskDeleted")
	return nil
}

func (m *NotificationModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task created: %s - %s", event.TaskID, event.Title)
	m.logNotification(event.TaskID, "task_created",
		fmt.Sprintf("New %s '%s' assigned to %s", event.Type, event.Title, event.AssigneeID))
	return nil
}

func (m *NotificationModule) handleStatusChanged(_ context.Context, event events.TaskStatusChangedEvent, _ *mono.Msg) error {
	switch task.Status(event.To) {
	case task.StatusPendingApproval:
		// The manager-facing banner: work is waiting for review.
		log.Printf("[notification] Task %s is waiting for manager approval", event.TaskID)
		m.logNotification(event.TaskID, "pending_approval",
			fmt.Sprintf("Task '%s' is waiting for approval", event.Title))
	case task.StatusClosed:
		log.Printf("[notification] Task %s approved and closed by %s", event.TaskID, event.ApprovedBy)
		m.logNotification(event.TaskID, "task_closed",
			fmt.Sprintf("Task '%s' approved and closed", event.Title))
	case task.StatusReopened:
		log.Printf("[notification] Task %s reopened by %s", event.TaskID, event.ActorID)
		m.logNotification(event.TaskID, "task_reopened",
			fmt.Sprintf("Task '%s' was reopened for another pass", event.Title))
	default:
		m.logNotification(event.TaskID, "status_changed",
			fmt.Sprintf("Task '%s' moved from %s to %s", event.Title, event.From, event.To))
	}
	return nil
}

func (m *NotificationModule) handleTimeLogged(_ context.Context, event events.TimeLoggedEvent, _ *mono.Msg) error {
	log.Printf("[notification] %.1fh logged on task %s (total %.1fh)", event.Hours, event.TaskID, event.TotalTime)
	m.logNotification(event.TaskID, "time_logged",
		fmt.Sprintf("%.1f hours logged on %s by %s", event.Hours, event.Date, event.UserID))
	return nil
}

func (m *NotificationModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task deleted: %s by %s", event.TaskID, event.ActorID)
	m.logNotification(event.TaskID, "task_deleted", fmt.Sprintf("Task %s deleted", event.TaskID))
	return nil
}

func (m *NotificationModule) logNotification(taskID, notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		TaskID:    taskID,
		Type:      notificationType,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// GetNotifications returns a copy of the notification log.
func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
