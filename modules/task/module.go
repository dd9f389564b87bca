package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/example/task-tracker/events"
	"github.com/example/task-tracker/modules/auth"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TaskModule owns the authoritative task collection and its time entries
// (core domain).
type TaskModule struct {
	repo     TaskRepository
	authPort auth.AuthPort
	eventBus mono.EventBus
	db       *gorm.DB
	dbPath   string
}

// Compile-time interface checks.
var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.DependentModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)

// NewModule creates a new TaskModule. When TASK_DB_PATH is set the module
// persists tasks in a SQLite database at that path; otherwise all state is
// in memory and lost on restart.
func NewModule() *TaskModule {
	return &TaskModule{
		dbPath: os.Getenv("TASK_DB_PATH"),
	}
}

// Name returns the module name.
func (m *TaskModule) Name() string {
	return "task"
}

// Dependencies declares the modules this one calls into.
func (m *TaskModule) Dependencies() []string {
	return []string{"auth"}
}

// SetDependencyServiceContainer wires the auth port.
func (m *TaskModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "auth" {
		m.authPort = auth.NewAuthAdapter(container)
	}
}

// SetEventBus receives the application event bus.
func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
		events.TaskStatusChangedV1.ToBase(),
		events.TimeLoggedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
	}
}

// RegisterServices registers the task request-reply services.
func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-task", json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register get-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-task", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-task", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-tasks", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list-tasks service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "add-time-entry", json.Unmarshal, json.Marshal, m.addTimeEntry,
	); err != nil {
		return fmt.Errorf("failed to register add-time-entry service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "change-status", json.Unmarshal, json.Marshal, m.changeStatus,
	); err != nil {
		return fmt.Errorf("failed to register change-status service: %w", err)
	}

	log.Printf("[task] Registered services: create-task, get-task, update-task, delete-task, list-tasks, add-time-entry, change-status")
	return nil
}

// Start picks the repository backend and seeds the demo fixtures.
func (m *TaskModule) Start(_ context.Context) error {
	if m.authPort == nil {
		return fmt.Errorf("authPort dependency not set")
	}
	if m.eventBus == nil {
		log.Println("[task] Warning: eventBus not set, events will not be published")
	}

	if m.dbPath != "" {
		db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return fmt.Errorf("failed to open task database: %w", err)
		}
		m.db = db
		repo, err := NewGormTaskRepository(db)
		if err != nil {
			return fmt.Errorf("failed to migrate task database: %w", err)
		}
		m.repo = repo
		log.Printf("[task] Module started (database: %s)", m.dbPath)
	} else {
		m.repo = NewMemoryTaskRepository()
		log.Println("[task] Module started (in-memory store)")
	}

	count, err := m.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if count == 0 {
		if err := SeedDemoTasks(m.repo); err != nil {
			return fmt.Errorf("failed to seed demo tasks: %w", err)
		}
		log.Println("[task] Seeded demo tasks")
	}
	return nil
}

// Stop shuts down the module.
func (m *TaskModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[task] Module stopped")
	return nil
}
