package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/task-tracker/modules/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// QueryModule serves the derived dashboard views. It is a read-only driving
// adapter over the task module: it never mutates, only works on snapshots.
type QueryModule struct {
	taskPort task.TaskPort
}

// Compile-time interface checks.
var _ mono.Module = (*QueryModule)(nil)
var _ mono.ServiceProviderModule = (*QueryModule)(nil)
var _ mono.DependentModule = (*QueryModule)(nil)

// NewModule creates a new QueryModule.
func NewModule() *QueryModule {
	return &QueryModule{}
}

// Name returns the module name.
func (m *QueryModule) Name() string {
	return "query"
}

// Dependencies declares the modules this one calls into.
func (m *QueryModule) Dependencies() []string {
	return []string{"task"}
}

// SetDependencyServiceContainer wires the task port.
func (m *QueryModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskPort = task.NewTaskAdapter(container)
	}
}

// RegisterServices registers the derived-view request-reply services.
func (m *QueryModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "filter-tasks", json.Unmarshal, json.Marshal, m.filterTasks,
	); err != nil {
		return fmt.Errorf("failed to register filter-tasks service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "daily-trend", json.Unmarshal, json.Marshal, m.dailyTrend,
	); err != nil {
		return fmt.Errorf("failed to register daily-trend service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "unique-assignees", json.Unmarshal, json.Marshal, m.uniqueAssignees,
	); err != nil {
		return fmt.Errorf("failed to register unique-assignees service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "task-stats", json.Unmarshal, json.Marshal, m.taskStats,
	); err != nil {
		return fmt.Errorf("failed to register task-stats service: %w", err)
	}

	log.Printf("[query] Registered services: filter-tasks, daily-trend, unique-assignees, task-stats")
	return nil
}

// Start checks the module's wiring.
func (m *QueryModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	log.Println("[query] Module started (depends on: task)")
	return nil
}

// Stop shuts down the module.
func (m *QueryModule) Stop(_ context.Context) error {
	log.Println("[query] Module stopped")
	return nil
}
