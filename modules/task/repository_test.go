package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-tracker/domain/task"
)

func demoTask(id, assigneeID string) *domain.Task {
	now := time.Now()
	return &domain.Task{
		ID:           id,
		Title:        "Task " + id,
		Description:  "Description for " + id,
		Type:         domain.TypeTask,
		Priority:     domain.PriorityMedium,
		Status:       domain.StatusOpen,
		AssigneeID:   assigneeID,
		AssigneeName: "Assignee " + assigneeID,
		ReporterID:   "user-3",
		ReporterName: "Charlie Brown",
		CreatedAt:    now,
		UpdatedAt:    now,
		TimeEntries:  []domain.TimeEntry{},
	}
}

func TestMemoryRepository_InsertionOrder(t *testing.T) {
	repo := NewMemoryTaskRepository()

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		if err := repo.Save(demoTask(id, "user-1")); err != nil {
			t.Fatalf("Save(%s) error = %v", id, err)
		}
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != len(ids) {
		t.Fatalf("FindAll() returned %d tasks, want %d", len(all), len(ids))
	}
	for i, id := range ids {
		if all[i].ID != id {
			t.Errorf("FindAll()[%d].ID = %s, want %s (insertion order)", i, all[i].ID, id)
		}
	}

	// Replacing a record must not move it.
	updated := demoTask("c", "user-1")
	updated.Title = "renamed"
	if err := repo.Save(updated); err != nil {
		t.Fatalf("Save(replace) error = %v", err)
	}
	all, _ = repo.FindAll()
	if all[0].ID != "c" || all[0].Title != "renamed" {
		t.Errorf("replaced task moved or kept stale fields: got %s/%s at head", all[0].ID, all[0].Title)
	}
}

func TestMemoryRepository_SnapshotIsolation(t *testing.T) {
	repo := NewMemoryTaskRepository()
	original := demoTask("task-1", "user-1")
	original.TimeEntries = []domain.TimeEntry{
		{ID: "entry-1", TaskID: "task-1", UserID: "user-1", Description: "work", Hours: 1, Date: "2026-08-29"},
	}
	if err := repo.Save(original); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the input after Save must not affect the store.
	original.Title = "mutated after save"
	original.TimeEntries[0].Hours = 99

	got, err := repo.FindByID("task-1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "Task task-1" {
		t.Errorf("store leaked caller mutation: Title = %q", got.Title)
	}
	if got.TimeEntries[0].Hours != 1 {
		t.Errorf("store leaked caller mutation: Hours = %v", got.TimeEntries[0].Hours)
	}

	// Mutating a returned snapshot must not affect the store either.
	got.Title = "mutated snapshot"
	got.TimeEntries[0].Hours = 42

	again, _ := repo.FindByID("task-1")
	if again.Title != "Task task-1" || again.TimeEntries[0].Hours != 1 {
		t.Error("snapshot mutation leaked back into the store")
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryTaskRepository()
	if err := repo.Save(demoTask("task-1", "user-1")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := repo.Delete("task-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete("task-1"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("second Delete() error = %v, want ErrTaskNotFound", err)
	}

	if _, err := repo.FindByID("task-1"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrTaskNotFound", err)
	}

	all, _ := repo.FindAll()
	if len(all) != 0 {
		t.Errorf("FindAll() after delete returned %d tasks, want 0", len(all))
	}
}

func TestMemoryRepository_FindByAssignee(t *testing.T) {
	repo := NewMemoryTaskRepository()
	_ = repo.Save(demoTask("task-1", "user-1"))
	_ = repo.Save(demoTask("task-2", "user-2"))
	_ = repo.Save(demoTask("task-3", "user-1"))

	mine, err := repo.FindByAssignee("user-1")
	if err != nil {
		t.Fatalf("FindByAssignee() error = %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("FindByAssignee() returned %d tasks, want 2", len(mine))
	}
	if mine[0].ID != "task-1" || mine[1].ID != "task-3" {
		t.Errorf("FindByAssignee() order = [%s %s], want [task-1 task-3]", mine[0].ID, mine[1].ID)
	}

	none, _ := repo.FindByAssignee("user-9")
	if len(none) != 0 {
		t.Errorf("FindByAssignee(unknown) returned %d tasks, want 0", len(none))
	}
}

func TestMemoryRepository_Count(t *testing.T) {
	repo := NewMemoryTaskRepository()

	count, err := repo.Count()
	if err != nil || count != 0 {
		t.Fatalf("Count() = %d, %v; want 0, nil", count, err)
	}

	_ = repo.Save(demoTask("task-1", "user-1"))
	_ = repo.Save(demoTask("task-2", "user-1"))

	count, _ = repo.Count()
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
