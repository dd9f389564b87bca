package workflow

import (
	"errors"
	"testing"

	"github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/domain/user"
)

var (
	assignee = &user.User{ID: "user-1", Name: "Alice Johnson", Role: user.RoleDeveloper}
	outsider = &user.User{ID: "user-2", Name: "Bob Smith", Role: user.RoleDeveloper}
	manager  = &user.User{ID: "user-3", Name: "Charlie Brown", Role: user.RoleManager}
	reporter = &user.User{ID: "user-4", Name: "Dana Reyes", Role: user.RoleDeveloper}
)

func taskIn(status task.Status) *task.Task {
	return &task.Task{
		ID:         "task-1",
		Status:     status,
		AssigneeID: assignee.ID,
		ReporterID: reporter.ID,
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    task.Status
		to      task.Status
		actor   *user.User
		allowed bool
	}{
		{"assignee starts open task", task.StatusOpen, task.StatusInProgress, assignee, true},
		{"manager starts open task", task.StatusOpen, task.StatusInProgress, manager, true},
		{"outsider cannot start open task", task.StatusOpen, task.StatusInProgress, outsider, false},
		{"assignee submits for approval", task.StatusInProgress, task.StatusPendingApproval, assignee, true},
		{"manager submits for approval", task.StatusInProgress, task.StatusPendingApproval, manager, true},
		{"outsider cannot submit for approval", task.StatusInProgress, task.StatusPendingApproval, outsider, false},
		{"manager closes pending task", task.StatusPendingApproval, task.StatusClosed, manager, true},
		{"assignee cannot close pending task", task.StatusPendingApproval, task.StatusClosed, assignee, false},
		{"manager reopens pending task", task.StatusPendingApproval, task.StatusReopened, manager, true},
		{"assignee cannot reopen pending task", task.StatusPendingApproval, task.StatusReopened, assignee, false},
		{"assignee resumes reopened task", task.StatusReopened, task.StatusInProgress, assignee, true},
		{"manager resumes reopened task", task.StatusReopened, task.StatusInProgress, manager, true},

		// Transitions absent from the table are rejected for everyone.
		{"open cannot jump to closed", task.StatusOpen, task.StatusClosed, manager, false},
		{"open cannot jump to pending", task.StatusOpen, task.StatusPendingApproval, assignee, false},
		{"in-progress cannot close directly", task.StatusInProgress, task.StatusClosed, manager, false},
		{"in-progress cannot go back to open", task.StatusInProgress, task.StatusOpen, manager, false},
		{"closed is terminal", task.StatusClosed, task.StatusReopened, manager, false},
		{"closed cannot restart", task.StatusClosed, task.StatusInProgress, manager, false},
		{"reopened cannot close directly", task.StatusReopened, task.StatusClosed, manager, false},
		{"no self transition", task.StatusOpen, task.StatusOpen, manager, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(taskIn(tt.from), tt.actor, tt.to)

			if tt.allowed {
				if err != nil {
					t.Fatalf("CanTransition(%s -> %s) unexpected error: %v", tt.from, tt.to, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("CanTransition(%s -> %s) expected rejection, got nil", tt.from, tt.to)
			}
			if !errors.Is(err, task.ErrInvalidTransition) {
				t.Errorf("CanTransition(%s -> %s) error = %v, want ErrInvalidTransition", tt.from, tt.to, err)
			}
		})
	}
}

func TestAvailableTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  task.Status
		actor *user.User
		want  map[task.Status]bool
	}{
		{"assignee on open", task.StatusOpen, assignee, map[task.Status]bool{task.StatusInProgress: true}},
		{"outsider on open", task.StatusOpen, outsider, map[task.Status]bool{}},
		{"manager on pending", task.StatusPendingApproval, manager, map[task.Status]bool{task.StatusClosed: true, task.StatusReopened: true}},
		{"assignee on pending", task.StatusPendingApproval, assignee, map[task.Status]bool{}},
		{"anyone on closed", task.StatusClosed, manager, map[task.Status]bool{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableTransitions(taskIn(tt.from), tt.actor)
			if len(got) != len(tt.want) {
				t.Fatalf("AvailableTransitions() = %v, want %d entries", got, len(tt.want))
			}
			for _, status := range got {
				if !tt.want[status] {
					t.Errorf("AvailableTransitions() contains unexpected %s", status)
				}
			}
		})
	}
}

func TestCanEdit(t *testing.T) {
	open := taskIn(task.StatusOpen)

	if !CanEdit(open, assignee) {
		t.Error("assignee should be able to edit")
	}
	if !CanEdit(open, manager) {
		t.Error("manager should be able to edit")
	}
	if CanEdit(open, outsider) {
		t.Error("unrelated developer should not be able to edit")
	}
	if CanEdit(open, reporter) {
		t.Error("reporter alone should not be able to edit")
	}
}

func TestCanDelete(t *testing.T) {
	open := taskIn(task.StatusOpen)

	if !CanDelete(open, reporter) {
		t.Error("reporter should be able to delete")
	}
	if !CanDelete(open, manager) {
		t.Error("manager should be able to delete")
	}
	if CanDelete(open, assignee) {
		t.Error("assignee alone should not be able to delete")
	}

	// Closed tasks are historical records: nobody deletes them.
	closed := taskIn(task.StatusClosed)
	if CanDelete(closed, manager) {
		t.Error("closed task should not be deletable, even by a manager")
	}
	if CanDelete(closed, reporter) {
		t.Error("closed task should not be deletable by the reporter")
	}
}
