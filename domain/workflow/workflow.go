// Package workflow centralizes the task status state machine and the
// role-based permission predicates. The same table answers both "which
// actions should a UI offer" and "is this mutation authorized", so the two
// can never disagree.
package workflow

import (
	"fmt"

	"github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/domain/user"
)

// permission identifies who may request a transition.
type permission int

const (
	// assigneeOrManager allows the task's assignee or any manager.
	assigneeOrManager permission = iota
	// managerOnly allows managers only.
	managerOnly
)

type transition struct {
	from task.Status
	to   task.Status
}

// transitions is the authoritative table of legal status changes.
var transitions = map[transition]permission{
	{task.StatusOpen, task.StatusInProgress}:            assigneeOrManager,
	{task.StatusInProgress, task.StatusPendingApproval}: assigneeOrManager,
	{task.StatusPendingApproval, task.StatusClosed}:     managerOnly,
	{task.StatusPendingApproval, task.StatusReopened}:   managerOnly,
	{task.StatusReopened, task.StatusInProgress}:        assigneeOrManager,
}

// CanTransition reports whether actor may move t from its current status to
// the requested one. It returns task.ErrInvalidTransition (wrapped with
// detail) when the transition is missing from the table or the actor lacks
// the required role or relationship to the task.
func CanTransition(t *task.Task, actor *user.User, to task.Status) error {
	perm, ok := transitions[transition{t.Status, to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", task.ErrInvalidTransition, t.Status, to)
	}

	switch perm {
	case managerOnly:
		if !actor.IsManager() {
			return fmt.Errorf("%w: %s -> %s requires manager role", task.ErrInvalidTransition, t.Status, to)
		}
	case assigneeOrManager:
		if actor.ID != t.AssigneeID && !actor.IsManager() {
			return fmt.Errorf("%w: %s -> %s requires assignee or manager", task.ErrInvalidTransition, t.Status, to)
		}
	}
	return nil
}

// AvailableTransitions lists the statuses actor may move t to from its
// current status. A UI renders its action buttons from this list.
func AvailableTransitions(t *task.Task, actor *user.User) []task.Status {
	var out []task.Status
	for tr := range transitions {
		if tr.from != t.Status {
			continue
		}
		if CanTransition(t, actor, tr.to) == nil {
			out = append(out, tr.to)
		}
	}
	return out
}

// CanEdit reports whether actor may modify the task's free-form fields
// (title, description, type, priority, assignee, due date) or log time
// against it. Editing is allowed for the assignee or a manager.
func CanEdit(t *task.Task, actor *user.User) bool {
	return actor.ID == t.AssigneeID || actor.IsManager()
}

// CanDelete reports whether actor may delete the task. Deletion is allowed
// for the reporter or a manager, and never for closed tasks: a closed task
// is a historical record.
func CanDelete(t *task.Task, actor *user.User) bool {
	if t.Status == task.StatusClosed {
		return false
	}
	return actor.ID == t.ReporterID || actor.IsManager()
}
