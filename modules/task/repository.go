package task

import (
	"sync"

	domain "github.com/example/task-tracker/domain/task"
)

// TaskRepository abstracts task storage so a persistent backend can be
// substituted without touching the service layer. All methods return deep
// copies; caller mutation never leaks into the store.
type TaskRepository interface {
	// Save inserts the task or replaces an existing record with the same id.
	// Insertion order is preserved across replacements.
	Save(t *domain.Task) error
	// FindByID returns the task or domain.ErrTaskNotFound.
	FindByID(id string) (*domain.Task, error)
	// Delete removes the task or returns domain.ErrTaskNotFound.
	Delete(id string) error
	// FindAll returns every task in insertion order.
	FindAll() ([]*domain.Task, error)
	// FindByAssignee returns the tasks assigned to one user, insertion order.
	FindByAssignee(assigneeID string) ([]*domain.Task, error)
	// Count returns the number of stored tasks.
	Count() (int64, error)
}

// MemoryTaskRepository provides in-memory task storage. This is the default
// backend; all state is lost on restart, which is a deliberate demo property.
type MemoryTaskRepository struct {
	tasks map[string]*domain.Task
	order []string
	mu    sync.RWMutex
}

var _ TaskRepository = (*MemoryTaskRepository)(nil)

// NewMemoryTaskRepository creates an empty in-memory task repository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[string]*domain.Task),
	}
}

// Save inserts or replaces a task, keeping insertion order stable.
func (r *MemoryTaskRepository) Save(t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.tasks[t.ID] = t.Clone()
	return nil
}

// FindByID finds a task by ID.
func (r *MemoryTaskRepository) FindByID(id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, found := r.tasks[id]
	if !found {
		return nil, domain.ErrTaskNotFound
	}
	return t.Clone(), nil
}

// Delete deletes a task by ID.
func (r *MemoryTaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.tasks[id]; !found {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindAll returns all tasks in insertion order.
func (r *MemoryTaskRepository) FindAll() ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Task, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.tasks[id].Clone())
	}
	return result, nil
}

// FindByAssignee returns all tasks assigned to one user, insertion order.
func (r *MemoryTaskRepository) FindByAssignee(assigneeID string) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Task
	for _, id := range r.order {
		if t := r.tasks[id]; t.AssigneeID == assigneeID {
			result = append(result, t.Clone())
		}
	}
	return result, nil
}

// Count returns the number of stored tasks.
func (r *MemoryTaskRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.tasks)), nil
}
