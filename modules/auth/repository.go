package auth

import (
	"sync"

	"github.com/example/task-tracker/domain/user"
)

// UserRepository provides in-memory storage for the immutable fixture users.
type UserRepository struct {
	users map[string]*user.User
	mu    sync.RWMutex
}

// NewUserRepository creates a new user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*user.User),
	}
}

// SeedDemoUsers adds the demo fixture users to the repository.
func (r *UserRepository) SeedDemoUsers() {
	r.mu.Lock()
	defer r.mu.Unlock()

	demoUsers := []*user.User{
		{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com", Role: user.RoleDeveloper},
		{ID: "user-2", Name: "Bob Smith", Email: "bob@example.com", Role: user.RoleDeveloper},
		{ID: "user-3", Name: "Charlie Brown", Email: "charlie@example.com", Role: user.RoleManager},
	}

	for _, u := range demoUsers {
		r.users[u.ID] = u
	}
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(userID string) (*user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, found := r.users[userID]
	return u, found
}

// FindByEmail finds a user by email.
func (r *UserRepository) FindByEmail(email string) (*user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}
