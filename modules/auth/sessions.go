package auth

import (
	"sync"

	"github.com/example/task-tracker/domain/user"
	"github.com/google/uuid"
)

// SessionManager holds the logged-in sessions. Each successful login creates
// an explicit session token; callers pass the token with every request
// instead of relying on ambient "current user" state, so several sessions
// can coexist and tests can run isolated actors.
type SessionManager struct {
	sessions map[string]*user.User
	mu       sync.RWMutex
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*user.User),
	}
}

// Create opens a session for u and returns its token.
func (s *SessionManager) Create(u *user.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.sessions[id] = u
	return id
}

// Resolve returns the user behind a session token.
func (s *SessionManager) Resolve(sessionID string) (*user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, found := s.sessions[sessionID]
	return u, found
}

// Destroy removes a session. Destroying an unknown token reports false.
func (s *SessionManager) Destroy(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.sessions[sessionID]; !found {
		return false
	}
	delete(s.sessions, sessionID)
	return true
}
