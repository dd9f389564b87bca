package auth

import (
	"context"

	"github.com/example/task-tracker/domain/user"
)

// LoginRequest is the request for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the response for logging in. A failed login is not an
// error: Authenticated is false and the other fields are empty.
type LoginResponse struct {
	Authenticated bool       `json:"authenticated"`
	SessionID     string     `json:"session_id,omitempty"`
	User          *user.User `json:"user,omitempty"`
}

// LogoutRequest is the request for logging out.
type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

// LogoutResponse is the response for logging out.
type LogoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}

// CurrentUserRequest is the request for resolving a session to its user.
type CurrentUserRequest struct {
	SessionID string `json:"session_id"`
}

// CurrentUserResponse is the response for resolving a session.
// Authenticated doubles as the isAuthenticated check.
type CurrentUserResponse struct {
	Authenticated bool       `json:"authenticated"`
	User          *user.User `json:"user,omitempty"`
}

// GetUserRequest is the request for looking up a fixture user by id.
type GetUserRequest struct {
	UserID string `json:"user_id"`
}

// GetUserResponse is the response for looking up a fixture user.
type GetUserResponse struct {
	User  *user.User `json:"user,omitempty"`
	Found bool       `json:"found"`
}

// AuthPort defines the interface other modules use to resolve sessions and
// look up users (hexagonal port).
type AuthPort interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*user.User, bool, error)
	GetUser(ctx context.Context, userID string) (*user.User, bool, error)
}
