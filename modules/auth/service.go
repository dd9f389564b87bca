package auth

import (
	"context"

	"github.com/go-monolith/mono"
)

// demoPassword is the fixed demo secret every fixture account shares. This is
// a demo login, not an authentication scheme.
const demoPassword = "password123"

// login handles the login service request. A wrong email or password yields
// an unauthenticated response, never an error: there is no lockout and no
// rate limiting.
func (m *AuthModule) login(_ context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	u, found := m.repo.FindByEmail(req.Email)
	if !found || req.Password != demoPassword {
		return LoginResponse{Authenticated: false}, nil
	}

	sessionID := m.sessions.Create(u)
	return LoginResponse{
		Authenticated: true,
		SessionID:     sessionID,
		User:          u,
	}, nil
}

// logout handles the logout service request.
func (m *AuthModule) logout(_ context.Context, req LogoutRequest, _ *mono.Msg) (LogoutResponse, error) {
	return LogoutResponse{LoggedOut: m.sessions.Destroy(req.SessionID)}, nil
}

// currentUser handles the current-user service request.
func (m *AuthModule) currentUser(_ context.Context, req CurrentUserRequest, _ *mono.Msg) (CurrentUserResponse, error) {
	u, found := m.sessions.Resolve(req.SessionID)
	if !found {
		return CurrentUserResponse{Authenticated: false}, nil
	}
	return CurrentUserResponse{Authenticated: true, User: u}, nil
}

// getUser handles the get-user service request.
func (m *AuthModule) getUser(_ context.Context, req GetUserRequest, _ *mono.Msg) (GetUserResponse, error) {
	u, found := m.repo.FindByID(req.UserID)
	if !found {
		return GetUserResponse{Found: false}, nil
	}
	return GetUserResponse{User: u, Found: true}, nil
}
