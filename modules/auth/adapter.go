package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/task-tracker/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// authAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the AuthPort interface.
type authAdapter struct {
	container mono.ServiceContainer
}

// NewAuthAdapter creates a new adapter for the identity services.
// container is the ServiceContainer from the auth module received via
// SetDependencyServiceContainer.
func NewAuthAdapter(container mono.ServiceContainer) AuthPort {
	if container == nil {
		panic("auth adapter requires non-nil ServiceContainer")
	}
	return &authAdapter{container: container}
}

// Login authenticates a fixture user via the login service.
func (a *authAdapter) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{Email: email, Password: password}
	var resp LoginResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "login", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("login service call failed: %w", err)
	}
	return &resp, nil
}

// Logout destroys a session via the logout service.
func (a *authAdapter) Logout(ctx context.Context, sessionID string) error {
	req := LogoutRequest{SessionID: sessionID}
	var resp LogoutResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "logout", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("logout service call failed: %w", err)
	}
	return nil
}

// CurrentUser resolves a session token via the current-user service.
func (a *authAdapter) CurrentUser(ctx context.Context, sessionID string) (*user.User, bool, error) {
	req := CurrentUserRequest{SessionID: sessionID}
	var resp CurrentUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "current-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, false, fmt.Errorf("current-user service call failed: %w", err)
	}
	return resp.User, resp.Authenticated, nil
}

// GetUser looks up a fixture user via the get-user service.
func (a *authAdapter) GetUser(ctx context.Context, userID string) (*user.User, bool, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-user", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, false, fmt.Errorf("get-user service call failed: %w", err)
	}
	return resp.User, resp.Found, nil
}
