package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AuthModule provides the identity services: demo login, explicit sessions
// and fixture user lookup.
type AuthModule struct {
	repo     *UserRepository
	sessions *SessionManager
}

// Compile-time interface checks.
var _ mono.Module = (*AuthModule)(nil)
var _ mono.ServiceProviderModule = (*AuthModule)(nil)

// NewModule creates a new AuthModule.
func NewModule() *AuthModule {
	return &AuthModule{
		repo:     NewUserRepository(),
		sessions: NewSessionManager(),
	}
}

// Name returns the module name.
func (m *AuthModule) Name() string {
	return "auth"
}

// RegisterServices registers the identity request-reply services.
func (m *AuthModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.login,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "logout", json.Unmarshal, json.Marshal, m.logout,
	); err != nil {
		return fmt.Errorf("failed to register logout service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "current-user", json.Unmarshal, json.Marshal, m.currentUser,
	); err != nil {
		return fmt.Errorf("failed to register current-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.getUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	log.Printf("[auth] Registered services: login, logout, current-user, get-user")
	return nil
}

// Start seeds the demo fixture users.
func (m *AuthModule) Start(_ context.Context) error {
	m.repo.SeedDemoUsers()
	log.Println("[auth] Module started with demo users")
	return nil
}

// Stop shuts down the module.
func (m *AuthModule) Stop(_ context.Context) error {
	log.Println("[auth] Module stopped")
	return nil
}
