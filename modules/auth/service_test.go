package auth

import (
	"context"
	"testing"

	"github.com/example/task-tracker/domain/user"
)

func newTestModule() *AuthModule {
	m := NewModule()
	m.repo.SeedDemoUsers()
	return m
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		authenticated bool
		wantUserID    string
	}{
		{"developer logs in", "alice@example.com", "password123", true, "user-1"},
		{"manager logs in", "charlie@example.com", "password123", true, "user-3"},
		{"wrong password", "alice@example.com", "hunter2", false, ""},
		{"unknown email", "mallory@example.com", "password123", false, ""},
		{"empty credentials", "", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModule()

			resp, err := m.login(context.Background(), LoginRequest{Email: tt.email, Password: tt.password}, nil)
			if err != nil {
				t.Fatalf("login() error = %v, failed credentials must not be errors", err)
			}

			if resp.Authenticated != tt.authenticated {
				t.Fatalf("Authenticated = %v, want %v", resp.Authenticated, tt.authenticated)
			}
			if !tt.authenticated {
				if resp.SessionID != "" || resp.User != nil {
					t.Error("rejected login leaked a session or user")
				}
				return
			}
			if resp.SessionID == "" {
				t.Error("successful login returned no session token")
			}
			if resp.User == nil || resp.User.ID != tt.wantUserID {
				t.Errorf("User = %+v, want id %s", resp.User, tt.wantUserID)
			}
		})
	}
}

func TestLogin_SessionsAreIndependent(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()

	first, _ := m.login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"}, nil)
	second, _ := m.login(ctx, LoginRequest{Email: "bob@example.com", Password: "password123"}, nil)

	if first.SessionID == second.SessionID {
		t.Fatal("two logins shared a session token")
	}

	resp, _ := m.currentUser(ctx, CurrentUserRequest{SessionID: first.SessionID}, nil)
	if !resp.Authenticated || resp.User.ID != "user-1" {
		t.Errorf("first session resolved to %+v, want user-1", resp.User)
	}
	resp, _ = m.currentUser(ctx, CurrentUserRequest{SessionID: second.SessionID}, nil)
	if !resp.Authenticated || resp.User.ID != "user-2" {
		t.Errorf("second session resolved to %+v, want user-2", resp.User)
	}
}

func TestLogout(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()

	login, _ := m.login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"}, nil)

	resp, err := m.logout(ctx, LogoutRequest{SessionID: login.SessionID}, nil)
	if err != nil {
		t.Fatalf("logout() error = %v", err)
	}
	if !resp.LoggedOut {
		t.Error("logout() LoggedOut = false for a live session")
	}

	// The session is gone immediately.
	current, _ := m.currentUser(ctx, CurrentUserRequest{SessionID: login.SessionID}, nil)
	if current.Authenticated {
		t.Error("session still resolves after logout")
	}

	// Logging out again reports false without an error.
	resp, err = m.logout(ctx, LogoutRequest{SessionID: login.SessionID}, nil)
	if err != nil {
		t.Fatalf("second logout() error = %v", err)
	}
	if resp.LoggedOut {
		t.Error("second logout() LoggedOut = true, want false")
	}
}

func TestCurrentUser_UnknownSession(t *testing.T) {
	m := newTestModule()

	resp, err := m.currentUser(context.Background(), CurrentUserRequest{SessionID: "not-a-session"}, nil)
	if err != nil {
		t.Fatalf("currentUser() error = %v", err)
	}
	if resp.Authenticated || resp.User != nil {
		t.Errorf("currentUser(unknown) = %+v, want unauthenticated", resp)
	}
}

func TestGetUser(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()

	resp, err := m.getUser(ctx, GetUserRequest{UserID: "user-3"}, nil)
	if err != nil {
		t.Fatalf("getUser() error = %v", err)
	}
	if !resp.Found {
		t.Fatal("getUser(user-3) Found = false")
	}
	if resp.User.Name != "Charlie Brown" || resp.User.Role != user.RoleManager {
		t.Errorf("getUser(user-3) = %+v, want the manager fixture", resp.User)
	}

	resp, err = m.getUser(ctx, GetUserRequest{UserID: "user-9"}, nil)
	if err != nil {
		t.Fatalf("getUser(unknown) error = %v", err)
	}
	if resp.Found || resp.User != nil {
		t.Errorf("getUser(unknown) = %+v, want not found", resp)
	}
}
