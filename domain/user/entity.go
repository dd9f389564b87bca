// Package user provides the user domain entity and roles.
package user

// Role determines what a user may do with tasks.
type Role string

const (
	// RoleDeveloper can work on tasks assigned to them.
	RoleDeveloper Role = "developer"
	// RoleManager can see all tasks and approve or reopen completed work.
	RoleManager Role = "manager"
)

// IsValid returns true if the role is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleDeveloper, RoleManager:
		return true
	default:
		return false
	}
}

// User is a demo fixture account. Users are seeded at startup and never mutated.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsManager returns true if the user holds the manager role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
