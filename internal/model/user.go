package model

// Role values assigned by the backend.
const (
	// RoleUser is the default role for newly registered accounts.
	RoleUser = "user"
	// RoleAdmin grants access to category and user management.
	RoleAdmin = "admin"
)

// User represents an account as echoed by the backend. The client only ever
// holds a transient copy: the authenticated user lives in the session state,
// and the admin user list is fetched fresh on demand.
type User struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	ID    int    `json:"id"`
}

// IsAdmin reports whether the user may call admin-only endpoints.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
