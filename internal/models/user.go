package models

import "time"

// User roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User is an account allowed to operate on the inventory. The set of users
// is fixed and seeded at startup; there is no user-management surface.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	LastLogin    time.Time `json:"last_login"`
	IsActive     bool      `json:"is_active"`
}
