package domain

import (
	"strings"
	"time"
)

// Role names form a closed set; they are seeded once and never extended at runtime.
const (
	RoleUser      = "ROLE_USER"
	RoleModerator = "ROLE_MODERATOR"
	RoleAdmin     = "ROLE_ADMIN"
)

// Role is immutable reference data with a stable integer identifier.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ResolveRoleName maps a signup role token (e.g. "admin", "mod", "user",
// case-insensitive) to its canonical role name. ok=false means the token is
// not part of the closed enumeration.
func ResolveRoleName(token string) (name string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "user":
		return RoleUser, true
	case "mod", "moderator":
		return RoleModerator, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User models a registered account. Roles is non-empty after registration and
// never mutates afterwards.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the given role name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the user's role names in stored order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
