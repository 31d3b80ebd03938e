package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionClaims is the identity carried inside a signed session token.
// It is never persisted.
type SessionClaims struct {
	UserID    string
	Name      string
	Role      string
	ExpiresAt time.Time
}

// IsAdmin reports whether the claims carry the admin role.
func (c *SessionClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
