package domain

import (
	"strings"
	"time"
)

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole converts a raw string into a Role. Unknown values are rejected
// so a forged or corrupted claim can never widen into a valid role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// Status is the account lifecycle state. An inactive account is hidden from
// normal use in the admin dashboard but is still allowed to authenticate;
// status gates moderation visibility, not login.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User models an account in the system. PasswordHash is write-only from the
// API's perspective and never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLogin    time.Time `json:"last_login,omitempty"`
}

// WithoutHash returns a copy of the user with the password hash stripped,
// safe to attach to a request scope or echo back to a client.
func (u *User) WithoutHash() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// NormalizeEmail canonicalizes an email for storage and lookup. Uniqueness
// is enforced over the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
