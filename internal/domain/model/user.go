package model

import "time"

// Role determines which endpoints a principal may call.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered customer or administrator together with the
// loyalty state attached to the account.
type User struct {
	ID            int64
	Login         string
	PasswordHash  string
	Role          Role
	Points        int64
	LifetimeSpend float64
	TierID        int64
	CreatedAt     time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
