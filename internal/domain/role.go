package domain

import "fmt"

// Role represents a user's role within their company
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleStudent       Role = "student"
	RoleGuest         Role = "guest"
	RoleVerifiedGuest Role = "verified_guest"
)

// ParseRole validates a role string coming from the wire or the database
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStudent, RoleGuest, RoleVerifiedGuest:
		return Role(s), nil
	default:
		return "", fmt.Errorf("domain: unknown role %q", s)
	}
}

// CanBook returns true for roles allowed to create bookings
// Unverified guests may not book
func (r Role) CanBook() bool {
	return r == RoleAdmin || r == RoleStudent || r == RoleVerifiedGuest
}

// IsAdmin returns true for the tenant-management role
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
