package evaluator

import (
	"github.com/google/uuid"
)

// User represents a principal acting on the review API. Full account
// management is out of scope; the system only needs identity and a
// binary reviewer capability at the quote transition boundary.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Role  Role      `json:"role"`
}

// Role represents a user's capability level.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the user may review defects and transition
// quotes (approve, invoice). All other roles may view but not transition.
func (u *User) CanReview() bool {
	return u.Role == RoleReviewer || u.Role == RoleAdmin
}
