// models/user.go
package models

import "time"

// Roles a platform account can hold.
const (
	RoleCustomer = "customer"
	RoleCleaner  = "cleaner"
)

// User represents a platform user as returned by the backend.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	ProfilePic    string    `json:"profile_pic,omitempty"`
	EmailVerified bool      `json:"email_verified,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// IsCleaner reports whether the account is a cleaner account.
func (u *User) IsCleaner() bool {
	return u.Role == RoleCleaner
}
