package model

import "time"

// Roles a user can hold. The role is fixed at registration and
// never changed by any endpoint.
const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
	RoleBuddy     = "buddy"
)

// ValidRole reports whether s is one of the supported account roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleTherapist || s == RoleBuddy
}

// User represents a row in the `users` table. PasswordHash is
// internal to the repository and auth handlers; it must never
// appear in a response body or a log line.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique, lower-cased email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – account role (user, therapist or buddy).
//  IsActive     – whether the account is active; toggled by an
//                 out-of-band admin process, never by the API.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
