// Package repository implements data access over the shared *sql.DB
// pool. Sentinel errors defined here let handlers translate storage
// failures into the right HTTP status without inspecting driver
// internals.
package repository

import "errors"

// ErrEmailExists is returned when a registration collides with an
// existing email. The unique index on users.email is the real
// guarantee; the application-level check only produces a friendlier
// error for the common case.
var ErrEmailExists = errors.New("email already exists")

// ErrProfileNotFound is returned when a user has no profile row.
// Handlers translate this into an HTTP 404 response.
var ErrProfileNotFound = errors.New("profile not found")
