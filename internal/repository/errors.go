// Package repository encapsulates all SQL against the users, mechanics
// and reviews tables. Repositories are stateless: each holds only the
// shared *sql.DB handle, so they are safe for concurrent use. Sentinel
// errors defined here let handlers translate failure scenarios into
// HTTP status codes without inspecting driver errors.
package repository

import "errors"

// ErrUsernameExists is returned when an insert collides with the unique
// username (or email) index. Handlers should translate this into an
// HTTP 400 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrInvalidCredentials is returned for both an unknown username and a
// failed password check, so callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")
