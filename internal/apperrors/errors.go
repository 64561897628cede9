package apperrors

import "errors"

// Sentinel errors for the failure conditions the controllers must tell apart.
// Repositories and services wrap these with fmt.Errorf("...: %w", err) so callers
// can match with errors.Is while keeping context in the message.
var (
	// ErrNotFound means a referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor is authenticated but not allowed.
	ErrForbidden = errors.New("access denied")

	// ErrUnauthenticated means no or invalid credentials/token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrEmailTaken means a registration used an email that already exists.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrServiceUnavailable means a booking targeted an inactive service.
	ErrServiceUnavailable = errors.New("this service is currently unavailable")

	// ErrInvalidStatus means a booking status value outside the known set.
	ErrInvalidStatus = errors.New("invalid booking status")
)
