// internal/pkg/errs/errors.go
package errs

import "errors"

// Failure classes surfaced at the screen boundary. Services wrap these
// with fmt.Errorf("...: %w", ...) so callers can classify with errors.Is
// while keeping a user-facing message.
var (
	// ErrNotAuthenticated means no user session is available for an
	// operation that requires one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound means a remote lookup missed, including the shared
	// invalid-credentials case at login.
	ErrNotFound = errors.New("not found")

	// ErrNetwork means a remote call failed in transport or returned an
	// unexpected status.
	ErrNetwork = errors.New("network failure")

	// ErrValidation means input was rejected before any remote call.
	ErrValidation = errors.New("validation failed")
)
