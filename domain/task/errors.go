package task

import "errors"

// Sentinel errors for task operations. A failed call leaves the store
// unchanged; nothing is retried.
var (
	// ErrTaskNotFound is returned when the referenced task id does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTransition is returned when a status change is not permitted
	// from the current state or for the caller's role.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation is returned for malformed input such as an empty title
	// or out-of-range hours.
	ErrValidation = errors.New("validation failed")

	// ErrPermissionDenied is returned when the caller is neither related to
	// the task nor a manager.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotAuthenticated is returned when a call carries no valid session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
