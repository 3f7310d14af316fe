package storage

import "errors"

// Sentinel errors returned by Store implementations. Implementations wrap
// these with context, so callers branch with errors.Is rather than by
// parsing message text.
var (
	// ErrDuplicateName is returned when a customer name violates the
	// uniqueness constraint.
	ErrDuplicateName = errors.New("name already exists")

	// ErrNotFound is returned when an operation targets a row that does
	// not exist and the operation is not defined as a no-op for it.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable marks faults of the storage engine itself
	// (I/O errors, corrupt database), as opposed to domain outcomes like
	// a duplicate name.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
