// Package error defines domain-specific errors for the Motorista Real backend.
package error

import "errors"

// Blob store errors.
var (
	// ErrKeyNotFound is returned when a blob key has never been written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreConflict is returned when an optimistic read-modify-write
	// lost the race and should be retried by the caller.
	ErrStoreConflict = errors.New("concurrent store update conflict")
)
