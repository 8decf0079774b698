// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// BlobStore is the narrow persistence contract the ledger depends on: one
// serialized blob per key. Implementations must make Update a transactional
// read-modify-write so concurrent appends to the same collection cannot lose
// entries.
type BlobStore interface {
	// Get returns the blob stored under key, or domain ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Update atomically applies fn to the current blob (nil when the key is
	// absent) and stores the result. fn may be retried on write conflicts and
	// must be side-effect free.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}
