// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// VersionRepository persists which release notes a user has already dismissed.
type VersionRepository interface {
	// LastSeenVersion returns the last version whose notes the user
	// dismissed, or an empty string when none was recorded.
	LastSeenVersion(ctx context.Context, userID uuid.UUID) (string, error)

	// SetLastSeenVersion records the dismissed version for the user.
	SetLastSeenVersion(ctx context.Context, userID uuid.UUID, version string) error
}
