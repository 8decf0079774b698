package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/persistence/model"
)

// versionRepository implements adapter.VersionRepository over the blob store.
// The marker is one plain-string blob per user.
type versionRepository struct {
	store adapter.BlobStore
}

// NewVersionRepository creates a new version repository instance.
func NewVersionRepository(store adapter.BlobStore) adapter.VersionRepository {
	return &versionRepository{store: store}
}

// LastSeenVersion returns the last version whose notes the user dismissed.
func (r *versionRepository) LastSeenVersion(ctx context.Context, userID uuid.UUID) (string, error) {
	raw, err := r.store.Get(ctx, model.KeyLastSeenVersion(userID))
	if err != nil {
		if errors.Is(err, domainerror.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(raw), nil
}

// SetLastSeenVersion records the dismissed version for the user.
func (r *versionRepository) SetLastSeenVersion(ctx context.Context, userID uuid.UUID, version string) error {
	return r.store.Set(ctx, model.KeyLastSeenVersion(userID), []byte(version))
}
