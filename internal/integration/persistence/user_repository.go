package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/persistence/model"
)

// userRepository implements adapter.UserRepository over the blob store. All
// accounts live in one JSON list under the users key.
type userRepository struct {
	store adapter.BlobStore
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(store adapter.BlobStore) adapter.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) load(ctx context.Context) ([]*model.UserBlob, error) {
	raw, err := r.store.Get(ctx, model.KeyUsers)
	if err != nil {
		if errors.Is(err, domainerror.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeUsers(raw)
}

func decodeUsers(raw []byte) ([]*model.UserBlob, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var blobs []*model.UserBlob
	if err := json.Unmarshal(raw, &blobs); err != nil {
		return nil, fmt.Errorf("corrupt users blob: %w", err)
	}
	return blobs, nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range blobs {
		if b.ID == id {
			return b.ToEntity(), nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range blobs {
		if b.Email == email {
			return b.ToEntity(), nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

// Save creates the user or overwrites an existing record with the same ID.
func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	return r.store.Update(ctx, model.KeyUsers, func(current []byte) ([]byte, error) {
		blobs, err := decodeUsers(current)
		if err != nil {
			return nil, err
		}

		blob := model.UserFromEntity(user)
		blob.UpdatedAt = time.Now().UTC()
		replaced := false
		for i, b := range blobs {
			if b.ID == user.ID {
				blobs[i] = blob
				replaced = true
				break
			}
		}
		if !replaced {
			blobs = append(blobs, blob)
		}
		return json.Marshal(blobs)
	})
}
