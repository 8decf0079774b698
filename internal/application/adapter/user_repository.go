// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// FindByID retrieves a user by ID, or domain ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, or domain ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save creates the user or overwrites an existing record with the same ID.
	Save(ctx context.Context, user *entity.User) error
}
