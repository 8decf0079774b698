// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle persistence operations.
type VehicleRepository interface {
	// FindByID retrieves a vehicle by ID, or domain ErrVehicleNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindByUserID retrieves all vehicles belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error)

	// Create appends a new vehicle to the collection.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// Update overwrites an existing vehicle, or domain ErrVehicleNotFound.
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// SetActive marks the given vehicle active and every other vehicle of the
	// same user inactive, in one atomic write. Returns domain
	// ErrVehicleNotFound when the vehicle does not exist and
	// ErrVehicleNotOwnedByUser when it belongs to another user.
	SetActive(ctx context.Context, userID, vehicleID uuid.UUID) error
}
