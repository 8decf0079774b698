package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
)

// ListVehiclesInput represents the input for listing a user's vehicles.
type ListVehiclesInput struct {
	UserID uuid.UUID
}

// ListVehiclesOutput represents the output of listing vehicles.
type ListVehiclesOutput struct {
	Vehicles []*entity.Vehicle
}

// ListVehiclesUseCase retrieves all vehicles of a user.
type ListVehiclesUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewListVehiclesUseCase creates a new ListVehiclesUseCase instance.
func NewListVehiclesUseCase(vehicleRepo adapter.VehicleRepository) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{vehicleRepo: vehicleRepo}
}

// Execute performs the listing.
func (uc *ListVehiclesUseCase) Execute(ctx context.Context, input ListVehiclesInput) (*ListVehiclesOutput, error) {
	vehicles, err := uc.vehicleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return &ListVehiclesOutput{Vehicles: vehicles}, nil
}
