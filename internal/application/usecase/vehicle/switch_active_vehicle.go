package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// SwitchActiveVehicleInput represents the input for switching the active vehicle.
type SwitchActiveVehicleInput struct {
	UserID    uuid.UUID
	VehicleID uuid.UUID
}

// SwitchActiveVehicleUseCase makes one vehicle active and deactivates the
// user's others, atomically with respect to the single-active invariant.
type SwitchActiveVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewSwitchActiveVehicleUseCase creates a new SwitchActiveVehicleUseCase instance.
func NewSwitchActiveVehicleUseCase(vehicleRepo adapter.VehicleRepository) *SwitchActiveVehicleUseCase {
	return &SwitchActiveVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute performs the switch. The repository enforces atomicity: either the
// target becomes the only active vehicle of the user, or nothing changes.
func (uc *SwitchActiveVehicleUseCase) Execute(ctx context.Context, input SwitchActiveVehicleInput) error {
	err := uc.vehicleRepo.SetActive(ctx, input.UserID, input.VehicleID)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrVehicleNotFound):
			return domainerror.NewVehicleError(
				domainerror.ErrCodeVehicleNotFound,
				"vehicle not found",
				domainerror.ErrVehicleNotFound,
			)
		case errors.Is(err, domainerror.ErrVehicleNotOwnedByUser):
			return domainerror.NewVehicleError(
				domainerror.ErrCodeVehicleNotOwned,
				"vehicle does not belong to user",
				domainerror.ErrVehicleNotOwnedByUser,
			)
		default:
			return fmt.Errorf("failed to switch active vehicle: %w", err)
		}
	}
	return nil
}
