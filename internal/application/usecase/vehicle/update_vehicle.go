package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// UpdateVehicleInput represents the input for vehicle settings updates.
// Pointer fields are applied only when present; ClearCustomDailyGoal removes
// the per-vehicle goal override.
type UpdateVehicleInput struct {
	UserID               uuid.UUID
	VehicleID            uuid.UUID
	CustomDailyGoal      *decimal.Decimal
	ClearCustomDailyGoal bool
	CustomMaintRate      *decimal.Decimal
	Insurance            *entity.InsurancePolicy
	CurrentKm            *float64
}

// UpdateVehicleOutput represents the output of a vehicle settings update.
type UpdateVehicleOutput struct {
	Vehicle *entity.Vehicle
}

// UpdateVehicleUseCase handles driver-editable vehicle settings.
type UpdateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewUpdateVehicleUseCase creates a new UpdateVehicleUseCase instance.
func NewUpdateVehicleUseCase(vehicleRepo adapter.VehicleRepository) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute performs the update.
func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, input UpdateVehicleInput) (*UpdateVehicleOutput, error) {
	vehicle, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrVehicleNotFound) {
			return nil, domainerror.NewVehicleError(
				domainerror.ErrCodeVehicleNotFound,
				"vehicle not found",
				domainerror.ErrVehicleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}

	if vehicle.UserID != input.UserID {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotOwned,
			"vehicle does not belong to user",
			domainerror.ErrVehicleNotOwnedByUser,
		)
	}

	if input.ClearCustomDailyGoal {
		vehicle.CustomDailyGoal = nil
	} else if input.CustomDailyGoal != nil {
		vehicle.CustomDailyGoal = input.CustomDailyGoal
	}

	if input.CustomMaintRate != nil {
		vehicle.CustomMaintRate = input.CustomMaintRate
	}

	if input.Insurance != nil {
		if err := validateInsurance(input.Insurance); err != nil {
			return nil, err
		}
		vehicle.Insurance = input.Insurance
	}

	if input.CurrentKm != nil {
		vehicle.CurrentKm = input.CurrentKm
	}

	vehicle.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return &UpdateVehicleOutput{Vehicle: vehicle}, nil
}
