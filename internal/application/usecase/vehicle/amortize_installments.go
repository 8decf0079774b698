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

// AmortizeInstallmentsInput represents the input for debt amortization.
type AmortizeInstallmentsInput struct {
	UserID    uuid.UUID
	VehicleID uuid.UUID
	// PaidInstallments is how many installments the extra payment covered.
	PaidInstallments int
	// NewInstallmentValue optionally replaces the installment value after a
	// renegotiation. Ignored on full payoff.
	NewInstallmentValue *decimal.Decimal
}

// AmortizeInstallmentsOutput represents the output of debt amortization.
type AmortizeInstallmentsOutput struct {
	Vehicle *entity.Vehicle
	// PaidOff is true when the amortization covered all remaining
	// installments and the vehicle became fully owned.
	PaidOff bool
}

// AmortizeInstallmentsUseCase advances a financed vehicle's paid-installment
// counter, optionally renegotiating the installment value, and flips the
// vehicle to fully owned when the debt is cleared. Already-scheduled future
// installment transactions are not rewritten; they keep the amount and count
// they were materialized with.
type AmortizeInstallmentsUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewAmortizeInstallmentsUseCase creates a new AmortizeInstallmentsUseCase instance.
func NewAmortizeInstallmentsUseCase(vehicleRepo adapter.VehicleRepository) *AmortizeInstallmentsUseCase {
	return &AmortizeInstallmentsUseCase{vehicleRepo: vehicleRepo}
}

// Execute performs the amortization.
func (uc *AmortizeInstallmentsUseCase) Execute(ctx context.Context, input AmortizeInstallmentsInput) (*AmortizeInstallmentsOutput, error) {
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

	terms := vehicle.Ownership.Financed
	if vehicle.Ownership.Status != entity.OwnershipFinanced || terms == nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeVehicleNotFinanced,
			"only financed vehicles can be amortized",
			domainerror.ErrVehicleNotFinanced,
		)
	}

	if input.PaidInstallments <= 0 {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidInstallments,
			"paid installment count must be positive",
			domainerror.ErrInvalidInstallments,
		)
	}

	remaining := terms.RemainingInstallments()
	paidOff := input.PaidInstallments >= remaining

	if paidOff {
		// Full payoff: the debt profile collapses and the vehicle becomes
		// fully owned. The market value stays unset until the driver edits it.
		vehicle.Ownership = entity.Ownership{
			Status: entity.OwnershipOwned,
			Owned:  &entity.OwnedTerms{},
		}
	} else {
		terms.InstallmentsPaid += input.PaidInstallments
		if input.NewInstallmentValue != nil && input.NewInstallmentValue.IsPositive() {
			terms.InstallmentValue = *input.NewInstallmentValue
		}
	}

	vehicle.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return &AmortizeInstallmentsOutput{
		Vehicle: vehicle,
		PaidOff: paidOff,
	}, nil
}
