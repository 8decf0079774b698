package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// RegisterVehicleInput represents the input for vehicle registration.
type RegisterVehicleInput struct {
	UserID          uuid.UUID
	Type            entity.VehicleType
	Brand           string
	Model           string
	Plate           string
	Year            string
	ModelYear       string
	Ownership       entity.Ownership
	Insurance       *entity.InsurancePolicy
	Purchase        *entity.PurchaseInfo
	CustomDailyGoal *decimal.Decimal
	CustomMaintRate *decimal.Decimal
	CurrentKm       *float64
}

// RegisterVehicleOutput represents the output of vehicle registration.
type RegisterVehicleOutput struct {
	Vehicle   *entity.Vehicle
	Scheduled []*entity.Transaction
}

// RegisterVehicleUseCase handles vehicle onboarding: validation, activation
// of the user's first vehicle and materialization of future obligations.
type RegisterVehicleUseCase struct {
	vehicleRepo     adapter.VehicleRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewRegisterVehicleUseCase creates a new RegisterVehicleUseCase instance.
func NewRegisterVehicleUseCase(vehicleRepo adapter.VehicleRepository, transactionRepo adapter.TransactionRepository) *RegisterVehicleUseCase {
	return &RegisterVehicleUseCase{
		vehicleRepo:     vehicleRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the vehicle registration.
func (uc *RegisterVehicleUseCase) Execute(ctx context.Context, input RegisterVehicleInput) (*RegisterVehicleOutput, error) {
	plate := entity.NormalizePlate(input.Plate)
	if !entity.ValidPlate(plate) {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidPlate,
			"plate must be 7 alphanumeric characters",
			domainerror.ErrInvalidPlate,
		)
	}

	if err := validateOwnership(input.Ownership); err != nil {
		return nil, err
	}
	if err := validateInsurance(input.Insurance); err != nil {
		return nil, err
	}

	existing, err := uc.vehicleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	for _, v := range existing {
		if v.Plate == plate {
			return nil, domainerror.NewVehicleError(
				domainerror.ErrCodeDuplicatePlate,
				"plate already registered for this user",
				domainerror.ErrDuplicatePlate,
			)
		}
	}

	vehicle := entity.NewVehicle(input.UserID, input.Type, input.Brand, input.Model, plate, input.Ownership)
	vehicle.Year = input.Year
	vehicle.ModelYear = input.ModelYear
	vehicle.Insurance = input.Insurance
	vehicle.Purchase = input.Purchase
	vehicle.CustomDailyGoal = input.CustomDailyGoal
	vehicle.CustomMaintRate = input.CustomMaintRate
	vehicle.CurrentKm = input.CurrentKm
	// The first vehicle of a user becomes the active one.
	vehicle.IsActive = len(existing) == 0

	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	scheduled := ScheduleObligations(vehicle, uc.now())
	if len(scheduled) > 0 {
		if err := uc.transactionRepo.CreateBatch(ctx, scheduled); err != nil {
			return nil, fmt.Errorf("failed to schedule obligations: %w", err)
		}
	}

	return &RegisterVehicleOutput{
		Vehicle:   vehicle,
		Scheduled: scheduled,
	}, nil
}

// validateOwnership checks the internal consistency of the tagged variant.
func validateOwnership(ownership entity.Ownership) error {
	invalid := func(message string) error {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidOwnershipProfile,
			message,
			domainerror.ErrInvalidOwnershipProfile,
		)
	}

	switch ownership.Status {
	case entity.OwnershipOwned:
		return nil
	case entity.OwnershipFinanced:
		terms := ownership.Financed
		if terms == nil {
			return invalid("financed vehicle requires financing terms")
		}
		if terms.TotalInstallments <= 0 || terms.InstallmentsPaid < 0 || terms.InstallmentsPaid > terms.TotalInstallments {
			return domainerror.NewVehicleError(
				domainerror.ErrCodeInvalidInstallments,
				"installments paid must be between 0 and the total",
				domainerror.ErrInvalidInstallments,
			)
		}
		if !terms.InstallmentValue.IsPositive() {
			return invalid("installment value must be positive")
		}
		if terms.DueDay < 1 || terms.DueDay > 31 {
			return domainerror.NewVehicleError(
				domainerror.ErrCodeInvalidDueDay,
				"financing due day must be between 1 and 31",
				domainerror.ErrInvalidDueDay,
			)
		}
		return nil
	case entity.OwnershipRented:
		terms := ownership.Rented
		if terms == nil {
			return invalid("rented vehicle requires rental terms")
		}
		if !terms.Value.IsPositive() {
			return invalid("rental value must be positive")
		}
		switch terms.Period {
		case entity.RentalPeriodWeekly:
			if terms.DueRef < 0 || terms.DueRef > 6 {
				return domainerror.NewVehicleError(
					domainerror.ErrCodeInvalidDueDay,
					"weekly rent due weekday must be between 0 and 6",
					domainerror.ErrInvalidDueDay,
				)
			}
		case entity.RentalPeriodMonthly:
			if terms.DueRef < 1 || terms.DueRef > 31 {
				return domainerror.NewVehicleError(
					domainerror.ErrCodeInvalidDueDay,
					"monthly rent due day must be between 1 and 31",
					domainerror.ErrInvalidDueDay,
				)
			}
		default:
			return invalid("rental period must be 'semanal' or 'mensal'")
		}
		return nil
	default:
		return invalid("ownership status must be 'proprio', 'financiado' or 'alugado'")
	}
}

// validateInsurance checks the optional insurance attachment.
func validateInsurance(insurance *entity.InsurancePolicy) error {
	if insurance == nil {
		return nil
	}
	if !insurance.Value.IsPositive() || insurance.Installments <= 0 || insurance.DueDay < 1 || insurance.DueDay > 31 {
		return domainerror.NewVehicleError(
			domainerror.ErrCodeInvalidInsurance,
			"insurance requires a positive premium, installment count and due day between 1 and 31",
			domainerror.ErrInvalidInsurance,
		)
	}
	return nil
}
