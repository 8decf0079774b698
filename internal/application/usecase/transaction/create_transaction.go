// Package transaction contains ledger entry use cases.
package transaction

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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID    uuid.UUID
	VehicleID uuid.UUID
	Type      entity.TransactionType
	Category  entity.Category
	Amount    decimal.Decimal
	Date      time.Time
	Odometer  *float64
	Fuel      *entity.FuelInfo
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles manual ledger entry creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	vehicleRepo     adapter.VehicleRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, vehicleRepo adapter.VehicleRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		vehicleRepo:     vehicleRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeEarning && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'earning' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.ValidCategoryForType(input.Category, input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			"category not valid for transaction type",
			domainerror.ErrInvalidCategory,
		)
	}

	if input.Fuel != nil && input.Category != entity.CategoryFuel {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeFuelInfoNotAllowed,
			"fuel details only allowed on fuel expenses",
			domainerror.ErrFuelInfoNotAllowed,
		)
	}

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

	tx := entity.NewTransaction(input.UserID, input.VehicleID, input.Type, input.Category, input.Amount, input.Date)
	tx.Odometer = input.Odometer
	tx.Fuel = input.Fuel

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// A manual financing payment counts toward the installment plan.
	if input.Type == entity.TransactionTypeExpense && input.Category == entity.CategoryFinancing {
		if terms := vehicle.Ownership.Financed; terms != nil && terms.InstallmentsPaid < terms.TotalInstallments {
			terms.InstallmentsPaid++
			vehicle.UpdatedAt = time.Now().UTC()
			if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
				return nil, fmt.Errorf("failed to advance installment counter: %w", err)
			}
		}
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
