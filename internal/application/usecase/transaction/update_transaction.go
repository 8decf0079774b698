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

// UpdateTransactionInput represents the input for editing a ledger entry.
// Nil pointers leave the corresponding field untouched.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Category      *entity.Category
	Amount        *decimal.Decimal
	Date          *time.Time
	Odometer      *float64
	Fuel          *entity.FuelInfo
	ClearFuel     bool
}

// UpdateTransactionOutput represents the output of a ledger entry edit.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles editing of existing ledger entries.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if tx.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		tx.Amount = *input.Amount
	}

	if input.Category != nil {
		if !entity.ValidCategoryForType(*input.Category, tx.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCategory,
				"category not valid for transaction type",
				domainerror.ErrInvalidCategory,
			)
		}
		tx.Category = *input.Category
	}

	if input.Date != nil {
		tx.Date = entity.DayOf(*input.Date)
	}
	if input.Odometer != nil {
		tx.Odometer = input.Odometer
	}
	if input.ClearFuel {
		tx.Fuel = nil
	} else if input.Fuel != nil {
		if tx.Category != entity.CategoryFuel {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeFuelInfoNotAllowed,
				"fuel details only allowed on fuel expenses",
				domainerror.ErrFuelInfoNotAllowed,
			)
		}
		tx.Fuel = input.Fuel
	}

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
