package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
)

// ListTransactionsInput represents the filters for listing ledger entries.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	VehicleID *uuid.UUID
	Month     *time.Time
	Type      *entity.TransactionType
}

// ListTransactionsOutput represents the listing result.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles ledger entry listing with optional filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute performs the listing. Results come back sorted by date descending,
// then creation time descending.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if input.VehicleID != nil && tx.VehicleID != *input.VehicleID {
			continue
		}
		if input.Month != nil && !entity.SameMonth(tx.Date, *input.Month) {
			continue
		}
		if input.Type != nil && tx.Type != *input.Type {
			continue
		}
		filtered = append(filtered, tx)
	}

	return &ListTransactionsOutput{Transactions: filtered}, nil
}
