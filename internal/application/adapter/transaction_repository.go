// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// FindByID retrieves a transaction by ID, or domain ErrTransactionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUserID retrieves all transactions of a user, sorted by date then
	// creation timestamp, most recent first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByVehicleID retrieves all transactions of one vehicle, same order.
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Transaction, error)

	// Create appends a transaction to the ledger.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch appends several transactions in one atomic write. Used by
	// the obligation scheduler at vehicle registration.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// Update overwrites an existing transaction, or domain ErrTransactionNotFound.
	Update(ctx context.Context, transaction *entity.Transaction) error
}
