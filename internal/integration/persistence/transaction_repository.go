package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/persistence/model"
)

// transactionRepository implements adapter.TransactionRepository over the
// blob store. The whole ledger lives under one key; appends go through
// BlobStore.Update so concurrent writers cannot lose entries.
type transactionRepository struct {
	store adapter.BlobStore
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(store adapter.BlobStore) adapter.TransactionRepository {
	return &transactionRepository{store: store}
}

func (r *transactionRepository) load(ctx context.Context) ([]*model.TransactionBlob, error) {
	raw, err := r.store.Get(ctx, model.KeyTransactions)
	if err != nil {
		if errors.Is(err, domainerror.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeTransactions(raw)
}

func decodeTransactions(raw []byte) ([]*model.TransactionBlob, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var blobs []*model.TransactionBlob
	if err := json.Unmarshal(raw, &blobs); err != nil {
		return nil, fmt.Errorf("corrupt transactions blob: %w", err)
	}
	return blobs, nil
}

// sortEntities orders transactions by date descending, then creation
// timestamp descending, so same-day entries keep insertion recency.
func sortEntities(transactions []*entity.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range blobs {
		if b.ID == id {
			return b.ToEntity(), nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// FindByUserID retrieves all transactions of a user, most recent first.
func (r *transactionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var transactions []*entity.Transaction
	for _, b := range blobs {
		if b.UserID == userID {
			transactions = append(transactions, b.ToEntity())
		}
	}
	sortEntities(transactions)
	return transactions, nil
}

// FindByVehicleID retrieves all transactions of one vehicle, most recent first.
func (r *transactionRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Transaction, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var transactions []*entity.Transaction
	for _, b := range blobs {
		if b.VehicleID == vehicleID {
			transactions = append(transactions, b.ToEntity())
		}
	}
	sortEntities(transactions)
	return transactions, nil
}

// Create appends a transaction to the ledger.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.CreateBatch(ctx, []*entity.Transaction{transaction})
}

// CreateBatch appends several transactions in one atomic write.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return r.store.Update(ctx, model.KeyTransactions, func(current []byte) ([]byte, error) {
		blobs, err := decodeTransactions(current)
		if err != nil {
			return nil, err
		}
		for _, tx := range transactions {
			blobs = append(blobs, model.TransactionFromEntity(tx))
		}
		return json.Marshal(blobs)
	})
}

// Update overwrites an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return r.store.Update(ctx, model.KeyTransactions, func(current []byte) ([]byte, error) {
		blobs, err := decodeTransactions(current)
		if err != nil {
			return nil, err
		}
		for i, b := range blobs {
			if b.ID == transaction.ID {
				blob := model.TransactionFromEntity(transaction)
				blob.UpdatedAt = time.Now().UTC()
				blobs[i] = blob
				return json.Marshal(blobs)
			}
		}
		return nil, domainerror.ErrTransactionNotFound
	})
}
