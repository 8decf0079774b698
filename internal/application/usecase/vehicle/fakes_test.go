package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// fakeVehicleRepo is an in-memory adapter.VehicleRepository for unit tests.
type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domainerror.ErrVehicleNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *fakeVehicleRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.UserID == userID {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Create(_ context.Context, vehicle *entity.Vehicle) error {
	clone := *vehicle
	r.vehicles[vehicle.ID] = &clone
	return nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, vehicle *entity.Vehicle) error {
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return domainerror.ErrVehicleNotFound
	}
	clone := *vehicle
	r.vehicles[vehicle.ID] = &clone
	return nil
}

func (r *fakeVehicleRepo) SetActive(_ context.Context, userID, vehicleID uuid.UUID) error {
	target, ok := r.vehicles[vehicleID]
	if !ok {
		return domainerror.ErrVehicleNotFound
	}
	if target.UserID != userID {
		return domainerror.ErrVehicleNotOwnedByUser
	}
	for _, v := range r.vehicles {
		if v.UserID == userID {
			v.IsActive = v.ID == vehicleID
		}
	}
	return nil
}

// fakeTransactionRepo is an in-memory adapter.TransactionRepository.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			clone := *tx
			return &clone, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			clone := *tx
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.VehicleID == vehicleID {
			clone := *tx
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	clone := *transaction
	r.transactions = append(r.transactions, &clone)
	return nil
}

func (r *fakeTransactionRepo) CreateBatch(_ context.Context, transactions []*entity.Transaction) error {
	for _, tx := range transactions {
		clone := *tx
		r.transactions = append(r.transactions, &clone)
	}
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i, tx := range r.transactions {
		if tx.ID == transaction.ID {
			clone := *transaction
			r.transactions[i] = &clone
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}
