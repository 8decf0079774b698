package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/persistence/model"
)

// vehicleRepository implements adapter.VehicleRepository over the blob store.
type vehicleRepository struct {
	store adapter.BlobStore
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(store adapter.BlobStore) adapter.VehicleRepository {
	return &vehicleRepository{store: store}
}

func (r *vehicleRepository) load(ctx context.Context) ([]*model.VehicleBlob, error) {
	raw, err := r.store.Get(ctx, model.KeyVehicles)
	if err != nil {
		if errors.Is(err, domainerror.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeVehicles(raw)
}

func decodeVehicles(raw []byte) ([]*model.VehicleBlob, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var blobs []*model.VehicleBlob
	if err := json.Unmarshal(raw, &blobs); err != nil {
		return nil, fmt.Errorf("corrupt vehicles blob: %w", err)
	}
	return blobs, nil
}

// FindByID retrieves a vehicle by its ID.
func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range blobs {
		if b.ID == id {
			return b.ToEntity(), nil
		}
	}
	return nil, domainerror.ErrVehicleNotFound
}

// FindByUserID retrieves all vehicles belonging to a user.
func (r *vehicleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error) {
	blobs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var vehicles []*entity.Vehicle
	for _, b := range blobs {
		if b.UserID == userID {
			vehicles = append(vehicles, b.ToEntity())
		}
	}
	return vehicles, nil
}

// Create appends a new vehicle to the collection.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.store.Update(ctx, model.KeyVehicles, func(current []byte) ([]byte, error) {
		blobs, err := decodeVehicles(current)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, model.VehicleFromEntity(vehicle))
		return json.Marshal(blobs)
	})
}

// Update overwrites an existing vehicle.
func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.store.Update(ctx, model.KeyVehicles, func(current []byte) ([]byte, error) {
		blobs, err := decodeVehicles(current)
		if err != nil {
			return nil, err
		}
		for i, b := range blobs {
			if b.ID == vehicle.ID {
				blob := model.VehicleFromEntity(vehicle)
				blob.UpdatedAt = time.Now().UTC()
				blobs[i] = blob
				return json.Marshal(blobs)
			}
		}
		return nil, domainerror.ErrVehicleNotFound
	})
}

// SetActive flips the active flag to the given vehicle in one atomic write.
func (r *vehicleRepository) SetActive(ctx context.Context, userID, vehicleID uuid.UUID) error {
	return r.store.Update(ctx, model.KeyVehicles, func(current []byte) ([]byte, error) {
		blobs, err := decodeVehicles(current)
		if err != nil {
			return nil, err
		}

		var target *model.VehicleBlob
		for _, b := range blobs {
			if b.ID == vehicleID {
				target = b
				break
			}
		}
		if target == nil {
			return nil, domainerror.ErrVehicleNotFound
		}
		if target.UserID != userID {
			return nil, domainerror.ErrVehicleNotOwnedByUser
		}

		now := time.Now().UTC()
		for _, b := range blobs {
			if b.UserID != userID {
				continue
			}
			active := b.ID == vehicleID
			if b.IsActive != active {
				b.IsActive = active
				b.UpdatedAt = now
			}
		}
		return json.Marshal(blobs)
	})
}
