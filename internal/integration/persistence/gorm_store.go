// Package persistence implements the blob store and the repositories on top of it.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/motorista-real/backend/internal/application/adapter"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// kvEntryModel represents the kv_entries table backing the GORM blob store.
type kvEntryModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the kvEntryModel.
func (kvEntryModel) TableName() string {
	return "kv_entries"
}

// gormStore implements adapter.BlobStore over a relational kv_entries table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a blob store backed by the given GORM connection.
func NewGormStore(db *gorm.DB) adapter.BlobStore {
	return &gormStore{db: db}
}

// Migrate creates the kv_entries table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&kvEntryModel{})
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntryModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, result.Error
	}
	return entry.Value, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntryModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	return result.Error
}

// Update runs fn inside a transaction holding a row lock on the key, so
// concurrent read-modify-writes serialize instead of losing entries. SQLite
// has no SELECT FOR UPDATE; its single-writer transactions already serialize.
func (s *gormStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		read := tx
		if tx.Dialector.Name() == "postgres" {
			read = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var entry kvEntryModel
		var current []byte
		result := read.Where("key = ?", key).First(&entry)
		switch {
		case result.Error == nil:
			current = entry.Value
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			current = nil
		default:
			return result.Error
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		updated := kvEntryModel{Key: key, Value: next, UpdatedAt: time.Now().UTC()}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&updated).Error
	})
}
