package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/motorista-real/backend/internal/application/adapter"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

func newGormStore(t *testing.T) adapter.BlobStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormStore(db)
}

func newRedisStore(t *testing.T) adapter.BlobStore {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "motoristareal")
}

// stores runs the same contract suite against every backend.
func stores(t *testing.T) map[string]adapter.BlobStore {
	return map[string]adapter.BlobStore{
		"gorm":  newGormStore(t),
		"redis": newRedisStore(t),
	}
}

func TestBlobStore_GetSetRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := store.Get(ctx, "missing"); !errors.Is(err, domainerror.ErrKeyNotFound) {
				t.Errorf("expected ErrKeyNotFound, got %v", err)
			}

			if err := store.Set(ctx, "greeting", []byte("bom dia")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := store.Get(ctx, "greeting")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != "bom dia" {
				t.Errorf("got %q, want %q", got, "bom dia")
			}

			if err := store.Set(ctx, "greeting", []byte("boa noite")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, _ = store.Get(ctx, "greeting")
			if string(got) != "boa noite" {
				t.Errorf("got %q, want overwritten value", got)
			}
		})
	}
}

func TestBlobStore_Update(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// Update on an absent key sees nil.
			err := store.Update(ctx, "counter", func(current []byte) ([]byte, error) {
				if current != nil {
					t.Errorf("expected nil for absent key, got %q", current)
				}
				return []byte("1"), nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err = store.Update(ctx, "counter", func(current []byte) ([]byte, error) {
				if string(current) != "1" {
					t.Errorf("current = %q, want 1", current)
				}
				return append(current, '2'), nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, _ := store.Get(ctx, "counter")
			if string(got) != "12" {
				t.Errorf("got %q, want 12", got)
			}
		})
	}
}

func TestBlobStore_UpdateErrorLeavesValue(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_ = store.Set(ctx, "k", []byte("before"))

			wantErr := errors.New("validation failed")
			err := store.Update(ctx, "k", func(current []byte) ([]byte, error) {
				return nil, wantErr
			})
			if !errors.Is(err, wantErr) {
				t.Fatalf("expected fn error to propagate, got %v", err)
			}

			got, _ := store.Get(ctx, "k")
			if string(got) != "before" {
				t.Errorf("got %q, failed update must not write", got)
			}
		})
	}
}
