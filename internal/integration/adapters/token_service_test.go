package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(context.Background(), userID, "driver@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "driver@example.com" {
		t.Errorf("email = %q, want driver@example.com", claims.Email)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("token should not be expired yet")
	}
}

func TestTokenService_RejectsBadTokens(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(context.Background(), "not-a-jwt")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, _ := other.GenerateAccessToken(context.Background(), uuid.New(), "driver@example.com")
		if _, err := svc.ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		short := NewTokenService("test-secret", -time.Minute)
		token, _ := short.GenerateAccessToken(context.Background(), uuid.New(), "driver@example.com")
		if _, err := svc.ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})
}
