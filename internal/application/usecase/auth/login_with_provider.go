package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// LoginWithProviderInput represents a social login payload. The provider
// token is not verified; the mock provider trusts the client-sent profile.
type LoginWithProviderInput struct {
	Provider   string
	ExternalID string
	Email      string
	Name       string
}

// LoginWithProviderUseCase handles social logins through the mock provider.
// It resolves to the same account as an email login with the same address.
type LoginWithProviderUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewLoginWithProviderUseCase creates a new LoginWithProviderUseCase instance.
func NewLoginWithProviderUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *LoginWithProviderUseCase {
	return &LoginWithProviderUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the provider login, creating the account on first sight.
func (uc *LoginWithProviderUseCase) Execute(ctx context.Context, input LoginWithProviderInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	if strings.TrimSpace(input.ExternalID) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"provider external id is required",
			domainerror.ErrInvalidToken,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	isNew := false
	switch {
	case err == nil:
	case errors.Is(err, domainerror.ErrUserNotFound):
		user = entity.NewUser(email, displayName(input.Name, email))
		if err := uc.userRepo.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		isNew = true
	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{User: user, AccessToken: token, IsNewUser: isNew}, nil
}
