// Package auth contains the mock-provider authentication use cases.
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

// LoginUserInput represents the input for mock email login.
type LoginUserInput struct {
	Email string
	Name  string
}

// LoginUserOutput represents the output of a login.
type LoginUserOutput struct {
	User        *entity.User
	AccessToken string
	IsNewUser   bool
}

// LoginUserUseCase handles the mock email login. Any well-formed email logs
// in: the account ID is derived from the address, so the same email always
// lands on the same account.
type LoginUserUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the login, creating the account on first sight.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
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

// displayName falls back to the local part of the email when the client
// did not send a name.
func displayName(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
