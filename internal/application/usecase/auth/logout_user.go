package auth

import (
	"context"

	"github.com/google/uuid"
)

// LogoutUserUseCase handles logout. Access tokens are stateless and
// short-lived, so there is no server-side session to revoke; the endpoint
// exists so clients have a single place to drop credentials.
type LogoutUserUseCase struct{}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase() *LogoutUserUseCase {
	return &LogoutUserUseCase{}
}

// Execute performs the logout.
func (uc *LogoutUserUseCase) Execute(_ context.Context, _ uuid.UUID) error {
	return nil
}
