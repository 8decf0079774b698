// Package user contains profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// UpdateUserInput represents the editable profile fields. Nil pointers leave
// the corresponding field untouched.
type UpdateUserInput struct {
	UserID    uuid.UUID
	Name      *string
	DailyGoal *decimal.Decimal
	IsPro     *bool
	GoalScope *entity.GoalScope
}

// UpdateUserOutput represents the output of a profile update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles profile updates.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo}
}

// Execute performs the profile update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			user.Name = name
		}
	}
	if input.DailyGoal != nil {
		if input.DailyGoal.IsNegative() {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidDailyGoal,
				"daily goal must not be negative",
				domainerror.ErrInvalidDailyGoal,
			)
		}
		user.DailyGoal = *input.DailyGoal
	}
	if input.IsPro != nil {
		user.IsPro = *input.IsPro
	}
	if input.GoalScope != nil {
		if *input.GoalScope != entity.GoalScopeGlobal && *input.GoalScope != entity.GoalScopePerVehicle {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidGoalScope,
				"goal scope must be 'global' or 'per_vehicle'",
				domainerror.ErrInvalidGoalScope,
			)
		}
		user.GoalScope = *input.GoalScope
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &UpdateUserOutput{User: user}, nil
}
