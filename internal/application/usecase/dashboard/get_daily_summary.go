// Package dashboard assembles the daily financial summary.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/application/usecase/engine"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// GetDailySummaryInput represents the summary request. Date defaults to now.
type GetDailySummaryInput struct {
	UserID uuid.UUID
	Date   *time.Time
}

// GetDailySummaryOutput is the assembled daily picture for the active vehicle.
type GetDailySummaryOutput struct {
	Vehicle    *entity.Vehicle
	Date       time.Time
	Snapshot   engine.Snapshot
	Projection engine.GoalProjection
	Progress   engine.Progress
}

// GetDailySummaryUseCase derives the dashboard summary: today's snapshot for
// the active vehicle plus the dynamic goal projection against it.
type GetDailySummaryUseCase struct {
	userRepo        adapter.UserRepository
	vehicleRepo     adapter.VehicleRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetDailySummaryUseCase creates a new GetDailySummaryUseCase instance.
func NewGetDailySummaryUseCase(
	userRepo adapter.UserRepository,
	vehicleRepo adapter.VehicleRepository,
	transactionRepo adapter.TransactionRepository,
) *GetDailySummaryUseCase {
	return &GetDailySummaryUseCase{
		userRepo:        userRepo,
		vehicleRepo:     vehicleRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute assembles the summary.
func (uc *GetDailySummaryUseCase) Execute(ctx context.Context, input GetDailySummaryInput) (*GetDailySummaryOutput, error) {
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

	vehicles, err := uc.vehicleRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	var active *entity.Vehicle
	for _, v := range vehicles {
		if v.IsActive {
			active = v
			break
		}
	}
	if active == nil {
		return nil, domainerror.NewVehicleError(
			domainerror.ErrCodeNoActiveVehicle,
			"no active vehicle",
			domainerror.ErrNoActiveVehicle,
		)
	}

	transactions, err := uc.transactionRepo.FindByVehicleID(ctx, active.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	day := uc.now()
	if input.Date != nil {
		day = *input.Date
	}

	snapshot := engine.ComputeDailySnapshot(active, transactions, day, user.IsPro)
	projection := engine.ComputeDynamicGoal(baseGoalFor(user, active), transactions, day)
	progress := engine.GoalProgress(snapshot.Profit, projection.DynamicGoal)

	return &GetDailySummaryOutput{
		Vehicle:    active,
		Date:       entity.DayOf(day),
		Snapshot:   snapshot,
		Projection: projection,
		Progress:   progress,
	}, nil
}

// baseGoalFor resolves the base daily goal: the vehicle override wins when
// set, otherwise the account-wide goal applies.
func baseGoalFor(user *entity.User, vehicle *entity.Vehicle) decimal.Decimal {
	if vehicle.CustomDailyGoal != nil {
		return *vehicle.CustomDailyGoal
	}
	return user.DailyGoal
}
