package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Save(_ context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func seedUser(repo *fakeUserRepo) *entity.User {
	u := entity.NewUser("driver@example.com", "Maria")
	_ = repo.Save(context.Background(), u)
	return u
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(repo)
	uc := NewUpdateUserUseCase(repo)

	goal := decimal.NewFromInt(350)
	pro := true
	scope := entity.GoalScopePerVehicle
	out, err := uc.Execute(context.Background(), UpdateUserInput{
		UserID:    seeded.ID,
		DailyGoal: &goal,
		IsPro:     &pro,
		GoalScope: &scope,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.User.DailyGoal.Equal(goal) {
		t.Errorf("daily goal = %s, want 350", out.User.DailyGoal)
	}
	if !out.User.IsPro {
		t.Error("IsPro was not updated")
	}
	if out.User.GoalScope != entity.GoalScopePerVehicle {
		t.Errorf("goal scope = %s, want per_vehicle", out.User.GoalScope)
	}

	stored, _ := repo.FindByID(context.Background(), seeded.ID)
	if !stored.DailyGoal.Equal(goal) {
		t.Error("update was not persisted")
	}
}

func TestUpdateUser_ZeroGoalIsAllowed(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(repo)
	uc := NewUpdateUserUseCase(repo)

	goal := decimal.Zero
	out, err := uc.Execute(context.Background(), UpdateUserInput{UserID: seeded.ID, DailyGoal: &goal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.User.DailyGoal.IsZero() {
		t.Errorf("daily goal = %s, want 0", out.User.DailyGoal)
	}
}

func TestUpdateUser_Failures(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(repo)
	uc := NewUpdateUserUseCase(repo)

	t.Run("negative goal", func(t *testing.T) {
		goal := decimal.NewFromInt(-10)
		_, err := uc.Execute(context.Background(), UpdateUserInput{UserID: seeded.ID, DailyGoal: &goal})
		if !errors.Is(err, domainerror.ErrInvalidDailyGoal) {
			t.Errorf("expected ErrInvalidDailyGoal, got %v", err)
		}
	})

	t.Run("unknown scope", func(t *testing.T) {
		scope := entity.GoalScope("per_city")
		_, err := uc.Execute(context.Background(), UpdateUserInput{UserID: seeded.ID, GoalScope: &scope})
		if !errors.Is(err, domainerror.ErrInvalidGoalScope) {
			t.Errorf("expected ErrInvalidGoalScope, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateUserInput{UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(repo)
	uc := NewGetUserUseCase(repo)

	got, err := uc.Execute(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != seeded.Email {
		t.Errorf("email = %q, want %q", got.Email, seeded.Email)
	}

	if _, err := uc.Execute(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
