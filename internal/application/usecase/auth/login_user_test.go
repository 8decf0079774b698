package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository for unit tests.
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

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (s *fakeTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, email string) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, email), nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func TestLoginUser_CreatesAccountOnFirstLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewLoginUserUseCase(repo, &fakeTokenService{})

	out, err := uc.Execute(context.Background(), LoginUserInput{Email: "Joao.Silva@Example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.IsNewUser {
		t.Error("expected IsNewUser on first login")
	}
	if out.User.Email != "joao.silva@example.com" {
		t.Errorf("email = %q, want lowercased", out.User.Email)
	}
	if out.User.Name != "joao.silva" {
		t.Errorf("name = %q, want local part fallback", out.User.Name)
	}
	if !out.User.DailyGoal.Equal(entity.DefaultDailyGoal) {
		t.Errorf("daily goal = %s, want default %s", out.User.DailyGoal, entity.DefaultDailyGoal)
	}
	if out.AccessToken == "" {
		t.Error("expected an access token")
	}
}

func TestLoginUser_SameEmailSameAccount(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewLoginUserUseCase(repo, &fakeTokenService{})

	first, _ := uc.Execute(context.Background(), LoginUserInput{Email: "driver@example.com", Name: "Maria"})
	second, err := uc.Execute(context.Background(), LoginUserInput{Email: "DRIVER@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.IsNewUser {
		t.Error("second login must not create a new account")
	}
	if second.User.ID != first.User.ID {
		t.Errorf("IDs differ across logins: %s vs %s", first.User.ID, second.User.ID)
	}
	if second.User.Name != "Maria" {
		t.Errorf("name = %q, existing profile must not be overwritten", second.User.Name)
	}
	if second.User.ID != entity.UserIDForEmail("driver@example.com") {
		t.Error("account ID is not derived from the email")
	}
}

func TestLoginUser_RejectsMalformedEmail(t *testing.T) {
	uc := NewLoginUserUseCase(newFakeUserRepo(), &fakeTokenService{})

	for _, email := range []string{"", "not-an-email", "a@", "@b.com"} {
		_, err := uc.Execute(context.Background(), LoginUserInput{Email: email})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestLoginWithProvider(t *testing.T) {
	repo := newFakeUserRepo()
	emailUC := NewLoginUserUseCase(repo, &fakeTokenService{})
	providerUC := NewLoginWithProviderUseCase(repo, &fakeTokenService{})

	viaEmail, _ := emailUC.Execute(context.Background(), LoginUserInput{Email: "driver@example.com"})
	viaProvider, err := providerUC.Execute(context.Background(), LoginWithProviderInput{
		Provider:   "google",
		ExternalID: "g-123456",
		Email:      "driver@example.com",
		Name:       "João",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if viaProvider.User.ID != viaEmail.User.ID {
		t.Error("provider login with the same email must resolve to the same account")
	}

	t.Run("missing external id", func(t *testing.T) {
		_, err := providerUC.Execute(context.Background(), LoginWithProviderInput{
			Provider: "google",
			Email:    "driver@example.com",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected AUTH missing-fields error, got %v", err)
		}
	})
}
