package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

func seedVehicle(repo *fakeVehicleRepo, userID uuid.UUID) *entity.Vehicle {
	vehicle := entity.NewVehicle(userID, entity.VehicleTypeCar, "Fiat", "Argo", "ABC1D23", entity.Ownership{
		Status: entity.OwnershipOwned,
		Owned:  &entity.OwnedTerms{MarketValue: decimal.NewFromInt(52000)},
	})
	_ = repo.Create(context.Background(), vehicle)
	return vehicle
}

func TestCreateTransaction(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	txRepo := newFakeTransactionRepo()
	userID := uuid.New()
	vehicle := seedVehicle(vehicleRepo, userID)
	uc := NewCreateTransactionUseCase(txRepo, vehicleRepo)

	out, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:    userID,
		VehicleID: vehicle.ID,
		Type:      entity.TransactionTypeEarning,
		Category:  entity.CategoryUber,
		Amount:    decimal.NewFromFloat(185.50),
		Date:      time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Transaction.Origin != entity.OriginManual {
		t.Errorf("origin = %s, want manual", out.Transaction.Origin)
	}
	wantDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !out.Transaction.Date.Equal(wantDate) {
		t.Errorf("date = %s, want truncated to %s", out.Transaction.Date, wantDate)
	}
	if out.Transaction.Timestamp.IsZero() {
		t.Error("timestamp must be set to the creation instant")
	}

	stored, _ := txRepo.FindByID(context.Background(), out.Transaction.ID)
	if stored == nil {
		t.Fatal("transaction was not persisted")
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	userID := uuid.New()
	vehicle := seedVehicle(vehicleRepo, userID)
	uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), vehicleRepo)

	base := CreateTransactionInput{
		UserID:    userID,
		VehicleID: vehicle.ID,
		Type:      entity.TransactionTypeExpense,
		Category:  entity.CategoryFuel,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Now().UTC(),
	}

	t.Run("zero amount", func(t *testing.T) {
		input := base
		input.Amount = decimal.Zero
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		input := base
		input.Amount = decimal.NewFromInt(-50)
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("earning category on expense", func(t *testing.T) {
		input := base
		input.Category = entity.CategoryUber
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		input := base
		input.Type = entity.TransactionType("transfer")
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("fuel details on non-fuel category", func(t *testing.T) {
		input := base
		input.Category = entity.CategoryMaintenance
		input.Fuel = &entity.FuelInfo{Type: entity.FuelTypeGasoline, Quantity: 30, PricePerUnit: decimal.NewFromFloat(5.89)}
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrFuelInfoNotAllowed) {
			t.Errorf("expected ErrFuelInfoNotAllowed, got %v", err)
		}
	})

	t.Run("foreign vehicle", func(t *testing.T) {
		input := base
		input.UserID = uuid.New()
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrVehicleNotOwnedByUser) {
			t.Errorf("expected ErrVehicleNotOwnedByUser, got %v", err)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		input := base
		input.VehicleID = uuid.New()
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrVehicleNotFound) {
			t.Errorf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestCreateTransaction_FinancingPaymentAdvancesInstallments(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	userID := uuid.New()
	vehicle := entity.NewVehicle(userID, entity.VehicleTypeCar, "VW", "Polo", "XYZ9K88", entity.Ownership{
		Status: entity.OwnershipFinanced,
		Financed: &entity.FinancedTerms{
			InstallmentValue:  decimal.NewFromInt(850),
			TotalInstallments: 48,
			InstallmentsPaid:  10,
			DueDay:            10,
		},
	})
	_ = vehicleRepo.Create(context.Background(), vehicle)
	uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), vehicleRepo)

	input := CreateTransactionInput{
		UserID:    userID,
		VehicleID: vehicle.ID,
		Type:      entity.TransactionTypeExpense,
		Category:  entity.CategoryFinancing,
		Amount:    decimal.NewFromInt(850),
		Date:      time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
	}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := vehicleRepo.FindByID(context.Background(), vehicle.ID)
	if got := stored.Ownership.Financed.InstallmentsPaid; got != 11 {
		t.Errorf("installments paid = %d, want 11", got)
	}

	t.Run("counter never exceeds the total", func(t *testing.T) {
		stored.Ownership.Financed.InstallmentsPaid = 48
		_ = vehicleRepo.Update(context.Background(), stored)

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after, _ := vehicleRepo.FindByID(context.Background(), vehicle.ID)
		if got := after.Ownership.Financed.InstallmentsPaid; got != 48 {
			t.Errorf("installments paid = %d, want capped at 48", got)
		}
	})

	t.Run("other expense categories leave the plan alone", func(t *testing.T) {
		stored.Ownership.Financed.InstallmentsPaid = 11
		_ = vehicleRepo.Update(context.Background(), stored)

		fuel := input
		fuel.Category = entity.CategoryFuel
		if _, err := uc.Execute(context.Background(), fuel); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after, _ := vehicleRepo.FindByID(context.Background(), vehicle.ID)
		if got := after.Ownership.Financed.InstallmentsPaid; got != 11 {
			t.Errorf("installments paid = %d, want unchanged 11", got)
		}
	})
}

func TestCreateTransaction_FuelExpense(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	userID := uuid.New()
	vehicle := seedVehicle(vehicleRepo, userID)
	uc := NewCreateTransactionUseCase(newFakeTransactionRepo(), vehicleRepo)

	odometer := 45230.0
	out, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID:    userID,
		VehicleID: vehicle.ID,
		Type:      entity.TransactionTypeExpense,
		Category:  entity.CategoryFuel,
		Amount:    decimal.NewFromFloat(176.70),
		Date:      time.Now().UTC(),
		Odometer:  &odometer,
		Fuel:      &entity.FuelInfo{Type: entity.FuelTypeEthanol, Quantity: 42, PricePerUnit: decimal.NewFromFloat(4.21)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Transaction.Fuel == nil || out.Transaction.Fuel.Type != entity.FuelTypeEthanol {
		t.Error("fuel details were not kept")
	}
	if out.Transaction.Odometer == nil || *out.Transaction.Odometer != odometer {
		t.Error("odometer reading was not kept")
	}
}
