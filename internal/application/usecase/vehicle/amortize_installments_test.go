package vehicle

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
)

func seedFinancedVehicle(repo *fakeVehicleRepo, paid, total int) *entity.Vehicle {
	vehicle := entity.NewVehicle(uuid.New(), entity.VehicleTypeCar, "Chevrolet", "Onix", "FIN1A23", entity.Ownership{
		Status: entity.OwnershipFinanced,
		Financed: &entity.FinancedTerms{
			InstallmentValue:  decimal.NewFromInt(950),
			TotalInstallments: total,
			InstallmentsPaid:  paid,
			DueDay:            10,
		},
	})
	_ = repo.Create(context.Background(), vehicle)
	return vehicle
}

func TestAmortizeInstallments_PartialAmortization(t *testing.T) {
	repo := newFakeVehicleRepo()
	vehicle := seedFinancedVehicle(repo, 10, 48)
	uc := NewAmortizeInstallmentsUseCase(repo)

	out, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
		UserID:           vehicle.UserID,
		VehicleID:        vehicle.ID,
		PaidInstallments: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.PaidOff {
		t.Error("expected PaidOff to be false")
	}
	terms := out.Vehicle.Ownership.Financed
	if terms.InstallmentsPaid != 15 {
		t.Errorf("InstallmentsPaid = %d, want 15", terms.InstallmentsPaid)
	}
	if !terms.InstallmentValue.Equal(decimal.NewFromInt(950)) {
		t.Errorf("InstallmentValue changed to %s without renegotiation", terms.InstallmentValue)
	}
}

func TestAmortizeInstallments_Renegotiation(t *testing.T) {
	repo := newFakeVehicleRepo()
	vehicle := seedFinancedVehicle(repo, 10, 48)
	uc := NewAmortizeInstallmentsUseCase(repo)

	newValue := decimal.NewFromInt(700)
	out, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
		UserID:              vehicle.UserID,
		VehicleID:           vehicle.ID,
		PaidInstallments:    3,
		NewInstallmentValue: &newValue,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Vehicle.Ownership.Financed.InstallmentValue.Equal(newValue) {
		t.Errorf("InstallmentValue = %s, want 700", out.Vehicle.Ownership.Financed.InstallmentValue)
	}
}

func TestAmortizeInstallments_PayoffBoundary(t *testing.T) {
	t.Run("covering exactly the remaining installments pays off", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		vehicle := seedFinancedVehicle(repo, 40, 48)
		uc := NewAmortizeInstallmentsUseCase(repo)

		out, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
			UserID:           vehicle.UserID,
			VehicleID:        vehicle.ID,
			PaidInstallments: 8,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.PaidOff {
			t.Error("expected PaidOff to be true")
		}
		if out.Vehicle.Ownership.Status != entity.OwnershipOwned {
			t.Errorf("status = %s, want proprio", out.Vehicle.Ownership.Status)
		}
		if out.Vehicle.Ownership.Financed != nil {
			t.Error("financed terms should be cleared after payoff")
		}
	})

	t.Run("one installment short keeps the financing", func(t *testing.T) {
		repo := newFakeVehicleRepo()
		vehicle := seedFinancedVehicle(repo, 40, 48)
		uc := NewAmortizeInstallmentsUseCase(repo)

		out, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
			UserID:           vehicle.UserID,
			VehicleID:        vehicle.ID,
			PaidInstallments: 7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.PaidOff {
			t.Error("expected PaidOff to be false")
		}
		if out.Vehicle.Ownership.Status != entity.OwnershipFinanced {
			t.Errorf("status = %s, want financiado", out.Vehicle.Ownership.Status)
		}
		if got := out.Vehicle.Ownership.Financed.InstallmentsPaid; got != 47 {
			t.Errorf("InstallmentsPaid = %d, want 47", got)
		}
	})
}

func TestAmortizeInstallments_Failures(t *testing.T) {
	repo := newFakeVehicleRepo()
	vehicle := seedFinancedVehicle(repo, 0, 48)
	uc := NewAmortizeInstallmentsUseCase(repo)

	t.Run("foreign vehicle is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
			UserID:           uuid.New(),
			VehicleID:        vehicle.ID,
			PaidInstallments: 1,
		})
		if !errors.Is(err, domainerror.ErrVehicleNotOwnedByUser) {
			t.Errorf("expected ErrVehicleNotOwnedByUser, got %v", err)
		}
	})

	t.Run("non-financed vehicle is rejected", func(t *testing.T) {
		owned := entity.NewVehicle(vehicle.UserID, entity.VehicleTypeCar, "VW", "Gol", "OWN9Z99", entity.Ownership{
			Status: entity.OwnershipOwned,
		})
		_ = repo.Create(context.Background(), owned)

		_, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
			UserID:           owned.UserID,
			VehicleID:        owned.ID,
			PaidInstallments: 1,
		})
		if !errors.Is(err, domainerror.ErrVehicleNotFinanced) {
			t.Errorf("expected ErrVehicleNotFinanced, got %v", err)
		}
	})

	t.Run("zero paid count is rejected without state change", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), AmortizeInstallmentsInput{
			UserID:           vehicle.UserID,
			VehicleID:        vehicle.ID,
			PaidInstallments: 0,
		})
		if !errors.Is(err, domainerror.ErrInvalidInstallments) {
			t.Errorf("expected ErrInvalidInstallments, got %v", err)
		}

		stored, _ := repo.FindByID(context.Background(), vehicle.ID)
		if stored.Ownership.Financed.InstallmentsPaid != 0 {
			t.Error("failed amortization must not change state")
		}
	})
}
