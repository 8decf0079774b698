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

func ownedInput(userID uuid.UUID, plate string) RegisterVehicleInput {
	return RegisterVehicleInput{
		UserID: userID,
		Type:   entity.VehicleTypeCar,
		Brand:  "Fiat",
		Model:  "Argo",
		Plate:  plate,
		Ownership: entity.Ownership{
			Status: entity.OwnershipOwned,
			Owned:  &entity.OwnedTerms{MarketValue: decimal.NewFromInt(52000)},
		},
	}
}

func TestRegisterVehicle_FirstVehicleBecomesActive(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	txRepo := newFakeTransactionRepo()
	uc := NewRegisterVehicleUseCase(vehicleRepo, txRepo)
	userID := uuid.New()

	first, err := uc.Execute(context.Background(), ownedInput(userID, "abc-1d23"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Vehicle.IsActive {
		t.Error("first vehicle should become active")
	}
	if first.Vehicle.Plate != "ABC1D23" {
		t.Errorf("plate = %q, want normalized ABC1D23", first.Vehicle.Plate)
	}

	second, err := uc.Execute(context.Background(), ownedInput(userID, "DEF4E56"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Vehicle.IsActive {
		t.Error("second vehicle must not steal the active flag")
	}
}

func TestRegisterVehicle_RejectsBadPlates(t *testing.T) {
	uc := NewRegisterVehicleUseCase(newFakeVehicleRepo(), newFakeTransactionRepo())
	userID := uuid.New()

	for _, plate := range []string{"", "ABC123", "ABC1D234", "ABC1D2!"} {
		_, err := uc.Execute(context.Background(), ownedInput(userID, plate))
		if !errors.Is(err, domainerror.ErrInvalidPlate) {
			t.Errorf("plate %q: expected ErrInvalidPlate, got %v", plate, err)
		}
	}
}

func TestRegisterVehicle_RejectsDuplicatePlatePerUser(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	uc := NewRegisterVehicleUseCase(vehicleRepo, newFakeTransactionRepo())
	userID := uuid.New()

	if _, err := uc.Execute(context.Background(), ownedInput(userID, "ABC1D23")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.Execute(context.Background(), ownedInput(userID, "abc1d23"))
	if !errors.Is(err, domainerror.ErrDuplicatePlate) {
		t.Errorf("expected ErrDuplicatePlate, got %v", err)
	}

	// A different user may register the same plate.
	if _, err := uc.Execute(context.Background(), ownedInput(uuid.New(), "ABC1D23")); err != nil {
		t.Errorf("other user with same plate: unexpected error %v", err)
	}
}

func TestRegisterVehicle_RejectsInconsistentProfiles(t *testing.T) {
	uc := NewRegisterVehicleUseCase(newFakeVehicleRepo(), newFakeTransactionRepo())
	userID := uuid.New()

	t.Run("paid above total", func(t *testing.T) {
		input := ownedInput(userID, "FIN0A01")
		input.Ownership = entity.Ownership{
			Status: entity.OwnershipFinanced,
			Financed: &entity.FinancedTerms{
				InstallmentValue:  decimal.NewFromInt(900),
				TotalInstallments: 24,
				InstallmentsPaid:  25,
				DueDay:            10,
			},
		}
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidInstallments) {
			t.Errorf("expected ErrInvalidInstallments, got %v", err)
		}
	})

	t.Run("weekly rent with out-of-range weekday", func(t *testing.T) {
		input := ownedInput(userID, "RNT0A01")
		input.Ownership = entity.Ownership{
			Status: entity.OwnershipRented,
			Rented: &entity.RentedTerms{
				Value:  decimal.NewFromInt(300),
				Period: entity.RentalPeriodWeekly,
				DueRef: 7,
			},
		}
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidDueDay) {
			t.Errorf("expected ErrInvalidDueDay, got %v", err)
		}
	})

	t.Run("insurance without installments", func(t *testing.T) {
		input := ownedInput(userID, "SEG0A01")
		input.Insurance = &entity.InsurancePolicy{Value: decimal.NewFromInt(1200), Installments: 0, DueDay: 10}
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidInsurance) {
			t.Errorf("expected ErrInvalidInsurance, got %v", err)
		}
	})
}

func TestRegisterVehicle_PersistsScheduledObligations(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	txRepo := newFakeTransactionRepo()
	uc := NewRegisterVehicleUseCase(vehicleRepo, txRepo)
	userID := uuid.New()

	input := ownedInput(userID, "FIN1B23")
	input.Ownership = entity.Ownership{
		Status: entity.OwnershipFinanced,
		Financed: &entity.FinancedTerms{
			InstallmentValue:  decimal.NewFromInt(1000),
			TotalInstallments: 48,
			InstallmentsPaid:  0,
			DueDay:            10,
		},
	}

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Scheduled) != 48 {
		t.Fatalf("scheduled %d obligations, want 48", len(out.Scheduled))
	}

	stored, _ := txRepo.FindByVehicleID(context.Background(), out.Vehicle.ID)
	if len(stored) != 48 {
		t.Errorf("persisted %d obligations, want 48", len(stored))
	}
	for _, tx := range stored {
		if tx.Origin != entity.OriginScheduled {
			t.Fatalf("persisted obligation has origin %s, want scheduled", tx.Origin)
		}
	}
}

func TestSwitchActiveVehicle(t *testing.T) {
	vehicleRepo := newFakeVehicleRepo()
	registerUC := NewRegisterVehicleUseCase(vehicleRepo, newFakeTransactionRepo())
	switchUC := NewSwitchActiveVehicleUseCase(vehicleRepo)
	userID := uuid.New()

	first, _ := registerUC.Execute(context.Background(), ownedInput(userID, "AAA1A11"))
	second, _ := registerUC.Execute(context.Background(), ownedInput(userID, "BBB2B22"))

	if err := switchUC.Execute(context.Background(), SwitchActiveVehicleInput{
		UserID:    userID,
		VehicleID: second.Vehicle.ID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vehicles, _ := vehicleRepo.FindByUserID(context.Background(), userID)
	activeCount := 0
	for _, v := range vehicles {
		if v.IsActive {
			activeCount++
			if v.ID != second.Vehicle.ID {
				t.Errorf("active vehicle is %s, want %s", v.ID, second.Vehicle.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("active vehicles = %d, want exactly 1", activeCount)
	}

	t.Run("foreign vehicle fails without state change", func(t *testing.T) {
		err := switchUC.Execute(context.Background(), SwitchActiveVehicleInput{
			UserID:    uuid.New(),
			VehicleID: first.Vehicle.ID,
		})
		if !errors.Is(err, domainerror.ErrVehicleNotOwnedByUser) {
			t.Errorf("expected ErrVehicleNotOwnedByUser, got %v", err)
		}
	})
}
