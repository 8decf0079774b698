// Package model defines the JSON blob shapes stored by the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// Blob store keys. Each collection lives under a single key; the version
// notes marker is per user.
const (
	KeyUsers        = "users"
	KeyVehicles     = "vehicles"
	KeyTransactions = "transactions"
)

// KeyLastSeenVersion returns the per-user release-notes marker key.
func KeyLastSeenVersion(userID uuid.UUID) string {
	return "last_seen_version:" + userID.String()
}

// UserBlob is the stored shape of a user record.
type UserBlob struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	DailyGoal decimal.Decimal `json:"daily_goal"`
	IsPro     bool            `json:"is_pro"`
	GoalScope string          `json:"goal_scope"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToEntity converts a UserBlob to a domain User entity.
func (b *UserBlob) ToEntity() *entity.User {
	return &entity.User{
		ID:        b.ID,
		Email:     b.Email,
		Name:      b.Name,
		DailyGoal: b.DailyGoal,
		IsPro:     b.IsPro,
		GoalScope: entity.GoalScope(b.GoalScope),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// UserFromEntity creates a UserBlob from a domain User entity.
func UserFromEntity(user *entity.User) *UserBlob {
	return &UserBlob{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		DailyGoal: user.DailyGoal,
		IsPro:     user.IsPro,
		GoalScope: string(user.GoalScope),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// OwnedTermsBlob mirrors entity.OwnedTerms.
type OwnedTermsBlob struct {
	MarketValue decimal.Decimal `json:"market_value"`
}

// FinancedTermsBlob mirrors entity.FinancedTerms.
type FinancedTermsBlob struct {
	InstallmentValue  decimal.Decimal `json:"installment_value"`
	TotalInstallments int             `json:"total_installments"`
	InstallmentsPaid  int             `json:"installments_paid"`
	DueDay            int             `json:"due_day"`
	FinancedAmount    decimal.Decimal `json:"financed_amount"`
	DownPayment       decimal.Decimal `json:"down_payment"`
}

// RentedTermsBlob mirrors entity.RentedTerms.
type RentedTermsBlob struct {
	Value           decimal.Decimal `json:"value"`
	Period          string          `json:"period"`
	DueRef          int             `json:"due_ref"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	KmLimit         int             `json:"km_limit"`
}

// InsuranceBlob mirrors entity.InsurancePolicy.
type InsuranceBlob struct {
	Value        decimal.Decimal `json:"value"`
	Installments int             `json:"installments"`
	DueDay       int             `json:"due_day"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
}

// PurchaseBlob mirrors entity.PurchaseInfo.
type PurchaseBlob struct {
	Value    decimal.Decimal `json:"value"`
	Date     time.Time       `json:"date"`
	Odometer *float64        `json:"odometer,omitempty"`
}

// VehicleBlob is the stored shape of a vehicle record. The ownership variant
// is flattened: status plus at most one non-nil terms object.
type VehicleBlob struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	Type            string             `json:"type"`
	Brand           string             `json:"brand"`
	Model           string             `json:"model"`
	Plate           string             `json:"plate"`
	Year            string             `json:"year,omitempty"`
	ModelYear       string             `json:"model_year,omitempty"`
	IsActive        bool               `json:"is_active"`
	OwnershipStatus string             `json:"ownership_status"`
	Owned           *OwnedTermsBlob    `json:"owned,omitempty"`
	Financed        *FinancedTermsBlob `json:"financed,omitempty"`
	Rented          *RentedTermsBlob   `json:"rented,omitempty"`
	Insurance       *InsuranceBlob     `json:"insurance,omitempty"`
	Purchase        *PurchaseBlob      `json:"purchase,omitempty"`
	CustomDailyGoal *decimal.Decimal   `json:"custom_daily_goal,omitempty"`
	CustomMaintRate *decimal.Decimal   `json:"custom_maint_rate,omitempty"`
	CurrentKm       *float64           `json:"current_km,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ToEntity converts a VehicleBlob to a domain Vehicle entity.
func (b *VehicleBlob) ToEntity() *entity.Vehicle {
	ownership := entity.Ownership{Status: entity.OwnershipStatus(b.OwnershipStatus)}
	if b.Owned != nil {
		ownership.Owned = &entity.OwnedTerms{MarketValue: b.Owned.MarketValue}
	}
	if b.Financed != nil {
		ownership.Financed = &entity.FinancedTerms{
			InstallmentValue:  b.Financed.InstallmentValue,
			TotalInstallments: b.Financed.TotalInstallments,
			InstallmentsPaid:  b.Financed.InstallmentsPaid,
			DueDay:            b.Financed.DueDay,
			FinancedAmount:    b.Financed.FinancedAmount,
			DownPayment:       b.Financed.DownPayment,
		}
	}
	if b.Rented != nil {
		ownership.Rented = &entity.RentedTerms{
			Value:           b.Rented.Value,
			Period:          entity.RentalPeriod(b.Rented.Period),
			DueRef:          b.Rented.DueRef,
			SecurityDeposit: b.Rented.SecurityDeposit,
			KmLimit:         b.Rented.KmLimit,
		}
	}

	vehicle := &entity.Vehicle{
		ID:              b.ID,
		UserID:          b.UserID,
		Type:            entity.VehicleType(b.Type),
		Brand:           b.Brand,
		Model:           b.Model,
		Plate:           b.Plate,
		Year:            b.Year,
		ModelYear:       b.ModelYear,
		IsActive:        b.IsActive,
		Ownership:       ownership,
		CustomDailyGoal: b.CustomDailyGoal,
		CustomMaintRate: b.CustomMaintRate,
		CurrentKm:       b.CurrentKm,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Insurance != nil {
		vehicle.Insurance = &entity.InsurancePolicy{
			Value:        b.Insurance.Value,
			Installments: b.Insurance.Installments,
			DueDay:       b.Insurance.DueDay,
			ExpiresAt:    b.Insurance.ExpiresAt,
		}
	}
	if b.Purchase != nil {
		vehicle.Purchase = &entity.PurchaseInfo{
			Value:    b.Purchase.Value,
			Date:     b.Purchase.Date,
			Odometer: b.Purchase.Odometer,
		}
	}
	return vehicle
}

// VehicleFromEntity creates a VehicleBlob from a domain Vehicle entity.
func VehicleFromEntity(vehicle *entity.Vehicle) *VehicleBlob {
	blob := &VehicleBlob{
		ID:              vehicle.ID,
		UserID:          vehicle.UserID,
		Type:            string(vehicle.Type),
		Brand:           vehicle.Brand,
		Model:           vehicle.Model,
		Plate:           vehicle.Plate,
		Year:            vehicle.Year,
		ModelYear:       vehicle.ModelYear,
		IsActive:        vehicle.IsActive,
		OwnershipStatus: string(vehicle.Ownership.Status),
		CustomDailyGoal: vehicle.CustomDailyGoal,
		CustomMaintRate: vehicle.CustomMaintRate,
		CurrentKm:       vehicle.CurrentKm,
		CreatedAt:       vehicle.CreatedAt,
		UpdatedAt:       vehicle.UpdatedAt,
	}
	if terms := vehicle.Ownership.Owned; terms != nil {
		blob.Owned = &OwnedTermsBlob{MarketValue: terms.MarketValue}
	}
	if terms := vehicle.Ownership.Financed; terms != nil {
		blob.Financed = &FinancedTermsBlob{
			InstallmentValue:  terms.InstallmentValue,
			TotalInstallments: terms.TotalInstallments,
			InstallmentsPaid:  terms.InstallmentsPaid,
			DueDay:            terms.DueDay,
			FinancedAmount:    terms.FinancedAmount,
			DownPayment:       terms.DownPayment,
		}
	}
	if terms := vehicle.Ownership.Rented; terms != nil {
		blob.Rented = &RentedTermsBlob{
			Value:           terms.Value,
			Period:          string(terms.Period),
			DueRef:          terms.DueRef,
			SecurityDeposit: terms.SecurityDeposit,
			KmLimit:         terms.KmLimit,
		}
	}
	if vehicle.Insurance != nil {
		blob.Insurance = &InsuranceBlob{
			Value:        vehicle.Insurance.Value,
			Installments: vehicle.Insurance.Installments,
			DueDay:       vehicle.Insurance.DueDay,
			ExpiresAt:    vehicle.Insurance.ExpiresAt,
		}
	}
	if vehicle.Purchase != nil {
		blob.Purchase = &PurchaseBlob{
			Value:    vehicle.Purchase.Value,
			Date:     vehicle.Purchase.Date,
			Odometer: vehicle.Purchase.Odometer,
		}
	}
	return blob
}

// FuelBlob mirrors entity.FuelInfo.
type FuelBlob struct {
	Type         string          `json:"type"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Quantity     float64         `json:"quantity"`
}

// TransactionBlob is the stored shape of a ledger entry.
type TransactionBlob struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	VehicleID uuid.UUID       `json:"vehicle_id"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Timestamp time.Time       `json:"timestamp"`
	Odometer  *float64        `json:"odometer,omitempty"`
	Fuel      *FuelBlob       `json:"fuel,omitempty"`
	Origin    string          `json:"origin"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToEntity converts a TransactionBlob to a domain Transaction entity.
func (b *TransactionBlob) ToEntity() *entity.Transaction {
	tx := &entity.Transaction{
		ID:        b.ID,
		UserID:    b.UserID,
		VehicleID: b.VehicleID,
		Type:      entity.TransactionType(b.Type),
		Category:  entity.Category(b.Category),
		Amount:    b.Amount,
		Date:      b.Date,
		Timestamp: b.Timestamp,
		Odometer:  b.Odometer,
		Origin:    entity.Origin(b.Origin),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Fuel != nil {
		tx.Fuel = &entity.FuelInfo{
			Type:         entity.FuelType(b.Fuel.Type),
			PricePerUnit: b.Fuel.PricePerUnit,
			Quantity:     b.Fuel.Quantity,
		}
	}
	return tx
}

// TransactionFromEntity creates a TransactionBlob from a domain Transaction entity.
func TransactionFromEntity(tx *entity.Transaction) *TransactionBlob {
	blob := &TransactionBlob{
		ID:        tx.ID,
		UserID:    tx.UserID,
		VehicleID: tx.VehicleID,
		Type:      string(tx.Type),
		Category:  string(tx.Category),
		Amount:    tx.Amount,
		Date:      tx.Date,
		Timestamp: tx.Timestamp,
		Odometer:  tx.Odometer,
		Origin:    string(tx.Origin),
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
	if tx.Fuel != nil {
		blob.Fuel = &FuelBlob{
			Type:         string(tx.Fuel.Type),
			PricePerUnit: tx.Fuel.PricePerUnit,
			Quantity:     tx.Fuel.Quantity,
		}
	}
	return blob
}
