// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleType represents the kind of vehicle a driver works with.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "carro"
	VehicleTypeMotorcycle VehicleType = "moto"
)

// OwnershipStatus discriminates the financial profile of a vehicle.
type OwnershipStatus string

const (
	OwnershipOwned    OwnershipStatus = "proprio"
	OwnershipFinanced OwnershipStatus = "financiado"
	OwnershipRented   OwnershipStatus = "alugado"
)

// RentalPeriod represents the billing cadence of a rented vehicle.
type RentalPeriod string

const (
	RentalPeriodWeekly  RentalPeriod = "semanal"
	RentalPeriodMonthly RentalPeriod = "mensal"
)

// PlateLength is the required length of a normalized license plate.
const PlateLength = 7

// Default maintenance reserve rates, in BRL per kilometer.
var (
	DefaultMaintRateCar        = decimal.NewFromFloat(0.15)
	DefaultMaintRateMotorcycle = decimal.NewFromFloat(0.08)
)

// OwnedTerms holds the financial profile of a fully owned vehicle.
type OwnedTerms struct {
	MarketValue decimal.Decimal // current FIPE/market value
}

// FinancedTerms holds the financial profile of a financed vehicle.
type FinancedTerms struct {
	InstallmentValue  decimal.Decimal
	TotalInstallments int
	InstallmentsPaid  int
	DueDay            int // day of month the installment is due, 1-31
	FinancedAmount    decimal.Decimal
	DownPayment       decimal.Decimal
}

// RemainingInstallments returns how many installments are still unpaid.
func (t FinancedTerms) RemainingInstallments() int {
	return t.TotalInstallments - t.InstallmentsPaid
}

// RentedTerms holds the financial profile of a rented vehicle.
type RentedTerms struct {
	Value           decimal.Decimal
	Period          RentalPeriod
	DueRef          int // weekday 0-6 (0=Sunday) when weekly, day of month 1-31 when monthly
	SecurityDeposit decimal.Decimal
	KmLimit         int
}

// Ownership is the tagged variant describing how the vehicle is held.
// Exactly one of the payload fields matching Status is non-nil.
type Ownership struct {
	Status   OwnershipStatus
	Owned    *OwnedTerms
	Financed *FinancedTerms
	Rented   *RentedTerms
}

// InsurancePolicy is an optional attachment, orthogonal to ownership.
type InsurancePolicy struct {
	Value        decimal.Decimal // total policy premium
	Installments int
	DueDay       int
	ExpiresAt    *time.Time
}

// PurchaseInfo records acquisition data used for depreciation estimates.
type PurchaseInfo struct {
	Value    decimal.Decimal
	Date     time.Time
	Odometer *float64
}

// Vehicle represents a registered vehicle and its financial profile.
type Vehicle struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Type            VehicleType
	Brand           string
	Model           string
	Plate           string
	Year            string
	ModelYear       string
	IsActive        bool
	Ownership       Ownership
	Insurance       *InsurancePolicy
	Purchase        *PurchaseInfo
	CustomDailyGoal *decimal.Decimal
	CustomMaintRate *decimal.Decimal
	CurrentKm       *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewVehicle creates a new Vehicle entity. The plate must already be
// normalized and validated by the caller.
func NewVehicle(userID uuid.UUID, vehicleType VehicleType, brand, model, plate string, ownership Ownership) *Vehicle {
	now := time.Now().UTC()
	return &Vehicle{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      vehicleType,
		Brand:     brand,
		Model:     model,
		Plate:     plate,
		Ownership: ownership,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MaintRate returns the maintenance reserve rate for the vehicle,
// preferring the driver-configured rate over the type default.
func (v *Vehicle) MaintRate() decimal.Decimal {
	if v.CustomMaintRate != nil {
		return *v.CustomMaintRate
	}
	if v.Type == VehicleTypeMotorcycle {
		return DefaultMaintRateMotorcycle
	}
	return DefaultMaintRateCar
}

// NormalizePlate uppercases a license plate and strips separators.
func NormalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	plate = strings.ReplaceAll(plate, "-", "")
	plate = strings.ReplaceAll(plate, " ", "")
	return plate
}

// ValidPlate reports whether a normalized plate is exactly PlateLength
// alphanumeric characters.
func ValidPlate(plate string) bool {
	if len(plate) != PlateLength {
		return false
	}
	for _, r := range plate {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
