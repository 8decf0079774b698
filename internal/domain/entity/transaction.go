// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeEarning TransactionType = "earning"
	TransactionTypeExpense TransactionType = "expense"
)

// Category is the closed set of transaction categories.
type Category string

// Earning categories.
const (
	CategoryUber       Category = "Uber"
	CategoryNinetyNine Category = "99"
	CategoryIndriver   Category = "Indriver"
	CategoryParticular Category = "Particular"
)

// Expense categories.
const (
	CategoryFuel        Category = "Combustível"
	CategoryMaintenance Category = "Manutenção"
	CategoryFood        Category = "Alimentação"
	CategoryCleaning    Category = "Limpeza"
	CategoryFinancing   Category = "FinanciamentoVeiculo"
	CategoryRent        Category = "AluguelVeiculo"
	CategoryInsurance   Category = "Seguro"
	CategoryOther       Category = "Outros"
)

// earningCategories and expenseCategories close the enum per type.
var earningCategories = map[Category]bool{
	CategoryUber:       true,
	CategoryNinetyNine: true,
	CategoryIndriver:   true,
	CategoryParticular: true,
}

var expenseCategories = map[Category]bool{
	CategoryFuel:        true,
	CategoryMaintenance: true,
	CategoryFood:        true,
	CategoryCleaning:    true,
	CategoryFinancing:   true,
	CategoryRent:        true,
	CategoryInsurance:   true,
	CategoryOther:       true,
}

// ValidCategoryForType reports whether a category belongs to the given
// transaction type.
func ValidCategoryForType(category Category, transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeEarning:
		return earningCategories[category]
	case TransactionTypeExpense:
		return expenseCategories[category]
	default:
		return false
	}
}

// FuelType represents the kind of fuel purchased.
type FuelType string

const (
	FuelTypeGasoline FuelType = "Gasolina"
	FuelTypeEthanol  FuelType = "Etanol"
	FuelTypeCNG      FuelType = "GNV"
	FuelTypeElectric FuelType = "kWh"
)

// FuelInfo carries the optional fuel breakdown of a Combustível expense.
type FuelInfo struct {
	Type         FuelType
	PricePerUnit decimal.Decimal
	Quantity     float64
}

// Origin distinguishes user-entered transactions from obligations
// pre-materialized at vehicle registration.
type Origin string

const (
	OriginManual    Origin = "manual"
	OriginScheduled Origin = "scheduled"
)

// Transaction represents a single earning or expense entry of a driver,
// always tied to one vehicle.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VehicleID uuid.UUID
	Type      TransactionType
	Category  Category
	Amount    decimal.Decimal // always positive; Type carries the sign
	Date      time.Time       // calendar day the entry belongs to
	Timestamp time.Time       // creation instant, used for same-day ordering
	Odometer  *float64        // km reading at entry time, when logged
	Fuel      *FuelInfo
	Origin    Origin
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a manual Transaction entity.
func NewTransaction(
	userID, vehicleID uuid.UUID,
	transactionType TransactionType,
	category Category,
	amount decimal.Decimal,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		VehicleID: vehicleID,
		Type:      transactionType,
		Category:  category,
		Amount:    amount,
		Date:      DayOf(date),
		Timestamp: now,
		Origin:    OriginManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewScheduledTransaction creates an expense pre-materialized by the
// obligation scheduler for a future due date.
func NewScheduledTransaction(
	userID, vehicleID uuid.UUID,
	category Category,
	amount decimal.Decimal,
	dueDate time.Time,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		VehicleID: vehicleID,
		Type:      TransactionTypeExpense,
		Category:  category,
		Amount:    amount,
		Date:      DayOf(dueDate),
		Timestamp: dueDate,
		Origin:    OriginScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DayOf truncates a time to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// SameMonth reports whether two instants fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}
