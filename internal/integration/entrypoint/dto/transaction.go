package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// FuelRequest represents the optional fuel breakdown of a fuel expense.
type FuelRequest struct {
	Type         string  `json:"type" binding:"required,oneof=Gasolina Etanol GNV kWh"`
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	VehicleID string       `json:"vehicle_id" binding:"required"`
	Type      string       `json:"type" binding:"required,oneof=earning expense"`
	Category  string       `json:"category" binding:"required"`
	Amount    float64      `json:"amount" binding:"required,gt=0"`
	Date      string       `json:"date" binding:"required"`
	Odometer  *float64     `json:"odometer,omitempty"`
	Fuel      *FuelRequest `json:"fuel,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Category  *string      `json:"category,omitempty"`
	Amount    *float64     `json:"amount,omitempty"`
	Date      *string      `json:"date,omitempty"`
	Odometer  *float64     `json:"odometer,omitempty"`
	Fuel      *FuelRequest `json:"fuel,omitempty"`
	ClearFuel bool         `json:"clear_fuel,omitempty"`
}

// FuelResponse mirrors entity.FuelInfo in responses.
type FuelResponse struct {
	Type         string  `json:"type"`
	PricePerUnit string  `json:"price_per_unit"`
	Quantity     float64 `json:"quantity"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string        `json:"id"`
	VehicleID string        `json:"vehicle_id"`
	Type      string        `json:"type"`
	Category  string        `json:"category"`
	Amount    string        `json:"amount"`
	Date      string        `json:"date"`
	Timestamp time.Time     `json:"timestamp"`
	Odometer  *float64      `json:"odometer,omitempty"`
	Fuel      *FuelResponse `json:"fuel,omitempty"`
	Origin    string        `json:"origin"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        tx.ID.String(),
		VehicleID: tx.VehicleID.String(),
		Type:      string(tx.Type),
		Category:  string(tx.Category),
		Amount:    tx.Amount.String(),
		Date:      tx.Date.Format("2006-01-02"),
		Timestamp: tx.Timestamp,
		Odometer:  tx.Odometer,
		Origin:    string(tx.Origin),
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
	if tx.Fuel != nil {
		resp.Fuel = &FuelResponse{
			Type:         string(tx.Fuel.Type),
			PricePerUnit: tx.Fuel.PricePerUnit.String(),
			Quantity:     tx.Fuel.Quantity,
		}
	}
	return resp
}

// ToTransactionListResponse converts a transaction slice to the list DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, ToTransactionResponse(tx))
	}
	return TransactionListResponse{Transactions: out, Total: len(out)}
}

// ToFuelInfo builds the domain fuel breakdown from the request payload.
func (r *FuelRequest) ToFuelInfo() *entity.FuelInfo {
	return &entity.FuelInfo{
		Type:         entity.FuelType(r.Type),
		PricePerUnit: decimal.NewFromFloat(r.PricePerUnit),
		Quantity:     r.Quantity,
	}
}
