package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// OwnedTermsRequest represents the financial profile of an owned vehicle.
type OwnedTermsRequest struct {
	MarketValue float64 `json:"market_value" binding:"omitempty,gte=0"`
}

// FinancedTermsRequest represents the financial profile of a financed vehicle.
type FinancedTermsRequest struct {
	InstallmentValue  float64 `json:"installment_value" binding:"required,gt=0"`
	TotalInstallments int     `json:"total_installments" binding:"required,gt=0"`
	InstallmentsPaid  int     `json:"installments_paid" binding:"gte=0"`
	DueDay            int     `json:"due_day" binding:"required,min=1,max=31"`
	FinancedAmount    float64 `json:"financed_amount" binding:"omitempty,gte=0"`
	DownPayment       float64 `json:"down_payment" binding:"omitempty,gte=0"`
}

// RentedTermsRequest represents the financial profile of a rented vehicle.
type RentedTermsRequest struct {
	Value           float64 `json:"value" binding:"required,gt=0"`
	Period          string  `json:"period" binding:"required,oneof=semanal mensal"`
	DueRef          int     `json:"due_ref" binding:"gte=0,lte=31"`
	SecurityDeposit float64 `json:"security_deposit" binding:"omitempty,gte=0"`
	KmLimit         int     `json:"km_limit" binding:"omitempty,gte=0"`
}

// InsuranceRequest represents the optional insurance attachment.
type InsuranceRequest struct {
	Value        float64    `json:"value" binding:"required,gt=0"`
	Installments int        `json:"installments" binding:"required,gt=0"`
	DueDay       int        `json:"due_day" binding:"required,min=1,max=31"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// PurchaseRequest represents optional acquisition data.
type PurchaseRequest struct {
	Value    float64  `json:"value" binding:"required,gt=0"`
	Date     string   `json:"date" binding:"required"`
	Odometer *float64 `json:"odometer,omitempty"`
}

// RegisterVehicleRequest represents the request body for vehicle registration.
type RegisterVehicleRequest struct {
	Type            string                `json:"type" binding:"required,oneof=carro moto"`
	Brand           string                `json:"brand" binding:"required,min=1,max=60"`
	Model           string                `json:"model" binding:"required,min=1,max=60"`
	Plate           string                `json:"plate" binding:"required"`
	Year            string                `json:"year,omitempty"`
	ModelYear       string                `json:"model_year,omitempty"`
	OwnershipStatus string                `json:"ownership_status" binding:"required,oneof=proprio financiado alugado"`
	Owned           *OwnedTermsRequest    `json:"owned,omitempty"`
	Financed        *FinancedTermsRequest `json:"financed,omitempty"`
	Rented          *RentedTermsRequest   `json:"rented,omitempty"`
	Insurance       *InsuranceRequest     `json:"insurance,omitempty"`
	Purchase        *PurchaseRequest      `json:"purchase,omitempty"`
	CurrentKm       *float64              `json:"current_km,omitempty"`
}

// UpdateVehicleRequest represents the request body for vehicle updates.
type UpdateVehicleRequest struct {
	CustomDailyGoal      *float64          `json:"custom_daily_goal,omitempty"`
	ClearCustomDailyGoal bool              `json:"clear_custom_daily_goal,omitempty"`
	CustomMaintRate      *float64          `json:"custom_maint_rate,omitempty"`
	Insurance            *InsuranceRequest `json:"insurance,omitempty"`
	CurrentKm            *float64          `json:"current_km,omitempty"`
}

// AmortizeRequest represents the request body for installment amortization.
type AmortizeRequest struct {
	PaidInstallments    int      `json:"paid_installments" binding:"required,gt=0"`
	NewInstallmentValue *float64 `json:"new_installment_value,omitempty"`
}

// OwnedTermsResponse mirrors entity.OwnedTerms in responses.
type OwnedTermsResponse struct {
	MarketValue string `json:"market_value"`
}

// FinancedTermsResponse mirrors entity.FinancedTerms in responses.
type FinancedTermsResponse struct {
	InstallmentValue      string `json:"installment_value"`
	TotalInstallments     int    `json:"total_installments"`
	InstallmentsPaid      int    `json:"installments_paid"`
	RemainingInstallments int    `json:"remaining_installments"`
	DueDay                int    `json:"due_day"`
	FinancedAmount        string `json:"financed_amount"`
	DownPayment           string `json:"down_payment"`
}

// RentedTermsResponse mirrors entity.RentedTerms in responses.
type RentedTermsResponse struct {
	Value           string `json:"value"`
	Period          string `json:"period"`
	DueRef          int    `json:"due_ref"`
	SecurityDeposit string `json:"security_deposit"`
	KmLimit         int    `json:"km_limit"`
}

// InsuranceResponse mirrors entity.InsurancePolicy in responses.
type InsuranceResponse struct {
	Value        string     `json:"value"`
	Installments int        `json:"installments"`
	DueDay       int        `json:"due_day"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// VehicleResponse represents a vehicle in API responses.
type VehicleResponse struct {
	ID              string                 `json:"id"`
	Type            string                 `json:"type"`
	Brand           string                 `json:"brand"`
	Model           string                 `json:"model"`
	Plate           string                 `json:"plate"`
	Year            string                 `json:"year,omitempty"`
	ModelYear       string                 `json:"model_year,omitempty"`
	IsActive        bool                   `json:"is_active"`
	OwnershipStatus string                 `json:"ownership_status"`
	Owned           *OwnedTermsResponse    `json:"owned,omitempty"`
	Financed        *FinancedTermsResponse `json:"financed,omitempty"`
	Rented          *RentedTermsResponse   `json:"rented,omitempty"`
	Insurance       *InsuranceResponse     `json:"insurance,omitempty"`
	CustomDailyGoal *string                `json:"custom_daily_goal,omitempty"`
	CustomMaintRate *string                `json:"custom_maint_rate,omitempty"`
	CurrentKm       *float64               `json:"current_km,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ToVehicleResponse converts a domain Vehicle entity to a VehicleResponse DTO.
func ToVehicleResponse(vehicle *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:              vehicle.ID.String(),
		Type:            string(vehicle.Type),
		Brand:           vehicle.Brand,
		Model:           vehicle.Model,
		Plate:           vehicle.Plate,
		Year:            vehicle.Year,
		ModelYear:       vehicle.ModelYear,
		IsActive:        vehicle.IsActive,
		OwnershipStatus: string(vehicle.Ownership.Status),
		CurrentKm:       vehicle.CurrentKm,
		CreatedAt:       vehicle.CreatedAt,
		UpdatedAt:       vehicle.UpdatedAt,
	}
	if terms := vehicle.Ownership.Owned; terms != nil {
		resp.Owned = &OwnedTermsResponse{MarketValue: terms.MarketValue.String()}
	}
	if terms := vehicle.Ownership.Financed; terms != nil {
		resp.Financed = &FinancedTermsResponse{
			InstallmentValue:      terms.InstallmentValue.String(),
			TotalInstallments:     terms.TotalInstallments,
			InstallmentsPaid:      terms.InstallmentsPaid,
			RemainingInstallments: terms.RemainingInstallments(),
			DueDay:                terms.DueDay,
			FinancedAmount:        terms.FinancedAmount.String(),
			DownPayment:           terms.DownPayment.String(),
		}
	}
	if terms := vehicle.Ownership.Rented; terms != nil {
		resp.Rented = &RentedTermsResponse{
			Value:           terms.Value.String(),
			Period:          string(terms.Period),
			DueRef:          terms.DueRef,
			SecurityDeposit: terms.SecurityDeposit.String(),
			KmLimit:         terms.KmLimit,
		}
	}
	if vehicle.Insurance != nil {
		resp.Insurance = &InsuranceResponse{
			Value:        vehicle.Insurance.Value.String(),
			Installments: vehicle.Insurance.Installments,
			DueDay:       vehicle.Insurance.DueDay,
			ExpiresAt:    vehicle.Insurance.ExpiresAt,
		}
	}
	if vehicle.CustomDailyGoal != nil {
		s := vehicle.CustomDailyGoal.String()
		resp.CustomDailyGoal = &s
	}
	if vehicle.CustomMaintRate != nil {
		s := vehicle.CustomMaintRate.String()
		resp.CustomMaintRate = &s
	}
	return resp
}

// ToVehicleListResponse converts a vehicle slice to response DTOs.
func ToVehicleListResponse(vehicles []*entity.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, ToVehicleResponse(v))
	}
	return out
}

// ToOwnership builds the domain ownership variant from the request payload.
func (r *RegisterVehicleRequest) ToOwnership() entity.Ownership {
	ownership := entity.Ownership{Status: entity.OwnershipStatus(r.OwnershipStatus)}
	if r.Owned != nil {
		ownership.Owned = &entity.OwnedTerms{MarketValue: decimal.NewFromFloat(r.Owned.MarketValue)}
	}
	if r.Financed != nil {
		ownership.Financed = &entity.FinancedTerms{
			InstallmentValue:  decimal.NewFromFloat(r.Financed.InstallmentValue),
			TotalInstallments: r.Financed.TotalInstallments,
			InstallmentsPaid:  r.Financed.InstallmentsPaid,
			DueDay:            r.Financed.DueDay,
			FinancedAmount:    decimal.NewFromFloat(r.Financed.FinancedAmount),
			DownPayment:       decimal.NewFromFloat(r.Financed.DownPayment),
		}
	}
	if r.Rented != nil {
		ownership.Rented = &entity.RentedTerms{
			Value:           decimal.NewFromFloat(r.Rented.Value),
			Period:          entity.RentalPeriod(r.Rented.Period),
			DueRef:          r.Rented.DueRef,
			SecurityDeposit: decimal.NewFromFloat(r.Rented.SecurityDeposit),
			KmLimit:         r.Rented.KmLimit,
		}
	}
	return ownership
}

// ToInsurance builds the domain insurance attachment from the request payload.
func (r *InsuranceRequest) ToInsurance() *entity.InsurancePolicy {
	return &entity.InsurancePolicy{
		Value:        decimal.NewFromFloat(r.Value),
		Installments: r.Installments,
		DueDay:       r.DueDay,
		ExpiresAt:    r.ExpiresAt,
	}
}
