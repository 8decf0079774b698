package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/application/usecase/vehicle"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/entrypoint/dto"
	"github.com/motorista-real/backend/internal/integration/entrypoint/middleware"
)

// VehicleController handles vehicle endpoints.
type VehicleController struct {
	registerUseCase *vehicle.RegisterVehicleUseCase
	listUseCase     *vehicle.ListVehiclesUseCase
	updateUseCase   *vehicle.UpdateVehicleUseCase
	switchUseCase   *vehicle.SwitchActiveVehicleUseCase
	amortizeUseCase *vehicle.AmortizeInstallmentsUseCase
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(
	registerUseCase *vehicle.RegisterVehicleUseCase,
	listUseCase *vehicle.ListVehiclesUseCase,
	updateUseCase *vehicle.UpdateVehicleUseCase,
	switchUseCase *vehicle.SwitchActiveVehicleUseCase,
	amortizeUseCase *vehicle.AmortizeInstallmentsUseCase,
) *VehicleController {
	return &VehicleController{
		registerUseCase: registerUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		switchUseCase:   switchUseCase,
		amortizeUseCase: amortizeUseCase,
	}
}

// Register handles POST /vehicles requests.
func (c *VehicleController) Register(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RegisterVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingVehicleFields),
		})
		return
	}

	input := vehicle.RegisterVehicleInput{
		UserID:    userID,
		Type:      entity.VehicleType(req.Type),
		Brand:     req.Brand,
		Model:     req.Model,
		Plate:     req.Plate,
		Year:      req.Year,
		ModelYear: req.ModelYear,
		Ownership: req.ToOwnership(),
		CurrentKm: req.CurrentKm,
	}
	if req.Insurance != nil {
		input.Insurance = req.Insurance.ToInsurance()
	}
	if req.Purchase != nil {
		date, err := time.Parse("2006-01-02", req.Purchase.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid purchase date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Purchase = &entity.PurchaseInfo{
			Value:    decimal.NewFromFloat(req.Purchase.Value),
			Date:     date,
			Odometer: req.Purchase.Odometer,
		}
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(output.Vehicle))
}

// List handles GET /vehicles requests.
func (c *VehicleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), vehicle.ListVehiclesInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve vehicles",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleListResponse(output.Vehicles))
}

// Update handles PATCH /vehicles/:id requests.
func (c *VehicleController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.UpdateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vehicle.UpdateVehicleInput{
		UserID:               userID,
		VehicleID:            vehicleID,
		ClearCustomDailyGoal: req.ClearCustomDailyGoal,
		CurrentKm:            req.CurrentKm,
	}
	if req.CustomDailyGoal != nil {
		goal := decimal.NewFromFloat(*req.CustomDailyGoal)
		input.CustomDailyGoal = &goal
	}
	if req.CustomMaintRate != nil {
		rate := decimal.NewFromFloat(*req.CustomMaintRate)
		input.CustomMaintRate = &rate
	}
	if req.Insurance != nil {
		input.Insurance = req.Insurance.ToInsurance()
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(output.Vehicle))
}

// Activate handles POST /vehicles/:id/activate requests.
func (c *VehicleController) Activate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	if err := c.switchUseCase.Execute(ctx.Request.Context(), vehicle.SwitchActiveVehicleInput{
		UserID:    userID,
		VehicleID: vehicleID,
	}); err != nil {
		c.handleVehicleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Amortize handles POST /vehicles/:id/amortize requests.
func (c *VehicleController) Amortize(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	vehicleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid vehicle ID format",
		})
		return
	}

	var req dto.AmortizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := vehicle.AmortizeInstallmentsInput{
		UserID:           userID,
		VehicleID:        vehicleID,
		PaidInstallments: req.PaidInstallments,
	}
	if req.NewInstallmentValue != nil {
		value := decimal.NewFromFloat(*req.NewInstallmentValue)
		input.NewInstallmentValue = &value
	}

	output, err := c.amortizeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleVehicleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"paid_off": output.PaidOff,
		"vehicle":  dto.ToVehicleResponse(output.Vehicle),
	})
}

// handleVehicleError maps domain vehicle errors to HTTP responses.
func (c *VehicleController) handleVehicleError(ctx *gin.Context, err error) {
	var vehicleErr *domainerror.VehicleError
	if errors.As(err, &vehicleErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrVehicleNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrVehicleNotOwnedByUser):
			status = http.StatusForbidden
		case errors.Is(err, domainerror.ErrDuplicatePlate):
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: vehicleErr.Message,
			Code:  string(vehicleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process vehicle",
	})
}
