package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorista-real/backend/internal/application/usecase/dashboard"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/entrypoint/dto"
	"github.com/motorista-real/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the daily summary endpoint.
type DashboardController struct {
	summaryUseCase *dashboard.GetDailySummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetDailySummaryUseCase) *DashboardController {
	return &DashboardController{summaryUseCase: summaryUseCase}
}

// GetSummary handles GET /dashboard/summary requests. An optional `date`
// query parameter (YYYY-MM-DD) overrides the reference day.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetDailySummaryInput{UserID: userID}
	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(output))
}

// handleDashboardError maps summary errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
	case errors.Is(err, domainerror.ErrNoActiveVehicle):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "No active vehicle",
			Code:  string(domainerror.ErrCodeNoActiveVehicle),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build daily summary",
		})
	}
}
