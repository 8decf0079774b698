package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorista-real/backend/internal/application/usecase/version"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/entrypoint/dto"
	"github.com/motorista-real/backend/internal/integration/entrypoint/middleware"
)

// VersionController handles app version endpoints.
type VersionController struct {
	checkUseCase   *version.CheckUpdateUseCase
	dismissUseCase *version.DismissNotesUseCase
}

// NewVersionController creates a new version controller instance.
func NewVersionController(
	checkUseCase *version.CheckUpdateUseCase,
	dismissUseCase *version.DismissNotesUseCase,
) *VersionController {
	return &VersionController{
		checkUseCase:   checkUseCase,
		dismissUseCase: dismissUseCase,
	}
}

// Check handles GET /version requests.
func (c *VersionController) Check(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.checkUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to check version",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVersionResponse(output))
}

// Dismiss handles POST /version/dismiss requests.
func (c *VersionController) Dismiss(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DismissNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.dismissUseCase.Execute(ctx.Request.Context(), userID, req.Version); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to dismiss release notes",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
