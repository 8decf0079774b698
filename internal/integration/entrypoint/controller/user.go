package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/motorista-real/backend/internal/application/usecase/user"
	"github.com/motorista-real/backend/internal/domain/entity"
	domainerror "github.com/motorista-real/backend/internal/domain/error"
	"github.com/motorista-real/backend/internal/integration/entrypoint/dto"
	"github.com/motorista-real/backend/internal/integration/entrypoint/middleware"
)

// UserController handles profile endpoints.
type UserController struct {
	getUseCase    *user.GetUserUseCase
	updateUseCase *user.UpdateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(getUseCase *user.GetUserUseCase, updateUseCase *user.UpdateUserUseCase) *UserController {
	return &UserController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /users/me requests.
func (c *UserController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	profile, err := c.getUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(profile))
}

// Update handles PATCH /users/me requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := user.UpdateUserInput{
		UserID: userID,
		Name:   req.Name,
		IsPro:  req.IsPro,
	}
	if req.DailyGoal != nil {
		goal := decimal.NewFromFloat(*req.DailyGoal)
		input.DailyGoal = &goal
	}
	if req.GoalScope != nil {
		scope := entity.GoalScope(*req.GoalScope)
		input.GoalScope = &scope
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleUserError maps domain user errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}
	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to process profile",
	})
}
