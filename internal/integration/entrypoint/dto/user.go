package dto

import (
	"time"

	"github.com/motorista-real/backend/internal/domain/entity"
)

// UpdateUserRequest represents the request body for profile updates.
type UpdateUserRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	DailyGoal *float64 `json:"daily_goal,omitempty"`
	IsPro     *bool    `json:"is_pro,omitempty"`
	GoalScope *string  `json:"goal_scope,omitempty" binding:"omitempty,oneof=global per_vehicle"`
}

// UserResponse represents a user profile in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	DailyGoal string    `json:"daily_goal"`
	IsPro     bool      `json:"is_pro"`
	GoalScope string    `json:"goal_scope"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		DailyGoal: user.DailyGoal.String(),
		IsPro:     user.IsPro,
		GoalScope: string(user.GoalScope),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
