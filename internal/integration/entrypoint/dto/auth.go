// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/motorista-real/backend/internal/domain/entity"
)

// LoginRequest represents the request body for mock email login.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name,omitempty" binding:"omitempty,max=100"`
}

// ProviderLoginRequest represents the request body for social login.
type ProviderLoginRequest struct {
	Provider   string `json:"provider" binding:"required,oneof=google apple"`
	ExternalID string `json:"external_id" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name,omitempty" binding:"omitempty,max=100"`
}

// LoginResponse represents the response body for a successful login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	IsNewUser   bool         `json:"is_new_user"`
	User        UserResponse `json:"user"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToLoginResponse converts a login result to a LoginResponse DTO.
func ToLoginResponse(user *entity.User, accessToken string, isNewUser bool) LoginResponse {
	return LoginResponse{
		AccessToken: accessToken,
		IsNewUser:   isNewUser,
		User:        ToUserResponse(user),
	}
}
