package dto

import "github.com/coursehub/backend/internal/app/models"

// RegisterRequest represents a public registration request.
// Only student and instructor roles may be self-assigned.
type RegisterRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=student instructor"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents user information with the password stripped
type UserResponse struct {
	ID    int64       `json:"id" example:"1"`
	Email string      `json:"email" example:"jane@example.com"`
	Role  models.Role `json:"role" example:"student"`
}

// AuthResponse carries a signed token and the sanitized user
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType" example:"Bearer"`
	ExpiresIn int64        `json:"expiresIn" example:"86400"`
	User      UserResponse `json:"user"`
}

// NewUserResponse strips the password from a user model
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}
