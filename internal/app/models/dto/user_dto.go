package dto

import "github.com/coursehub/backend/internal/app/models"

// UpdateUserRequest represents a partial user update performed by an admin.
// Passwords cannot be changed through this path.
type UpdateUserRequest struct {
	Email *string      `json:"email" binding:"omitempty,email"`
	Role  *models.Role `json:"role" binding:"omitempty,oneof=student instructor admin super-admin"`
}
