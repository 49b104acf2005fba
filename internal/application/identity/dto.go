package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/identity"
)

// RegisterRequest creates a user account
type RegisterRequest struct {
	Name        string        `json:"name" binding:"required"`
	Email       string        `json:"email" binding:"required,email"`
	Password    string        `json:"password" binding:"required,min=8"`
	Role        identity.Role `json:"role" binding:"required,oneof=SUPER_ADMIN WAREHOUSE_ADMIN STAFF"`
	WarehouseID *uuid.UUID    `json:"warehouse_id,omitempty"`
}

// LoginRequest authenticates a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AssignWarehouseRequest assigns a warehouse to a warehouse admin
type AssignWarehouseRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
}

// UserResponse represents a user account
type UserResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        identity.Role `json:"role"`
	WarehouseID *uuid.UUID    `json:"warehouse_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ToUserResponse converts a user to its response form
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		WarehouseID: u.WarehouseID,
		CreatedAt:   u.CreatedAt,
	}
}
