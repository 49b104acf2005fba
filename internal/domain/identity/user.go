package identity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the access level of a user
type Role string

const (
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleWarehouseAdmin Role = "WAREHOUSE_ADMIN"
	RoleStaff          Role = "STAFF"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleWarehouseAdmin, RoleStaff:
		return true
	}
	return false
}

// Password cost for bcrypt
const bcryptCost = 12

// User represents a system user.
// Warehouse admins carry the warehouse they are responsible for; that
// assignment gates transfer approvals into their warehouse.
type User struct {
	shared.BaseAggregateRoot
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'STAFF'"`
	WarehouseID  *uuid.UUID `gorm:"type:uuid;index"` // Assigned warehouse for WAREHOUSE_ADMIN
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(name, email, password string, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(email),
		PasswordHash:      string(hash),
		Role:              role,
	}, nil
}

// VerifyPassword checks if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// AssignWarehouse assigns the user to a warehouse (WAREHOUSE_ADMIN only)
func (u *User) AssignWarehouse(warehouseID uuid.UUID) error {
	if u.Role != RoleWarehouseAdmin {
		return shared.NewDomainError("INVALID_ROLE", "Only warehouse admins can be assigned a warehouse")
	}
	if warehouseID == uuid.Nil {
		return shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	u.WarehouseID = &warehouseID
	u.Touch()
	u.IncrementVersion()
	return nil
}

// CanApproveTransferTo reports whether the user may approve a transfer
// into the given destination warehouse.
func (u *User) CanApproveTransferTo(destinationWarehouseID uuid.UUID) bool {
	if u.Role == RoleSuperAdmin {
		return true
	}
	if u.Role == RoleWarehouseAdmin && u.WarehouseID != nil {
		return *u.WarehouseID == destinationWarehouseID
	}
	return false
}

// IsSuperAdmin reports whether the user is a super admin
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
