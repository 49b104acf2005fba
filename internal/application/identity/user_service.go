package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockflow/backend/internal/domain/identity"
	"github.com/stockflow/backend/internal/domain/partner"
	"github.com/stockflow/backend/internal/domain/shared"
)

// TokenIssuer issues signed access tokens for authenticated users
type TokenIssuer interface {
	Issue(user *identity.User) (string, error)
}

// UserService handles authentication and user management
type UserService struct {
	userRepo      identity.UserRepository
	warehouseRepo partner.WarehouseRepository
	tokens        TokenIssuer
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, warehouseRepo partner.WarehouseRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		userRepo:      userRepo,
		warehouseRepo: warehouseRepo,
		tokens:        tokens,
	}
}

// Register creates a new user account. Email must be unique; a
// warehouse admin may be assigned a warehouse at creation time.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "A user with this email already exists")
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	if req.WarehouseID != nil {
		if _, err := s.warehouseRepo.FindByID(ctx, *req.WarehouseID); err != nil {
			return nil, err
		}
		if err := user.AssignWarehouse(*req.WarehouseID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Login verifies credentials and issues an access token.
// Unknown email and wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	invalidCredentials := shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, invalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		return nil, invalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// AssignWarehouse assigns a warehouse admin to a warehouse
func (s *UserService) AssignWarehouse(ctx context.Context, userID uuid.UUID, req AssignWarehouseRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if err := user.AssignWarehouse(req.WarehouseID); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID returns a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List returns all users matching the filter
func (s *UserService) List(ctx context.Context, filter shared.Filter) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
