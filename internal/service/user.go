package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	access    *AccessService
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, access *AccessService, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		access:    access,
		validator: validator,
	}
}

// UpdateUserRequest represents the fields an admin may change on a user
type UpdateUserRequest struct {
	FullName *string      `json:"full_name" validate:"omitempty,min=1,max=200"`
	Role     *models.Role `json:"role" example:"tester"`
	IsActive *bool        `json:"is_active"`
}

// UserResponse represents the public profile of a user
type UserResponse struct {
	ID            uuid.UUID           `json:"id"`
	Email         string              `json:"email"`
	FullName      string              `json:"full_name"`
	Role          models.Role         `json:"role"`
	IsActive      bool                `json:"is_active"`
	EmailVerified bool                `json:"email_verified"`
	AuthProvider  models.AuthProvider `json:"auth_provider"`
	CreatedAt     string              `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// GetByID retrieves a user profile
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// List retrieves users page by page; only global admins may list accounts
func (s *UserService) List(actorID uuid.UUID, limit, offset int) (*UserListResponse, error) {
	if limit < 1 || limit > 200 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	actor, err := s.access.Actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrInsufficientRole
	}

	users, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return &UserListResponse{Users: responses, Total: total, Limit: limit, Offset: offset}, nil
}

// Update changes the name, global role or active flag of a user. Admin only.
func (s *UserService) Update(actorID, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Role != nil && !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be admin, lead or tester")
	}

	actor, err := s.access.Actor(actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrInsufficientRole
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          user.Role,
		IsActive:      user.IsActive,
		EmailVerified: user.EmailVerified,
		AuthProvider:  user.AuthProvider,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}
