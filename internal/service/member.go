package service

import (
	"errors"
	"fmt"
	"strings"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/logger"
	"qa-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for project membership
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	users     repository.UserRepositoryInterface
	access    *AccessService
	directory Directory
	validator *validator.Validate
}

// NewMemberService creates a new member service. directory may be nil.
func NewMemberService(repo repository.MemberRepositoryInterface, users repository.UserRepositoryInterface, access *AccessService, directory Directory, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		users:     users,
		access:    access,
		directory: directory,
		validator: validator,
	}
}

// AddMemberRequest represents the request to add someone to a project
type AddMemberRequest struct {
	Email string      `json:"email" validate:"required,email,max=255"`
	Role  models.Role `json:"role,omitempty" example:"tester"`
}

// List retrieves the members of a project. Members only.
func (s *MemberService) List(actorID, projectID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.access.RequireMember(projectID, actorID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return toMemberResponses(members), nil
}

// Add grants a user access to a project. Managers only; only admins may grant admin.
// An email without an account is provisioned from the directory when one is configured.
func (s *MemberService) Add(actorID, projectID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleTester
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be admin, lead or tester")
	}

	manager, err := s.access.RequireManager(projectID, actorID)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin && manager.Role != models.RoleAdmin {
		return nil, apperrors.ErrOnlyAdminGrantsAdmin
	}

	user, err := s.findOrProvision(req.Email)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByProjectAndUser(projectID, user.ID); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    user.ID,
		Role:      role,
	}
	if err := s.repo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMemberExists
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	member.User = user
	response := toMemberResponse(member)
	return &response, nil
}

// Remove revokes a membership. Managers only; admin members stay.
func (s *MemberService) Remove(actorID, projectID, memberID uuid.UUID) error {
	if _, err := s.access.RequireManager(projectID, actorID); err != nil {
		return err
	}

	member, err := s.repo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member.ProjectID != projectID {
		return apperrors.ErrProjectMemberNotFound
	}
	if member.Role == models.RoleAdmin {
		return apperrors.ErrCannotRemoveAdmin
	}

	if err := s.repo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *MemberService) findOrProvision(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if s.directory == nil || !s.directory.Enabled() {
		return nil, apperrors.ErrUserNotFound
	}

	entry, err := s.directory.LookupByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up directory: %w", err)
	}

	user = &models.User{
		Email:         email,
		FullName:      entry.FullName(),
		Role:          models.RoleTester,
		IsActive:      true,
		EmailVerified: true,
		AuthProvider:  models.AuthProviderLDAP,
		ExternalID:    entry.DN,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"email": email,
		"dn":    entry.DN,
	}).Info("provisioned user from directory")
	return user, nil
}
