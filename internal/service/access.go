package service

import (
	"errors"
	"fmt"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessService answers membership and role questions for the other services.
// A user reaches project-scoped data only through a ProjectMember row.
type AccessService struct {
	users    repository.UserRepositoryInterface
	projects repository.ProjectRepositoryInterface
	members  repository.MemberRepositoryInterface
}

// NewAccessService creates a new access service
func NewAccessService(users repository.UserRepositoryInterface, projects repository.ProjectRepositoryInterface, members repository.MemberRepositoryInterface) *AccessService {
	return &AccessService{
		users:    users,
		projects: projects,
		members:  members,
	}
}

// Actor loads the acting user and rejects deactivated accounts
func (s *AccessService) Actor(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return user, nil
}

// RequireMember returns the caller's membership in the project. The caller must
// also be an active user.
func (s *AccessService) RequireMember(projectID, userID uuid.UUID) (*models.ProjectMember, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	member, err := s.members.GetByProjectAndUser(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotProjectMember
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	// Deactivated accounts lose access even while their access token is still valid
	if _, err := s.Actor(userID); err != nil {
		return nil, err
	}
	return member, nil
}

// RequireManager returns the caller's membership when it carries the admin or lead role
func (s *AccessService) RequireManager(projectID, userID uuid.UUID) (*models.ProjectMember, error) {
	member, err := s.RequireMember(projectID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManage() {
		return nil, apperrors.ErrInsufficientRole
	}
	return member, nil
}

// RequireProjectAdmin returns the caller's membership when it carries the admin role
func (s *AccessService) RequireProjectAdmin(projectID, userID uuid.UUID) (*models.ProjectMember, error) {
	member, err := s.RequireMember(projectID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role != models.RoleAdmin {
		return nil, apperrors.ErrInsufficientRole
	}
	return member, nil
}

// ResolveProject picks the project a list request is about. Without an explicit
// project the caller's first project is used; uuid.Nil means the caller has none.
func (s *AccessService) ResolveProject(userID uuid.UUID, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		if _, err := s.RequireMember(*requested, userID); err != nil {
			return uuid.Nil, err
		}
		return *requested, nil
	}

	ids, err := s.ProjectIDs(userID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(ids) == 0 {
		return uuid.Nil, nil
	}
	return ids[0], nil
}

// CanCreateProjects reports whether the user may create projects: a global admin
// or lead, or a lead of any project.
func (s *AccessService) CanCreateProjects(user *models.User) (bool, error) {
	if user.Role.CanManage() {
		return true, nil
	}
	isLead, err := s.members.HasRole(user.ID, models.RoleLead)
	if err != nil {
		return false, fmt.Errorf("failed to check project roles: %w", err)
	}
	return isLead, nil
}

// IsMember reports whether the user belongs to the project
func (s *AccessService) IsMember(projectID, userID uuid.UUID) (bool, error) {
	_, err := s.members.GetByProjectAndUser(projectID, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check membership: %w", err)
}

// ProjectIDs lists the projects the user belongs to
func (s *AccessService) ProjectIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.members.ProjectIDsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user projects: %w", err)
	}
	return ids, nil
}

// CountProjects returns how many projects the user belongs to
func (s *AccessService) CountProjects(userID uuid.UUID) (int64, error) {
	count, err := s.members.CountByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count user projects: %w", err)
	}
	return count, nil
}
