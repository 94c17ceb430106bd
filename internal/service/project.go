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

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	access    *AccessService
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, access *AccessService, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		access:    access,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=200"`
	Description string               `json:"description,omitempty"`
	Status      models.ProjectStatus `json:"status,omitempty" example:"active"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	CreatedBy   uuid.UUID            `json:"created_by"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// ProjectSummaryResponse is one entry of the caller's project list
type ProjectSummaryResponse struct {
	ProjectResponse
	MemberRole  models.Role `json:"member_role"`
	CreatorName string      `json:"creator_name"`
}

// ProjectListResponse represents the caller's projects
type ProjectListResponse struct {
	Projects          []ProjectSummaryResponse `json:"projects"`
	CanCreateProjects bool                     `json:"can_create_projects"`
}

// MemberResponse represents a project member with profile data
type MemberResponse struct {
	ID       uuid.UUID   `json:"id"`
	UserID   uuid.UUID   `json:"user_id"`
	Role     models.Role `json:"role"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	JoinedAt string      `json:"joined_at"`
}

// ProjectDetailResponse represents a project with its people and counters
type ProjectDetailResponse struct {
	ProjectResponse
	Creator       *UserResponse    `json:"creator,omitempty"`
	Members       []MemberResponse `json:"members"`
	MemberRole    models.Role      `json:"member_role"`
	TestCaseCount int64            `json:"test_case_count"`
	BugCount      int64            `json:"bug_count"`
}

// Create creates a project and makes the creator its first member.
// Global admins join as admin, everybody else as lead.
func (s *ProjectService) Create(actorID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	actor, err := s.access.Actor(actorID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.access.CanCreateProjects(actor)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientRole
	}

	ownerRole := models.RoleLead
	if actor.Role == models.RoleAdmin {
		ownerRole = models.RoleAdmin
	}

	project := &models.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      status,
		CreatedBy:   actor.ID,
	}
	owner := &models.ProjectMember{
		UserID: actor.ID,
		Role:   ownerRole,
	}

	if err := s.repo.CreateWithOwner(project, owner); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// ListForUser retrieves the projects the caller belongs to
func (s *ProjectService) ListForUser(actorID uuid.UUID) (*ProjectListResponse, error) {
	actor, err := s.access.Actor(actorID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListForUser(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	canCreate, err := s.access.CanCreateProjects(actor)
	if err != nil {
		return nil, err
	}

	projects := make([]ProjectSummaryResponse, len(rows))
	for i, row := range rows {
		projects[i] = ProjectSummaryResponse{
			ProjectResponse: ProjectResponse{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Status:      row.Status,
				CreatedBy:   row.CreatedBy,
				CreatedAt:   row.CreatedAt.Format(time.RFC3339),
			},
			MemberRole:  row.MemberRole,
			CreatorName: row.CreatorName,
		}
	}

	return &ProjectListResponse{Projects: projects, CanCreateProjects: canCreate}, nil
}

// GetDetail retrieves a project with creator, members and counters. Members only.
func (s *ProjectService) GetDetail(actorID, id uuid.UUID) (*ProjectDetailResponse, error) {
	membership, err := s.access.RequireMember(id, actorID)
	if err != nil {
		return nil, err
	}

	project, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	testCases, err := s.repo.CountTestCases(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count test cases: %w", err)
	}
	bugs, err := s.repo.CountBugs(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count bugs: %w", err)
	}

	detail := &ProjectDetailResponse{
		ProjectResponse: *toProjectResponse(project),
		Members:         toMemberResponses(project.Members),
		MemberRole:      membership.Role,
		TestCaseCount:   testCases,
		BugCount:        bugs,
	}
	if project.Creator != nil {
		detail.Creator = toUserResponse(project.Creator)
	}
	return detail, nil
}

// Update changes the name, description or status of a project. Managers only.
func (s *ProjectService) Update(actorID, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.access.RequireManager(id, actorID); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return toProjectResponse(project), nil
}

// Delete removes a project with everything in it. Project admins only.
func (s *ProjectService) Delete(actorID, id uuid.UUID) error {
	if _, err := s.access.RequireProjectAdmin(id, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}

func toMemberResponses(members []models.ProjectMember) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = toMemberResponse(&m)
	}
	return responses
}

func toMemberResponse(member *models.ProjectMember) MemberResponse {
	response := MemberResponse{
		ID:       member.ID,
		UserID:   member.UserID,
		Role:     member.Role,
		JoinedAt: member.JoinedAt.Format(time.RFC3339),
	}
	if member.User != nil {
		response.FullName = member.User.FullName
		response.Email = member.User.Email
	}
	return response
}
