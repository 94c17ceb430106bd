package service

import (
	"fmt"

	"qa-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardResponse is the landing summary of the signed-in user
type DashboardResponse struct {
	User              UserResponse `json:"user"`
	ProjectCount      int64        `json:"project_count"`
	ReportedBugs      int64        `json:"reported_bugs"`
	AssignedOpenBugs  int64        `json:"assigned_open_bugs"`
	CanCreateProjects bool         `json:"can_create_projects"`
}

// DashboardService builds the per-user landing summary
type DashboardService struct {
	bugs   repository.BugRepositoryInterface
	access *AccessService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(bugs repository.BugRepositoryInterface, access *AccessService) *DashboardService {
	return &DashboardService{bugs: bugs, access: access}
}

// Get returns the caller's profile and personal counters
func (s *DashboardService) Get(actorID uuid.UUID) (*DashboardResponse, error) {
	actor, err := s.access.Actor(actorID)
	if err != nil {
		return nil, err
	}

	projects, err := s.access.CountProjects(actorID)
	if err != nil {
		return nil, err
	}
	reported, err := s.bugs.CountReportedBy(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reported bugs: %w", err)
	}
	assigned, err := s.bugs.CountOpenAssignedTo(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assigned bugs: %w", err)
	}
	canCreate, err := s.access.CanCreateProjects(actor)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		User:              *toUserResponse(actor),
		ProjectCount:      projects,
		ReportedBugs:      reported,
		AssignedOpenBugs:  assigned,
		CanCreateProjects: canCreate,
	}, nil
}
