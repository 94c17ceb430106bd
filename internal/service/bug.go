package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/history"
	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bugFields are the audited bug fields in display order
var bugFields = []string{
	history.FieldTitle,
	history.FieldDescription,
	history.FieldStepsToReproduce,
	history.FieldExpectedBehavior,
	history.FieldActualBehavior,
	history.FieldStatus,
	history.FieldPriority,
	history.FieldSeverity,
	history.FieldAssignedTo,
}

// BugService handles business logic for bugs
type BugService struct {
	repo      repository.BugRepositoryInterface
	testCases repository.TestCaseRepositoryInterface
	comments  repository.CommentRepositoryInterface
	access    *AccessService
	recorder  *history.Recorder
	validator *validator.Validate
	strict    bool
	now       func() time.Time
}

// NewBugService creates a new bug service. strict enables the status transition table.
func NewBugService(repo repository.BugRepositoryInterface, testCases repository.TestCaseRepositoryInterface, comments repository.CommentRepositoryInterface, access *AccessService, recorder *history.Recorder, validator *validator.Validate, strict bool) *BugService {
	return &BugService{
		repo:      repo,
		testCases: testCases,
		comments:  comments,
		access:    access,
		recorder:  recorder,
		validator: validator,
		strict:    strict,
		now:       time.Now,
	}
}

// AssigneeField distinguishes an absent assigned_to from one that clears the assignee.
// null, "" and "unassigned" clear; anything else must be a user id.
type AssigneeField struct {
	Set    bool
	UserID *uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler
func (f *AssigneeField) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.UserID = nil
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("assigned_to must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "unassigned") {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("assigned_to must be a user id: %w", err)
	}
	f.UserID = &id
	return nil
}

// CreateBugRequest represents the request to report a bug
type CreateBugRequest struct {
	ProjectID        uuid.UUID       `json:"project_id" validate:"required"`
	TestCaseID       *uuid.UUID      `json:"test_case_id"`
	Title            string          `json:"title" validate:"required,min=1,max=255"`
	Description      string          `json:"description" validate:"required"`
	StepsToReproduce string          `json:"steps_to_reproduce"`
	ExpectedBehavior string          `json:"expected_behavior"`
	ActualBehavior   string          `json:"actual_behavior"`
	Priority         models.Priority `json:"priority,omitempty" example:"medium"`
	Severity         models.Severity `json:"severity,omitempty" example:"minor"`
	AssignedTo       *uuid.UUID      `json:"assigned_to"`
}

// UpdateBugRequest represents a partial bug update
type UpdateBugRequest struct {
	Title            *string           `json:"title" validate:"omitempty,min=1,max=255"`
	Description      *string           `json:"description" validate:"omitempty,min=1"`
	StepsToReproduce *string           `json:"steps_to_reproduce"`
	ExpectedBehavior *string           `json:"expected_behavior"`
	ActualBehavior   *string           `json:"actual_behavior"`
	Status           *models.BugStatus `json:"status"`
	Priority         *models.Priority  `json:"priority"`
	Severity         *models.Severity  `json:"severity"`
	AssignedTo       AssigneeField     `json:"assigned_to" swaggertype:"string"`
}

// BugResponse represents a bug
type BugResponse struct {
	ID               uuid.UUID        `json:"id"`
	ProjectID        uuid.UUID        `json:"project_id"`
	BugNumber        int              `json:"bug_number"`
	TestCaseID       *uuid.UUID       `json:"test_case_id,omitempty"`
	TestCaseTitle    string           `json:"test_case_title,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	StepsToReproduce string           `json:"steps_to_reproduce"`
	ExpectedBehavior string           `json:"expected_behavior"`
	ActualBehavior   string           `json:"actual_behavior"`
	Priority         models.Priority  `json:"priority"`
	Severity         models.Severity  `json:"severity"`
	Status           models.BugStatus `json:"status"`
	ReportedBy       uuid.UUID        `json:"reported_by"`
	ReporterName     string           `json:"reporter_name,omitempty"`
	AssignedTo       *uuid.UUID       `json:"assigned_to,omitempty"`
	AssigneeName     string           `json:"assignee_name,omitempty"`
	ResolvedAt       *string          `json:"resolved_at,omitempty"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

// BugDetailResponse represents a bug with its conversation and latest changes
type BugDetailResponse struct {
	BugResponse
	Comments []CommentResponse `json:"comments"`
	History  []HistoryResponse `json:"history"`
}

// Create reports a bug with the next number of the project. Members only.
func (s *BugService) Create(actorID uuid.UUID, req *CreateBugRequest) (*BugResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be low, medium, high or critical")
	}
	severity := req.Severity
	if severity == "" {
		severity = models.SeverityMinor
	}
	if !severity.IsValid() {
		return nil, apperrors.NewValidationError("severity", "must be minor, major, critical or blocker")
	}

	if _, err := s.access.RequireMember(req.ProjectID, actorID); err != nil {
		return nil, err
	}

	if req.TestCaseID != nil {
		testCase, err := s.testCases.GetByID(*req.TestCaseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTestCaseNotFound
			}
			return nil, fmt.Errorf("failed to get test case: %w", err)
		}
		if testCase.ProjectID != req.ProjectID {
			return nil, apperrors.ErrTestCaseOutOfProject
		}
	}
	if err := s.requireAssignable(req.ProjectID, req.AssignedTo); err != nil {
		return nil, err
	}

	bug := &models.Bug{
		ProjectID:        req.ProjectID,
		TestCaseID:       req.TestCaseID,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		StepsToReproduce: req.StepsToReproduce,
		ExpectedBehavior: req.ExpectedBehavior,
		ActualBehavior:   req.ActualBehavior,
		Priority:         priority,
		Severity:         severity,
		Status:           models.BugStatusOpen,
		ReportedBy:       actorID,
		AssignedTo:       req.AssignedTo,
	}
	if err := s.repo.CreateNumbered(bug); err != nil {
		return nil, fmt.Errorf("failed to create bug: %w", err)
	}

	return toBugResponse(bug), nil
}

// List retrieves the bugs of a project, defaulting to the caller's first project.
// An empty status or "all" disables the status filter.
func (s *BugService) List(actorID uuid.UUID, projectID *uuid.UUID, status string) ([]BugResponse, error) {
	var filter *models.BugStatus
	if status != "" && status != "all" {
		st := models.BugStatus(status)
		if !st.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		filter = &st
	}

	resolved, err := s.access.ResolveProject(actorID, projectID)
	if err != nil {
		return nil, err
	}
	if resolved == uuid.Nil {
		return []BugResponse{}, nil
	}

	bugs, err := s.repo.List(resolved, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bugs: %w", err)
	}

	responses := make([]BugResponse, len(bugs))
	for i := range bugs {
		responses[i] = *toBugResponse(&bugs[i])
	}
	return responses, nil
}

// GetDetail retrieves a bug with its comments and latest history. Members only.
func (s *BugService) GetDetail(actorID, id uuid.UUID) (*BugDetailResponse, error) {
	bug, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBugNotFound
		}
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}
	if _, err := s.access.RequireMember(bug.ProjectID, actorID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByBug(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	entries, err := s.repo.ListHistory(id, detailHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &BugDetailResponse{
		BugResponse: *toBugResponse(bug),
		Comments:    toCommentResponses(comments),
		History:     toBugHistoryResponses(entries),
	}, nil
}

// Update applies a partial update, enforces the status workflow and records one
// history row per changed field. The diff is taken against the row as locked
// inside the update transaction.
func (s *BugService) Update(actorID, id uuid.UUID, req *UpdateBugRequest) (*BugResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be low, medium, high or critical")
	}
	if req.Severity != nil && !req.Severity.IsValid() {
		return nil, apperrors.NewValidationError("severity", "must be minor, major, critical or blocker")
	}

	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBugNotFound
		}
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}
	if _, err := s.access.RequireMember(current.ProjectID, actorID); err != nil {
		return nil, err
	}
	if req.AssignedTo.Set {
		if err := s.requireAssignable(current.ProjectID, req.AssignedTo.UserID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateLocked(id, func(bug *models.Bug) ([]models.BugHistory, error) {
		before := s.snapshot(bug)

		if req.Status != nil {
			guard := workflow.CanTransitionBug(workflow.BugTransitionContext{
				BugNumber: bug.BugNumber,
				From:      bug.Status,
				To:        *req.Status,
				Strict:    s.strict,
			})
			if !guard.Allowed {
				return nil, apperrors.NewConflictError(guard.Reason)
			}
			bug.ResolvedAt = workflow.ResolvedAt(bug.Status, *req.Status, bug.ResolvedAt, s.now())
			bug.Status = *req.Status
		}
		applyBugUpdate(bug, req)

		changes := s.recorder.Diff(bugFields, before, s.snapshot(bug))
		return bugHistoryRows(bug.ID, actorID, changes), nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBugNotFound
		}
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update bug: %w", err)
	}

	return toBugResponse(updated), nil
}

// Delete removes a bug with its comments and history. Managers only.
func (s *BugService) Delete(actorID, id uuid.UUID) error {
	bug, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBugNotFound
		}
		return fmt.Errorf("failed to get bug: %w", err)
	}
	if _, err := s.access.RequireManager(bug.ProjectID, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bug: %w", err)
	}
	return nil
}

// History retrieves the most recent changes of a bug. Members only.
func (s *BugService) History(actorID, id uuid.UUID, limit int) ([]HistoryResponse, error) {
	limit = clampLimit(limit, defaultHistoryLimit)

	bug, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBugNotFound
		}
		return nil, fmt.Errorf("failed to get bug: %w", err)
	}
	if _, err := s.access.RequireMember(bug.ProjectID, actorID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListHistory(id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return toBugHistoryResponses(entries), nil
}

func (s *BugService) requireAssignable(projectID uuid.UUID, assignee *uuid.UUID) error {
	if assignee == nil {
		return nil
	}
	ok, err := s.access.IsMember(projectID, *assignee)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrAssigneeNotMember
	}
	return nil
}

func (s *BugService) snapshot(bug *models.Bug) history.Snapshot {
	return history.Snapshot{
		history.FieldTitle:            bug.Title,
		history.FieldDescription:      bug.Description,
		history.FieldStepsToReproduce: bug.StepsToReproduce,
		history.FieldExpectedBehavior: bug.ExpectedBehavior,
		history.FieldActualBehavior:   bug.ActualBehavior,
		history.FieldStatus:           string(bug.Status),
		history.FieldPriority:         string(bug.Priority),
		history.FieldSeverity:         string(bug.Severity),
		history.FieldAssignedTo:       s.recorder.Assignee(bug.AssignedTo),
	}
}

func applyBugUpdate(bug *models.Bug, req *UpdateBugRequest) {
	if req.Title != nil {
		bug.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		bug.Description = *req.Description
	}
	if req.StepsToReproduce != nil {
		bug.StepsToReproduce = *req.StepsToReproduce
	}
	if req.ExpectedBehavior != nil {
		bug.ExpectedBehavior = *req.ExpectedBehavior
	}
	if req.ActualBehavior != nil {
		bug.ActualBehavior = *req.ActualBehavior
	}
	if req.Priority != nil {
		bug.Priority = *req.Priority
	}
	if req.Severity != nil {
		bug.Severity = *req.Severity
	}
	if req.AssignedTo.Set {
		bug.AssignedTo = req.AssignedTo.UserID
	}
}

func bugHistoryRows(bugID, actorID uuid.UUID, changes []history.Change) []models.BugHistory {
	rows := make([]models.BugHistory, len(changes))
	for i, c := range changes {
		rows[i] = models.BugHistory{
			BugID:     bugID,
			FieldName: c.Label,
			OldValue:  c.OldValue,
			NewValue:  c.NewValue,
			ChangedBy: actorID,
		}
	}
	return rows
}

func toBugResponse(bug *models.Bug) *BugResponse {
	response := &BugResponse{
		ID:               bug.ID,
		ProjectID:        bug.ProjectID,
		BugNumber:        bug.BugNumber,
		TestCaseID:       bug.TestCaseID,
		Title:            bug.Title,
		Description:      bug.Description,
		StepsToReproduce: bug.StepsToReproduce,
		ExpectedBehavior: bug.ExpectedBehavior,
		ActualBehavior:   bug.ActualBehavior,
		Priority:         bug.Priority,
		Severity:         bug.Severity,
		Status:           bug.Status,
		ReportedBy:       bug.ReportedBy,
		AssignedTo:       bug.AssignedTo,
		CreatedAt:        bug.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        bug.UpdatedAt.Format(time.RFC3339),
	}
	if bug.ResolvedAt != nil {
		resolved := bug.ResolvedAt.Format(time.RFC3339)
		response.ResolvedAt = &resolved
	}
	if bug.Reporter != nil {
		response.ReporterName = bug.Reporter.FullName
	}
	if bug.Assignee != nil {
		response.AssigneeName = bug.Assignee.FullName
	}
	if bug.TestCase != nil {
		response.TestCaseTitle = bug.TestCase.Title
	}
	return response
}

func toBugHistoryResponses(entries []models.BugHistory) []HistoryResponse {
	responses := make([]HistoryResponse, len(entries))
	for i, e := range entries {
		responses[i] = HistoryResponse{
			ID:        e.ID,
			FieldName: e.FieldName,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt.Format(time.RFC3339),
		}
		if e.Changer != nil {
			responses[i].ChangedByName = e.Changer.FullName
		}
	}
	return responses
}
