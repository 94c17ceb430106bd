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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	detailExecutionLimit = 5
	detailHistoryLimit   = 10
	defaultHistoryLimit  = 50
	maxListLimit         = 200
)

// testCaseFields are the audited test case fields in display order
var testCaseFields = []string{
	history.FieldTitle,
	history.FieldDescription,
	history.FieldPreconditions,
	history.FieldSteps,
	history.FieldExpectedResult,
	history.FieldStatus,
	history.FieldPriority,
	history.FieldMonth,
	history.FieldSprint,
	history.FieldStoryID,
}

// TestCaseService handles business logic for test cases
type TestCaseService struct {
	repo       repository.TestCaseRepositoryInterface
	executions repository.ExecutionRepositoryInterface
	access     *AccessService
	recorder   *history.Recorder
	validator  *validator.Validate
}

// NewTestCaseService creates a new test case service
func NewTestCaseService(repo repository.TestCaseRepositoryInterface, executions repository.ExecutionRepositoryInterface, access *AccessService, recorder *history.Recorder, validator *validator.Validate) *TestCaseService {
	return &TestCaseService{
		repo:       repo,
		executions: executions,
		access:     access,
		recorder:   recorder,
		validator:  validator,
	}
}

// CreateTestCaseRequest represents the request to create a test case
type CreateTestCaseRequest struct {
	ProjectID      uuid.UUID             `json:"project_id" validate:"required"`
	Title          string                `json:"title" validate:"required,min=1,max=255"`
	Description    string                `json:"description"`
	Preconditions  string                `json:"preconditions"`
	Steps          []models.TestStep     `json:"steps" validate:"required,min=1"`
	ExpectedResult string                `json:"expected_result"`
	Status         models.TestCaseStatus `json:"status,omitempty" example:"draft"`
	Priority       models.Priority       `json:"priority,omitempty" example:"medium"`
	Month          string                `json:"month" validate:"max=20"`
	Sprint         string                `json:"sprint" validate:"max=50"`
	StoryID        *int                  `json:"story_id" validate:"omitempty,min=1"`
}

// UpdateTestCaseRequest represents a partial test case update
type UpdateTestCaseRequest struct {
	Title          *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Description    *string                `json:"description"`
	Preconditions  *string                `json:"preconditions"`
	Steps          []models.TestStep      `json:"steps,omitempty"`
	ExpectedResult *string                `json:"expected_result"`
	Status         *models.TestCaseStatus `json:"status"`
	Priority       *models.Priority       `json:"priority"`
	Month          *string                `json:"month" validate:"omitempty,max=20"`
	Sprint         *string                `json:"sprint" validate:"omitempty,max=50"`
	StoryID        StoryIDField           `json:"story_id" swaggertype:"integer"`
}

// StoryIDField distinguishes an absent story_id from a null one that unlinks the story
type StoryIDField struct {
	Set   bool
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler
func (f *StoryIDField) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Value = nil
	if string(data) == "null" {
		return nil
	}

	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("story_id must be an integer: %w", err)
	}
	if id < 1 {
		return fmt.Errorf("story_id must be positive")
	}
	f.Value = &id
	return nil
}

// TestCaseResponse represents a test case
type TestCaseResponse struct {
	ID             uuid.UUID             `json:"id"`
	ProjectID      uuid.UUID             `json:"project_id"`
	CaseNumber     int                   `json:"case_number"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Preconditions  string                `json:"preconditions"`
	Steps          []models.TestStep     `json:"steps"`
	StepsRevision  int                   `json:"steps_revision"`
	ExpectedResult string                `json:"expected_result"`
	Status         models.TestCaseStatus `json:"status"`
	Priority       models.Priority       `json:"priority"`
	StoryID        *int                  `json:"story_id,omitempty"`
	Month          string                `json:"month"`
	Sprint         string                `json:"sprint"`
	CreatedBy      uuid.UUID             `json:"created_by"`
	CreatorName    string                `json:"creator_name,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// TestCaseDetailResponse represents a test case with its recent activity
type TestCaseDetailResponse struct {
	TestCaseResponse
	ProjectName          string              `json:"project_name"`
	RecentExecutions     []ExecutionResponse `json:"recent_executions"`
	History              []HistoryResponse   `json:"history"`
	LatestStepsStatus    []models.StepStatus `json:"latest_steps_status"`
	CompletionPercentage int                 `json:"completion_percentage"`
}

// HistoryResponse represents one audited change
type HistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	FieldName     string    `json:"field_name"`
	OldValue      string    `json:"old_value"`
	NewValue      string    `json:"new_value"`
	ChangedBy     uuid.UUID `json:"changed_by"`
	ChangedByName string    `json:"changed_by_name,omitempty"`
	ChangedAt     string    `json:"changed_at"`
}

// Create adds a numbered test case to a project. Members only.
func (s *TestCaseService) Create(actorID uuid.UUID, req *CreateTestCaseRequest) (*TestCaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateSteps(req.Steps); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.TestCaseStatusDraft
	}
	if status != models.TestCaseStatusDraft && status != models.TestCaseStatusActive {
		return nil, apperrors.NewValidationError("status", "new test cases must be draft or active")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be low, medium, high or critical")
	}

	if _, err := s.access.RequireMember(req.ProjectID, actorID); err != nil {
		return nil, err
	}

	testCase := &models.TestCase{
		ProjectID:      req.ProjectID,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Preconditions:  req.Preconditions,
		Steps:          datatypes.JSONSlice[models.TestStep](req.Steps),
		StepsRevision:  1,
		ExpectedResult: req.ExpectedResult,
		Status:         status,
		Priority:       priority,
		StoryID:        req.StoryID,
		Month:          req.Month,
		Sprint:         req.Sprint,
		CreatedBy:      actorID,
	}
	if err := s.repo.CreateNumbered(testCase); err != nil {
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}

	return toTestCaseResponse(testCase), nil
}

// List retrieves the test cases of a project, defaulting to the caller's first project.
// An empty status or "all" disables the status filter.
func (s *TestCaseService) List(actorID uuid.UUID, projectID *uuid.UUID, status string) ([]TestCaseResponse, error) {
	var filter *models.TestCaseStatus
	if status != "" && status != "all" {
		st := models.TestCaseStatus(status)
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
		return []TestCaseResponse{}, nil
	}

	testCases, err := s.repo.List(resolved, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}

	responses := make([]TestCaseResponse, len(testCases))
	for i := range testCases {
		responses[i] = *toTestCaseResponse(&testCases[i])
	}
	return responses, nil
}

// GetDetail retrieves a test case with recent executions and history. Members only.
func (s *TestCaseService) GetDetail(actorID, id uuid.UUID) (*TestCaseDetailResponse, error) {
	testCase, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	if _, err := s.access.RequireMember(testCase.ProjectID, actorID); err != nil {
		return nil, err
	}

	executions, err := s.executions.ListByTestCase(id, detailExecutionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	entries, err := s.repo.ListHistory(id, detailHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	detail := &TestCaseDetailResponse{
		TestCaseResponse:  *toTestCaseResponse(testCase),
		RecentExecutions:  toExecutionResponses(executions, testCase.StepsRevision),
		History:           toTestCaseHistoryResponses(entries),
		LatestStepsStatus: make([]models.StepStatus, len(testCase.Steps)),
	}
	if testCase.Project != nil {
		detail.ProjectName = testCase.Project.Name
	}
	if len(executions) > 0 {
		latest := detail.RecentExecutions[0]
		if !latest.Stale {
			detail.LatestStepsStatus = latest.StepsStatus
		}
		detail.CompletionPercentage = latest.CompletionPercentage
	}
	return detail, nil
}

// Update applies a partial update and records one history row per changed field.
// The diff is taken against the row as locked inside the update transaction.
func (s *TestCaseService) Update(actorID, id uuid.UUID, req *UpdateTestCaseRequest) (*TestCaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Steps != nil {
		if err := validateSteps(req.Steps); err != nil {
			return nil, err
		}
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be low, medium, high or critical")
	}

	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	if _, err := s.access.RequireMember(current.ProjectID, actorID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateLocked(id, func(tc *models.TestCase) ([]models.TestCaseHistory, error) {
		before := s.snapshot(tc)
		applyTestCaseUpdate(tc, req)
		if history.JSON(tc.Steps) != before[history.FieldSteps] {
			tc.StepsRevision++
		}
		changes := s.recorder.Diff(testCaseFields, before, s.snapshot(tc))
		return testCaseHistoryRows(tc.ID, actorID, changes), nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to update test case: %w", err)
	}

	return toTestCaseResponse(updated), nil
}

// Delete removes a test case with its executions and history. Managers only.
func (s *TestCaseService) Delete(actorID, id uuid.UUID) error {
	testCase, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTestCaseNotFound
		}
		return fmt.Errorf("failed to get test case: %w", err)
	}
	if _, err := s.access.RequireManager(testCase.ProjectID, actorID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete test case: %w", err)
	}
	return nil
}

// History retrieves the most recent changes of a test case. Members only.
func (s *TestCaseService) History(actorID, id uuid.UUID, limit int) ([]HistoryResponse, error) {
	limit = clampLimit(limit, defaultHistoryLimit)

	testCase, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	if _, err := s.access.RequireMember(testCase.ProjectID, actorID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListHistory(id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return toTestCaseHistoryResponses(entries), nil
}

func (s *TestCaseService) snapshot(tc *models.TestCase) history.Snapshot {
	return history.Snapshot{
		history.FieldTitle:          tc.Title,
		history.FieldDescription:    tc.Description,
		history.FieldPreconditions:  tc.Preconditions,
		history.FieldSteps:          history.JSON(tc.Steps),
		history.FieldExpectedResult: tc.ExpectedResult,
		history.FieldStatus:         string(tc.Status),
		history.FieldPriority:       string(tc.Priority),
		history.FieldMonth:          tc.Month,
		history.FieldSprint:         tc.Sprint,
		history.FieldStoryID:        history.Int(tc.StoryID),
	}
}

func applyTestCaseUpdate(tc *models.TestCase, req *UpdateTestCaseRequest) {
	if req.Title != nil {
		tc.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		tc.Description = *req.Description
	}
	if req.Preconditions != nil {
		tc.Preconditions = *req.Preconditions
	}
	if req.Steps != nil {
		tc.Steps = datatypes.JSONSlice[models.TestStep](req.Steps)
	}
	if req.ExpectedResult != nil {
		tc.ExpectedResult = *req.ExpectedResult
	}
	if req.Status != nil {
		tc.Status = *req.Status
	}
	if req.Priority != nil {
		tc.Priority = *req.Priority
	}
	if req.Month != nil {
		tc.Month = *req.Month
	}
	if req.Sprint != nil {
		tc.Sprint = *req.Sprint
	}
	if req.StoryID.Set {
		tc.StoryID = req.StoryID.Value
	}
}

func validateSteps(steps []models.TestStep) error {
	if len(steps) == 0 {
		return apperrors.NewValidationError("steps", "at least one step is required")
	}
	for i, step := range steps {
		if strings.TrimSpace(step.Action) == "" {
			return apperrors.NewValidationError("steps", fmt.Sprintf("step %d has no action", i+1))
		}
	}
	return nil
}

func testCaseHistoryRows(testCaseID, actorID uuid.UUID, changes []history.Change) []models.TestCaseHistory {
	rows := make([]models.TestCaseHistory, len(changes))
	for i, c := range changes {
		rows[i] = models.TestCaseHistory{
			TestCaseID: testCaseID,
			FieldName:  c.Label,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangedBy:  actorID,
		}
	}
	return rows
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func toTestCaseResponse(tc *models.TestCase) *TestCaseResponse {
	steps := []models.TestStep(tc.Steps)
	if steps == nil {
		steps = []models.TestStep{}
	}
	response := &TestCaseResponse{
		ID:             tc.ID,
		ProjectID:      tc.ProjectID,
		CaseNumber:     tc.CaseNumber,
		Title:          tc.Title,
		Description:    tc.Description,
		Preconditions:  tc.Preconditions,
		Steps:          steps,
		StepsRevision:  tc.StepsRevision,
		ExpectedResult: tc.ExpectedResult,
		Status:         tc.Status,
		Priority:       tc.Priority,
		StoryID:        tc.StoryID,
		Month:          tc.Month,
		Sprint:         tc.Sprint,
		CreatedBy:      tc.CreatedBy,
		CreatedAt:      tc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      tc.UpdatedAt.Format(time.RFC3339),
	}
	if tc.Creator != nil {
		response.CreatorName = tc.Creator.FullName
	}
	return response
}

func toTestCaseHistoryResponses(entries []models.TestCaseHistory) []HistoryResponse {
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

// completionOf is the completion percentage of one execution's step flags
func completionOf(statuses []models.StepStatus) int {
	return workflow.CompletionPercentage(workflow.CountCompleted(statuses), len(statuses))
}
