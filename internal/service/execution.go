package service

import (
	"errors"
	"fmt"
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

const defaultExecutionLimit = 20

// ExecutionService records and lists test executions
type ExecutionService struct {
	testCases  repository.TestCaseRepositoryInterface
	executions repository.ExecutionRepositoryInterface
	access     *AccessService
	recorder   *history.Recorder
	validator  *validator.Validate
}

// NewExecutionService creates a new execution service
func NewExecutionService(testCases repository.TestCaseRepositoryInterface, executions repository.ExecutionRepositoryInterface, access *AccessService, recorder *history.Recorder, validator *validator.Validate) *ExecutionService {
	return &ExecutionService{
		testCases:  testCases,
		executions: executions,
		access:     access,
		recorder:   recorder,
		validator:  validator,
	}
}

// RecordExecutionRequest represents one run of a test case
type RecordExecutionRequest struct {
	Status       models.ExecutionStatus `json:"status" validate:"required" example:"passed"`
	ActualResult string                 `json:"actual_result"`
	Notes        string                 `json:"notes"`
	StepsStatus  []models.StepStatus    `json:"steps_status"`
}

// ExecutionResponse represents a recorded execution
type ExecutionResponse struct {
	ID                   uuid.UUID              `json:"id"`
	TestCaseID           uuid.UUID              `json:"test_case_id"`
	ExecutedBy           uuid.UUID              `json:"executed_by"`
	ExecutorName         string                 `json:"executor_name,omitempty"`
	Status               models.ExecutionStatus `json:"status"`
	ActualResult         string                 `json:"actual_result"`
	Notes                string                 `json:"notes"`
	StepsStatus          []models.StepStatus    `json:"steps_status"`
	StepsRevision        int                    `json:"steps_revision"`
	CompletionPercentage int                    `json:"completion_percentage"`
	Stale                bool                   `json:"stale"`
	ExecutionDate        string                 `json:"execution_date"`
}

// Record stores an execution and moves the test case along: passed closes it,
// failed reactivates it. Both happen in one transaction. Members only.
func (s *ExecutionService) Record(actorID, testCaseID uuid.UUID, req *RecordExecutionRequest) (*ExecutionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	testCase, err := s.testCases.GetByID(testCaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	if _, err := s.access.RequireMember(testCase.ProjectID, actorID); err != nil {
		return nil, err
	}

	var revision int
	execution, err := s.testCases.RecordExecution(testCaseID, func(tc *models.TestCase) (*models.TestExecution, []models.TestCaseHistory, error) {
		statuses, ok := workflow.NormalizeStepStatuses(req.StepsStatus, len(tc.Steps))
		if !ok {
			return nil, nil, apperrors.ErrStepsStatusMismatch
		}

		before := history.Snapshot{history.FieldStatus: string(tc.Status)}
		tc.Status = workflow.TestCaseStatusAfterExecution(req.Status, tc.Status)
		changes := s.recorder.Diff([]string{history.FieldStatus}, before, history.Snapshot{history.FieldStatus: string(tc.Status)})

		revision = tc.StepsRevision
		return &models.TestExecution{
			ExecutedBy:    actorID,
			Status:        req.Status,
			ActualResult:  req.ActualResult,
			Notes:         req.Notes,
			StepsStatus:   datatypes.JSONSlice[models.StepStatus](statuses),
			StepsRevision: tc.StepsRevision,
		}, testCaseHistoryRows(tc.ID, actorID, changes), nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record execution: %w", err)
	}

	response := toExecutionResponse(execution, revision)
	return &response, nil
}

// List retrieves the most recent executions of a test case. Members only.
func (s *ExecutionService) List(actorID, testCaseID uuid.UUID, limit int) ([]ExecutionResponse, error) {
	limit = clampLimit(limit, defaultExecutionLimit)

	testCase, err := s.testCases.GetByID(testCaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestCaseNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	if _, err := s.access.RequireMember(testCase.ProjectID, actorID); err != nil {
		return nil, err
	}

	executions, err := s.executions.ListByTestCase(testCaseID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return toExecutionResponses(executions, testCase.StepsRevision), nil
}

func toExecutionResponses(executions []models.TestExecution, currentRevision int) []ExecutionResponse {
	responses := make([]ExecutionResponse, len(executions))
	for i := range executions {
		responses[i] = toExecutionResponse(&executions[i], currentRevision)
	}
	return responses
}

func toExecutionResponse(e *models.TestExecution, currentRevision int) ExecutionResponse {
	statuses := []models.StepStatus(e.StepsStatus)
	if statuses == nil {
		statuses = []models.StepStatus{}
	}
	response := ExecutionResponse{
		ID:                   e.ID,
		TestCaseID:           e.TestCaseID,
		ExecutedBy:           e.ExecutedBy,
		Status:               e.Status,
		ActualResult:         e.ActualResult,
		Notes:                e.Notes,
		StepsStatus:          statuses,
		StepsRevision:        e.StepsRevision,
		CompletionPercentage: completionOf(statuses),
		Stale:                e.StepsRevision != currentRevision,
		ExecutionDate:        e.ExecutionDate.Format(time.RFC3339),
	}
	if e.Executor != nil {
		response.ExecutorName = e.Executor.FullName
	}
	return response
}
