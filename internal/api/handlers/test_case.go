package handlers

import (
	"net/http"

	"qa-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TestCaseHandler handles HTTP requests for test cases and their executions
type TestCaseHandler struct {
	testCaseService  service.TestCaseServiceInterface
	executionService service.ExecutionServiceInterface
}

// NewTestCaseHandler creates a new test case handler
func NewTestCaseHandler(testCaseService service.TestCaseServiceInterface, executionService service.ExecutionServiceInterface) *TestCaseHandler {
	return &TestCaseHandler{
		testCaseService:  testCaseService,
		executionService: executionService,
	}
}

// CreateTestCase handles POST /test-cases
// @Summary Create a test case
// @Description Create a test case in a project the caller belongs to. case_number is assigned per project.
// @Description
// @Description Optional Fields with Defaults:
// @Description - status: Defaults to 'draft' (valid values: draft, active)
// @Description - priority: Defaults to 'medium' (valid values: low, medium, high, critical)
// @Tags test-cases
// @Accept json
// @Produce json
// @Param testCase body service.CreateTestCaseRequest true "Test case data"
// @Success 201 {object} service.TestCaseResponse "Successfully created test case"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not a member of the project"
// @Security BearerAuth
// @Router /test-cases [post]
func (h *TestCaseHandler) CreateTestCase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateTestCaseRequest
	if !bindJSON(c, &req) {
		return
	}

	testCase, err := h.testCaseService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, testCase)
}

// ListTestCases handles GET /test-cases
// @Summary List test cases
// @Description List the test cases of a project, newest first. Without a project the caller's first project is used.
// @Tags test-cases
// @Produce json
// @Param project query string false "Project ID (UUID)"
// @Param status query string false "Status filter; 'all' or empty disables it"
// @Success 200 {array} service.TestCaseResponse "Successfully retrieved test cases"
// @Failure 400 {object} ErrorResponse "Invalid project ID or status"
// @Failure 403 {object} ErrorResponse "Not a member of the project"
// @Security BearerAuth
// @Router /test-cases [get]
func (h *TestCaseHandler) ListTestCases(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projectQuery(c)
	if !ok {
		return
	}

	testCases, err := h.testCaseService.List(userID, projectID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCases)
}

// GetTestCase handles GET /test-cases/:id
// @Summary Get test case by ID
// @Description Get a test case with recent executions, recent history and the latest step statuses
// @Tags test-cases
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Success 200 {object} service.TestCaseDetailResponse "Successfully retrieved test case"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id} [get]
func (h *TestCaseHandler) GetTestCase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "test case")
	if !ok {
		return
	}

	testCase, err := h.testCaseService.GetDetail(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// UpdateTestCase handles PUT /test-cases/:id
// @Summary Update a test case
// @Description Change any subset of fields. Every changed tracked field writes one history entry.
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param testCase body service.UpdateTestCaseRequest true "Fields to change"
// @Success 200 {object} service.TestCaseResponse "Successfully updated test case"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id} [put]
func (h *TestCaseHandler) UpdateTestCase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "test case")
	if !ok {
		return
	}

	var req service.UpdateTestCaseRequest
	if !bindJSON(c, &req) {
		return
	}

	testCase, err := h.testCaseService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// DeleteTestCase handles DELETE /test-cases/:id
// @Summary Delete a test case
// @Description Project admins and leads only
// @Tags test-cases
// @Param id path string true "Test case ID (UUID)"
// @Success 204 "Test case deleted"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Security BearerAuth
// @Router /test-cases/{id} [delete]
func (h *TestCaseHandler) DeleteTestCase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "test case")
	if !ok {
		return
	}

	if err := h.testCaseService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTestCaseHistory handles GET /test-cases/:id/history
// @Summary Test case change history
// @Tags test-cases
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param limit query int false "Number of entries" default(50)
// @Success 200 {array} service.HistoryResponse "Successfully retrieved history"
// @Security BearerAuth
// @Router /test-cases/{id}/history [get]
func (h *TestCaseHandler) GetTestCaseHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "test case")
	if !ok {
		return
	}

	entries, err := h.testCaseService.History(userID, id, limitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RecordExecution handles POST /test-cases/:id/executions
// @Summary Record a test run
// @Description Record one run with per-step completion. A passed run closes the test case, a failed run reactivates it.
// @Tags executions
// @Accept json
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param execution body service.RecordExecutionRequest true "Run result"
// @Success 201 {object} service.ExecutionResponse "Run recorded"
// @Failure 400 {object} ErrorResponse "Invalid status or step count"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Security BearerAuth
// @Router /test-cases/{id}/executions [post]
func (h *TestCaseHandler) RecordExecution(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "test case")
	if !ok {
		return
	}

	var req service.RecordExecutionRequest
	if !bindJSON(c, &req) {
		return
	}

	execution, err := h.executionService.Record(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, execution)
}

// ListExecutions handles GET /test-cases/:id/executions
// @Summary List test runs
// @Description Newest first. Runs recorded against an older step list are flagged stale.
// @Tags executions
// @Produce json
// @Param id path string true "Test case ID (UUID)"
// @Param limit query int false "Number of runs" default(20)
// @Success 200 {array} service.ExecutionResponse "Successfully retrieved runs"
// @Security BearerAuth
// @Router /test-cases/{id}/executions [get]
func (h *TestCaseHandler) ListExecutions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "test case")
	if !ok {
		return
	}

	executions, err := h.executionService.List(userID, id, limitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, executions)
}
