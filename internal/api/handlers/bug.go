package handlers

import (
	"net/http"

	"qa-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BugHandler handles HTTP requests for bugs and their comments
type BugHandler struct {
	bugService     service.BugServiceInterface
	commentService service.CommentServiceInterface
}

// NewBugHandler creates a new bug handler
func NewBugHandler(bugService service.BugServiceInterface, commentService service.CommentServiceInterface) *BugHandler {
	return &BugHandler{
		bugService:     bugService,
		commentService: commentService,
	}
}

// CreateBug handles POST /bugs
// @Summary Report a bug
// @Description Report a bug in a project the caller belongs to. New bugs start open.
// @Description
// @Description Optional Fields with Defaults:
// @Description - priority: Defaults to 'medium' (valid values: low, medium, high, critical)
// @Description - severity: Defaults to 'minor' (valid values: trivial, minor, major, critical, blocker)
// @Description - test_case_id: must belong to the same project
// @Description - assigned_to: must be a member of the project
// @Tags bugs
// @Accept json
// @Produce json
// @Param bug body service.CreateBugRequest true "Bug data"
// @Success 201 {object} service.BugResponse "Successfully reported bug"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not a member of the project"
// @Security BearerAuth
// @Router /bugs [post]
func (h *BugHandler) CreateBug(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateBugRequest
	if !bindJSON(c, &req) {
		return
	}

	bug, err := h.bugService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bug)
}

// ListBugs handles GET /bugs
// @Summary List bugs
// @Description List the bugs of a project, newest first. Without a project the caller's first project is used.
// @Tags bugs
// @Produce json
// @Param project query string false "Project ID (UUID)"
// @Param status query string false "Status filter; 'all' or empty disables it"
// @Success 200 {array} service.BugResponse "Successfully retrieved bugs"
// @Failure 400 {object} ErrorResponse "Invalid project ID or status"
// @Security BearerAuth
// @Router /bugs [get]
func (h *BugHandler) ListBugs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projectQuery(c)
	if !ok {
		return
	}

	bugs, err := h.bugService.List(userID, projectID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bugs)
}

// GetBug handles GET /bugs/:id
// @Summary Get bug by ID
// @Description Get a bug with its comments and latest history entries
// @Tags bugs
// @Produce json
// @Param id path string true "Bug ID (UUID)"
// @Success 200 {object} service.BugDetailResponse "Successfully retrieved bug"
// @Failure 404 {object} ErrorResponse "Bug not found"
// @Security BearerAuth
// @Router /bugs/{id} [get]
func (h *BugHandler) GetBug(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "bug")
	if !ok {
		return
	}

	bug, err := h.bugService.GetDetail(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bug)
}

// UpdateBug handles PATCH /bugs/:id
// @Summary Update a bug
// @Description Change status, priority, severity, assignee or text fields. assigned_to null or "unassigned" clears the assignee.
// @Tags bugs
// @Accept json
// @Produce json
// @Param id path string true "Bug ID (UUID)"
// @Param bug body service.UpdateBugRequest true "Fields to change"
// @Success 200 {object} service.BugResponse "Successfully updated bug"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Status transition not allowed"
// @Security BearerAuth
// @Router /bugs/{id} [patch]
func (h *BugHandler) UpdateBug(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "bug")
	if !ok {
		return
	}

	var req service.UpdateBugRequest
	if !bindJSON(c, &req) {
		return
	}

	bug, err := h.bugService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bug)
}

// DeleteBug handles DELETE /bugs/:id
// @Summary Delete a bug
// @Description Project admins and leads only
// @Tags bugs
// @Param id path string true "Bug ID (UUID)"
// @Success 204 "Bug deleted"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Security BearerAuth
// @Router /bugs/{id} [delete]
func (h *BugHandler) DeleteBug(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "bug")
	if !ok {
		return
	}

	if err := h.bugService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBugHistory handles GET /bugs/:id/history
// @Summary Bug change history
// @Tags bugs
// @Produce json
// @Param id path string true "Bug ID (UUID)"
// @Param limit query int false "Number of entries" default(50)
// @Success 200 {array} service.HistoryResponse "Successfully retrieved history"
// @Security BearerAuth
// @Router /bugs/{id}/history [get]
func (h *BugHandler) GetBugHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "bug")
	if !ok {
		return
	}

	entries, err := h.bugService.History(userID, id, limitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddComment handles POST /bugs/:id/comments
// @Summary Comment on a bug
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Bug ID (UUID)"
// @Param comment body service.AddCommentRequest true "Comment"
// @Success 201 {object} service.CommentResponse "Comment added"
// @Failure 400 {object} ErrorResponse "Empty comment"
// @Security BearerAuth
// @Router /bugs/{id}/comments [post]
func (h *BugHandler) AddComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "bug")
	if !ok {
		return
	}

	var req service.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Add(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /bugs/:id/comments
// @Summary List bug comments
// @Description Oldest first, with author names
// @Tags comments
// @Produce json
// @Param id path string true "Bug ID (UUID)"
// @Success 200 {array} service.CommentResponse "Successfully retrieved comments"
// @Security BearerAuth
// @Router /bugs/{id}/comments [get]
func (h *BugHandler) ListComments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "bug")
	if !ok {
		return
	}

	comments, err := h.commentService.List(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
