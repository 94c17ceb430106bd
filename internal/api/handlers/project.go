package handlers

import (
	"net/http"

	"qa-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and their members
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
	memberService  service.MemberServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface, memberService service.MemberServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		memberService:  memberService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Description Create a project. Global admins and leads, and leads of any project, may create projects.
// @Description The creator joins as admin when their global role is admin, otherwise as lead.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not allowed to create projects"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List my projects
// @Description Get the projects the caller belongs to with their membership role
// @Tags projects
// @Produce json
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a project with its creator, members and counters. Members only.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectDetailResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Not a member of the project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetDetail(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update a project
// @Description Change name, description or status. Project admins and leads only.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Delete a project with its test cases, executions, bugs and history. Project admins only.
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Project deleted"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /projects/:id/members
// @Summary List project members
// @Tags members
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.MemberResponse "Successfully retrieved members"
// @Failure 403 {object} ErrorResponse "Not a member of the project"
// @Security BearerAuth
// @Router /projects/{id}/members [get]
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	members, err := h.memberService.List(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /projects/:id/members
// @Summary Add a project member
// @Description Add a user by email. Unknown emails are provisioned from the directory when one is configured.
// @Description
// @Description Optional Fields with Defaults:
// @Description - role: Defaults to 'tester' (valid values: admin, lead, tester). Only admins may grant admin.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Member added"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /projects/{id}/members [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Add(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /projects/:id/members/:memberId
// @Summary Remove a project member
// @Description Revoke a membership. Admin members cannot be removed.
// @Tags members
// @Param id path string true "Project ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 204 "Member removed"
// @Failure 403 {object} ErrorResponse "Insufficient role or admin member"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /projects/{id}/members/{memberId} [delete]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId", "member")
	if !ok {
		return
	}

	if err := h.memberService.Remove(userID, projectID, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
