package handlers

import (
	"net/http"

	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles LDAP directory lookups
type DirectoryHandler struct {
	directory service.Directory
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory service.Directory) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// SearchUsers searches the directory by common name or mail prefix
// @Summary Search directory users
// @Description Searches the LDAP directory for people whose cn or mail starts with q. Admins and leads only.
// @Tags directory
// @Produce json
// @Param q query string true "Name or mail prefix (at least 2 characters)"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing or too short query"
// @Failure 502 {object} ErrorResponse "Directory connection or search failed"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /directory/users [get]
func (h *DirectoryHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: q"})
		return
	}

	users, err := h.directory.Search(q)
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsConfiguration(err) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "directory search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}
