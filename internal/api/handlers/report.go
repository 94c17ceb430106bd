package handlers

import (
	"net/http"

	"qa-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the reports and the personal dashboard
type ReportHandler struct {
	reportService    service.ReportServiceInterface
	dashboardService service.DashboardServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface, dashboardService service.DashboardServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService:    reportService,
		dashboardService: dashboardService,
	}
}

// GetReport handles GET /reports
// @Summary Quality report
// @Description Per-project and aggregate counters plus a daily bug trend. Admins see every project.
// @Tags reports
// @Produce json
// @Param project query string false "Restrict the report to one project (UUID)"
// @Success 200 {object} service.ReportResponse "Report"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Not a member of the project"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projectQuery(c)
	if !ok {
		return
	}

	report, err := h.reportService.Generate(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetDashboard handles GET /dashboard
// @Summary Personal dashboard
// @Tags reports
// @Produce json
// @Success 200 {object} service.DashboardResponse "Dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
