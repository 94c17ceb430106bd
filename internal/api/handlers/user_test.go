package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"qa-tracker-backend/internal/api/handlers"
	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/mocks"
	"qa-tracker-backend/internal/service"
	"qa-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceInterface(ctrl)
	adminID := uuid.New()

	handler := handlers.NewUserHandler(users)
	h := testutils.SetupHTTPTest()
	h.Router.Use(testutils.AsUser(adminID, "admin@example.com", "admin"))
	h.Router.GET("/users", handler.ListUsers)
	h.Router.GET("/users/:id", handler.GetUser)
	h.Router.PATCH("/users/:id", handler.UpdateUser)

	t.Run("list with defaults", func(t *testing.T) {
		users.EXPECT().List(adminID, 20, 0).Return(&service.UserListResponse{Total: 1, Limit: 20}, nil)

		w := h.MakeRequest(http.MethodGet, "/users", nil)

		var got service.UserListResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, int64(1), got.Total)
	})

	t.Run("list with bad limit", func(t *testing.T) {
		w := h.MakeRequest(http.MethodGet, "/users?limit=ten", nil)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid limit")
	})

	t.Run("list out of range", func(t *testing.T) {
		users.EXPECT().List(adminID, 500, 0).Return(nil, apperrors.ErrInvalidPaginationParams)

		w := h.MakeRequest(http.MethodGet, "/users?limit=500", nil)
		testutils.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("get missing", func(t *testing.T) {
		id := uuid.New()
		users.EXPECT().GetByID(id).Return(nil, apperrors.ErrUserNotFound)

		w := h.MakeRequest(http.MethodGet, "/users/"+id.String(), nil)
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, "user not found")
	})

	t.Run("update role", func(t *testing.T) {
		id := uuid.New()
		users.EXPECT().Update(adminID, id, gomock.Any()).
			DoAndReturn(func(_, _ uuid.UUID, req *service.UpdateUserRequest) (*service.UserResponse, error) {
				return &service.UserResponse{ID: id, Role: *req.Role}, nil
			})

		w := h.MakeRequest(http.MethodPatch, "/users/"+id.String(), map[string]string{"role": "lead"})

		var got service.UserResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, models.RoleLead, got.Role)
	})
}

func TestReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportServiceInterface(ctrl)
	dashboards := mocks.NewMockDashboardServiceInterface(ctrl)
	userID := uuid.New()

	handler := handlers.NewReportHandler(reports, dashboards)
	h := testutils.SetupHTTPTest()
	h.Router.Use(testutils.AsUser(userID, "lead@example.com", "lead"))
	h.Router.GET("/reports", handler.GetReport)
	h.Router.GET("/dashboard", handler.GetDashboard)

	t.Run("report over all projects", func(t *testing.T) {
		reports.EXPECT().Generate(userID, nil).Return(&service.ReportResponse{
			Aggregate: service.ReportCounters{TotalBugs: 4, SuccessRate: 75},
		}, nil)

		w := h.MakeRequest(http.MethodGet, "/reports", nil)

		var got service.ReportResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, 75, got.Aggregate.SuccessRate)
	})

	t.Run("report for one project", func(t *testing.T) {
		projectID := uuid.New()
		reports.EXPECT().Generate(userID, &projectID).Return(nil, apperrors.ErrNotProjectMember)

		w := h.MakeRequest(http.MethodGet, "/reports?project="+projectID.String(), nil)
		testutils.AssertStatus(t, w, http.StatusForbidden)
	})

	t.Run("dashboard", func(t *testing.T) {
		dashboards.EXPECT().Get(userID).Return(&service.DashboardResponse{ProjectCount: 2, AssignedOpenBugs: 1}, nil)

		w := h.MakeRequest(http.MethodGet, "/dashboard", nil)

		var got service.DashboardResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, int64(2), got.ProjectCount)
	})
}

func TestDirectoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectory(ctrl)

	handler := handlers.NewDirectoryHandler(directory)
	h := testutils.SetupHTTPTest()
	h.Router.GET("/directory/users", handler.SearchUsers)

	tests := []struct {
		name       string
		query      string
		setup      func()
		wantStatus int
	}{
		{
			name:       "missing query",
			query:      "",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "results",
			query: "ana",
			setup: func() {
				directory.EXPECT().Search("ana").Return([]service.DirectoryUser{{Mail: "ana@example.com"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "not configured",
			query: "ana",
			setup: func() {
				directory.EXPECT().Search("ana").Return(nil, apperrors.ErrDirectoryNotConfigured)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:  "server unreachable",
			query: "ana",
			setup: func() {
				directory.EXPECT().Search("ana").Return(nil, errors.New("failed to connect to directory: timeout"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			w := h.MakeRequest(http.MethodGet, "/directory/users?q="+tt.query, nil)
			testutils.AssertStatus(t, w, tt.wantStatus)
		})
	}
}
