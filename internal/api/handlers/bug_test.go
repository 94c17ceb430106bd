package handlers_test

import (
	"net/http"
	"testing"

	"qa-tracker-backend/internal/api/handlers"
	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/mocks"
	"qa-tracker-backend/internal/service"
	"qa-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BugHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bugs     *mocks.MockBugServiceInterface
	comments *mocks.MockCommentServiceInterface
	http     *testutils.HTTPTestSuite
	userID   uuid.UUID
}

func (suite *BugHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.bugs = mocks.NewMockBugServiceInterface(suite.ctrl)
	suite.comments = mocks.NewMockCommentServiceInterface(suite.ctrl)
	suite.userID = uuid.New()

	handler := handlers.NewBugHandler(suite.bugs, suite.comments)
	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.Use(testutils.AsUser(suite.userID, "tester@example.com", "tester"))
	r.POST("/bugs", handler.CreateBug)
	r.GET("/bugs", handler.ListBugs)
	r.GET("/bugs/:id", handler.GetBug)
	r.PATCH("/bugs/:id", handler.UpdateBug)
	r.DELETE("/bugs/:id", handler.DeleteBug)
	r.GET("/bugs/:id/history", handler.GetBugHistory)
	r.POST("/bugs/:id/comments", handler.AddComment)
	r.GET("/bugs/:id/comments", handler.ListComments)
}

func (suite *BugHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BugHandlerTestSuite) TestCreateBug() {
	projectID := uuid.New()
	suite.bugs.EXPECT().Create(suite.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.CreateBugRequest) (*service.BugResponse, error) {
			suite.Equal(projectID, req.ProjectID)
			suite.Equal("Crash on save", req.Title)
			return &service.BugResponse{ID: uuid.New(), BugNumber: 1, Status: models.BugStatusOpen}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/bugs", map[string]interface{}{
		"project_id":  projectID,
		"title":       "Crash on save",
		"description": "The editor closes",
	})

	var got service.BugResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal(models.BugStatusOpen, got.Status)
}

func (suite *BugHandlerTestSuite) TestListBugsPassesFilters() {
	projectID := uuid.New()
	suite.bugs.EXPECT().List(suite.userID, &projectID, "resolved").Return([]service.BugResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bugs?project="+projectID.String()+"&status=resolved", nil)
	testutils.AssertStatus(suite.T(), w, http.StatusOK)
}

func (suite *BugHandlerTestSuite) TestListBugsWithoutProject() {
	suite.bugs.EXPECT().List(suite.userID, nil, "").Return([]service.BugResponse{}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bugs", nil)
	testutils.AssertStatus(suite.T(), w, http.StatusOK)
}

func (suite *BugHandlerTestSuite) TestListBugsBadInput() {
	w := suite.http.MakeRequest(http.MethodGet, "/bugs?project=nope", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid project ID")

	suite.bugs.EXPECT().List(suite.userID, nil, "fixed").Return(nil, apperrors.ErrInvalidStatus)
	w = suite.http.MakeRequest(http.MethodGet, "/bugs?status=fixed", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid status")
}

func (suite *BugHandlerTestSuite) TestUpdateBugUnassign() {
	id := uuid.New()
	suite.bugs.EXPECT().Update(suite.userID, id, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.UpdateBugRequest) (*service.BugResponse, error) {
			suite.True(req.AssignedTo.Set)
			suite.Nil(req.AssignedTo.UserID)
			suite.Require().NotNil(req.Status)
			suite.Equal(models.BugStatusResolved, *req.Status)
			return &service.BugResponse{ID: id, Status: models.BugStatusResolved}, nil
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/bugs/"+id.String(), `{"status":"resolved","assigned_to":null}`)
	testutils.AssertStatus(suite.T(), w, http.StatusOK)
}

func (suite *BugHandlerTestSuite) TestUpdateBugForbiddenTransition() {
	id := uuid.New()
	suite.bugs.EXPECT().Update(suite.userID, id, gomock.Any()).
		Return(nil, apperrors.NewConflictError("cannot move a bug from closed to in_progress"))

	w := suite.http.MakeRequest(http.MethodPatch, "/bugs/"+id.String(), map[string]string{"status": "in_progress"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "closed to in_progress")
}

func (suite *BugHandlerTestSuite) TestGetBugMissing() {
	id := uuid.New()
	suite.bugs.EXPECT().GetDetail(suite.userID, id).Return(nil, apperrors.ErrBugNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/bugs/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "bug not found")
}

func (suite *BugHandlerTestSuite) TestDeleteBug() {
	id := uuid.New()
	suite.bugs.EXPECT().Delete(suite.userID, id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/bugs/"+id.String(), nil)
	testutils.AssertStatus(suite.T(), w, http.StatusNoContent)
}

func (suite *BugHandlerTestSuite) TestHistoryLimit() {
	id := uuid.New()
	suite.bugs.EXPECT().History(suite.userID, id, 5).Return([]service.HistoryResponse{{FieldName: "Estado"}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/bugs/"+id.String()+"/history?limit=5", nil)

	var got []service.HistoryResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("Estado", got[0].FieldName)
}

func (suite *BugHandlerTestSuite) TestComments() {
	id := uuid.New()
	suite.comments.EXPECT().Add(suite.userID, id, &service.AddCommentRequest{Comment: "Still happens"}).
		Return(&service.CommentResponse{ID: uuid.New(), BugID: id, Comment: "Still happens"}, nil)
	suite.comments.EXPECT().List(suite.userID, id).Return([]service.CommentResponse{{Comment: "Still happens"}}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/bugs/"+id.String()+"/comments", map[string]string{"comment": "Still happens"})
	testutils.AssertStatus(suite.T(), w, http.StatusCreated)

	w = suite.http.MakeRequest(http.MethodGet, "/bugs/"+id.String()+"/comments", nil)
	var got []service.CommentResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Len(got, 1)
}

func (suite *BugHandlerTestSuite) TestEmptyCommentRejected() {
	id := uuid.New()
	suite.comments.EXPECT().Add(suite.userID, id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("comment", "must not be empty"))

	w := suite.http.MakeRequest(http.MethodPost, "/bugs/"+id.String()+"/comments", map[string]string{"comment": " "})
	testutils.AssertStatus(suite.T(), w, http.StatusBadRequest)
}

func TestBugHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BugHandlerTestSuite))
}
