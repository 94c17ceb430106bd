package service_test

import (
	"testing"
	"time"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fixture *accessFixture
	service *service.ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.fixture = newAccessFixture(suite.ctrl)
	suite.service = service.NewProjectService(suite.fixture.projects, suite.fixture.access, validator.New())
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestGlobalAdminJoinsAsAdmin() {
	actor := suite.fixture.expectActor(models.RoleAdmin)
	suite.fixture.projects.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(project *models.Project, owner *models.ProjectMember) error {
			suite.Equal("Mobile app", project.Name)
			suite.Equal(models.ProjectStatusActive, project.Status)
			suite.Equal(actor.ID, project.CreatedBy)
			suite.Equal(actor.ID, owner.UserID)
			suite.Equal(models.RoleAdmin, owner.Role)
			project.ID = uuid.New()
			return nil
		})

	resp, err := suite.service.Create(actor.ID, &service.CreateProjectRequest{Name: " Mobile app "})
	suite.Require().NoError(err)
	suite.Equal("Mobile app", resp.Name)
}

func (suite *ProjectServiceTestSuite) TestProjectLeadJoinsAsLead() {
	actor := suite.fixture.expectActor(models.RoleTester)
	suite.fixture.members.EXPECT().HasRole(actor.ID, models.RoleLead).Return(true, nil)
	suite.fixture.projects.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(project *models.Project, owner *models.ProjectMember) error {
			suite.Equal(models.RoleLead, owner.Role)
			return nil
		})

	_, err := suite.service.Create(actor.ID, &service.CreateProjectRequest{Name: "API"})
	suite.Require().NoError(err)
}

func (suite *ProjectServiceTestSuite) TestTesterCannotCreate() {
	actor := suite.fixture.expectActor(models.RoleTester)
	suite.fixture.members.EXPECT().HasRole(actor.ID, models.RoleLead).Return(false, nil)

	_, err := suite.service.Create(actor.ID, &service.CreateProjectRequest{Name: "API"})
	suite.ErrorIs(err, apperrors.ErrInsufficientRole)
}

func (suite *ProjectServiceTestSuite) TestInactiveActor() {
	id := uuid.New()
	suite.fixture.users.EXPECT().GetByID(id).Return(&models.User{BaseModel: models.BaseModel{ID: id}, Role: models.RoleAdmin}, nil)

	_, err := suite.service.Create(id, &service.CreateProjectRequest{Name: "API"})
	suite.ErrorIs(err, apperrors.ErrUserInactive)
}

func (suite *ProjectServiceTestSuite) TestListForUser() {
	actor := suite.fixture.expectActor(models.RoleTester)
	suite.fixture.projects.EXPECT().ListForUser(actor.ID).Return([]repository.ProjectMembershipRow{
		{ID: uuid.New(), Name: "Web", Status: models.ProjectStatusActive, MemberRole: models.RoleTester, CreatorName: "Ana", CreatedAt: time.Now()},
	}, nil)
	suite.fixture.members.EXPECT().HasRole(actor.ID, models.RoleLead).Return(false, nil)

	resp, err := suite.service.ListForUser(actor.ID)
	suite.Require().NoError(err)
	suite.False(resp.CanCreateProjects)
	suite.Require().Len(resp.Projects, 1)
	suite.Equal("Ana", resp.Projects[0].CreatorName)
	suite.Equal(models.RoleTester, resp.Projects[0].MemberRole)
}

func (suite *ProjectServiceTestSuite) TestDetailForOutsider() {
	projectID, actorID := uuid.New(), uuid.New()
	suite.fixture.expectOutsider(projectID, actorID)

	_, err := suite.service.GetDetail(actorID, projectID)
	suite.ErrorIs(err, apperrors.ErrNotProjectMember)
}

func (suite *ProjectServiceTestSuite) TestDetailOfMissingProject() {
	projectID := uuid.New()
	suite.fixture.projects.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetDetail(uuid.New(), projectID)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestDeleteNeedsProjectAdmin() {
	projectID, actorID := uuid.New(), uuid.New()
	suite.fixture.expectMember(projectID, actorID, models.RoleLead)

	err := suite.service.Delete(actorID, projectID)
	suite.ErrorIs(err, apperrors.ErrInsufficientRole)
}

func (suite *ProjectServiceTestSuite) TestUpdateByLead() {
	projectID, actorID := uuid.New(), uuid.New()
	suite.fixture.expectMember(projectID, actorID, models.RoleLead)
	suite.fixture.projects.EXPECT().GetByID(projectID).Return(&models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Old",
		Status:    models.ProjectStatusActive,
	}, nil)
	suite.fixture.projects.EXPECT().Update(gomock.Any()).Return(nil)

	name := "New"
	status := models.ProjectStatusCompleted
	resp, err := suite.service.Update(actorID, projectID, &service.UpdateProjectRequest{Name: &name, Status: &status})
	suite.Require().NoError(err)
	suite.Equal("New", resp.Name)
	suite.Equal(models.ProjectStatusCompleted, resp.Status)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
