package seed

import (
	"testing"

	"qa-tracker-backend/internal/database/models"
	"qa-tracker-backend/internal/mocks"
	"qa-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoaderTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	users     *mocks.MockUserRepositoryInterface
	projects  *mocks.MockProjectRepositoryInterface
	members   *mocks.MockMemberRepositoryInterface
	testCases *mocks.MockTestCaseServiceInterface
	bugs      *mocks.MockBugServiceInterface
	loader    *Loader
}

func (suite *LoaderTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.projects = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.members = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.testCases = mocks.NewMockTestCaseServiceInterface(suite.ctrl)
	suite.bugs = mocks.NewMockBugServiceInterface(suite.ctrl)
	suite.loader = NewLoader(suite.users, suite.projects, suite.members, suite.testCases, suite.bugs)
	suite.loader.hashCost = bcrypt.MinCost
}

func (suite *LoaderTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LoaderTestSuite) TestLoadCreatesEverything() {
	file, err := Parse([]byte(sampleSeed))
	suite.Require().NoError(err)

	ana := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Role: models.RoleAdmin}
	luis := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "luis@example.com", Role: models.RoleTester}
	projectID := uuid.New()
	testCaseID := uuid.New()

	suite.users.EXPECT().GetByEmail("Ana@Example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal("ana@example.com", user.Email)
		suite.Equal(models.RoleAdmin, user.Role)
		suite.True(user.IsActive)
		suite.True(user.EmailVerified)
		suite.Require().NotNil(user.PasswordHash)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("s3cretpass")))
		user.ID = ana.ID
		return nil
	})
	suite.users.EXPECT().GetByEmail("luis@example.com").Return(luis, nil).Times(3)
	suite.users.EXPECT().GetByEmail("ana@example.com").Return(ana, nil).Times(2)

	suite.projects.EXPECT().GetAll().Return(nil, nil)
	suite.projects.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(project *models.Project, owner *models.ProjectMember) error {
			suite.Equal("Web shop", project.Name)
			suite.Equal(models.ProjectStatusActive, project.Status)
			suite.Equal(ana.ID, project.CreatedBy)
			suite.Equal(models.RoleAdmin, owner.Role)
			project.ID = projectID
			return nil
		})
	suite.members.EXPECT().Create(gomock.Any()).DoAndReturn(func(member *models.ProjectMember) error {
		suite.Equal(projectID, member.ProjectID)
		suite.Equal(luis.ID, member.UserID)
		suite.Equal(models.RoleTester, member.Role)
		return nil
	})
	suite.testCases.EXPECT().Create(ana.ID, gomock.Any()).
		DoAndReturn(func(actorID uuid.UUID, req *service.CreateTestCaseRequest) (*service.TestCaseResponse, error) {
			suite.Equal(projectID, req.ProjectID)
			suite.Equal(models.PriorityHigh, req.Priority)
			suite.Len(req.Steps, 2)
			return &service.TestCaseResponse{ID: testCaseID}, nil
		})
	suite.bugs.EXPECT().Create(luis.ID, gomock.Any()).
		DoAndReturn(func(actorID uuid.UUID, req *service.CreateBugRequest) (*service.BugResponse, error) {
			suite.Require().NotNil(req.TestCaseID)
			suite.Equal(testCaseID, *req.TestCaseID)
			suite.Require().NotNil(req.AssignedTo)
			suite.Equal(ana.ID, *req.AssignedTo)
			suite.Equal(models.SeverityMajor, req.Severity)
			return &service.BugResponse{ID: uuid.New()}, nil
		})

	result, err := suite.loader.Load(file)
	suite.Require().NoError(err)
	suite.Equal(Result{Users: 1, Projects: 1, Members: 1, TestCases: 1, Bugs: 1}, *result)
}

func (suite *LoaderTestSuite) TestExistingProjectIsSkipped() {
	file := &File{Projects: []ProjectData{{Name: "Web shop", Owner: "ana@example.com"}}}
	suite.projects.EXPECT().GetAll().Return([]models.Project{{Name: "Web shop"}}, nil)

	result, err := suite.loader.Load(file)
	suite.Require().NoError(err)
	suite.Equal(0, result.Projects)
}

func (suite *LoaderTestSuite) TestUnknownOwner() {
	file := &File{Projects: []ProjectData{{Name: "API", Owner: "ghost@example.com"}}}
	suite.projects.EXPECT().GetAll().Return(nil, nil)
	suite.users.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.loader.Load(file)
	suite.ErrorContains(err, "user ghost@example.com is not declared in the seed file and does not exist")
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}
