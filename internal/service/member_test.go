package service_test

import (
	"testing"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/mocks"
	"qa-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MemberServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	fixture   *accessFixture
	directory *mocks.MockDirectory
	service   *service.MemberService

	projectID uuid.UUID
	actorID   uuid.UUID
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.fixture = newAccessFixture(suite.ctrl)
	suite.directory = mocks.NewMockDirectory(suite.ctrl)
	suite.service = service.NewMemberService(suite.fixture.members, suite.fixture.users, suite.fixture.access,
		suite.directory, validator.New())

	suite.projectID = uuid.New()
	suite.actorID = uuid.New()
}

func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberServiceTestSuite) TestAddExistingUser() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "luis@example.com", FullName: "Luis"}
	suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleLead)
	suite.fixture.users.EXPECT().GetByEmail("luis@example.com").Return(user, nil)
	suite.fixture.members.EXPECT().GetByProjectAndUser(suite.projectID, user.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.fixture.members.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.ProjectMember) error {
		suite.Equal(models.RoleTester, m.Role)
		m.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.Add(suite.actorID, suite.projectID, &service.AddMemberRequest{Email: "Luis@Example.com"})
	suite.Require().NoError(err)
	suite.Equal("Luis", resp.FullName)
	suite.Equal(models.RoleTester, resp.Role)
}

func (suite *MemberServiceTestSuite) TestLeadCannotGrantAdmin() {
	suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleLead)

	_, err := suite.service.Add(suite.actorID, suite.projectID, &service.AddMemberRequest{Email: "x@example.com", Role: models.RoleAdmin})
	suite.ErrorIs(err, apperrors.ErrOnlyAdminGrantsAdmin)
}

func (suite *MemberServiceTestSuite) TestTesterCannotAdd() {
	suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleTester)

	_, err := suite.service.Add(suite.actorID, suite.projectID, &service.AddMemberRequest{Email: "x@example.com"})
	suite.ErrorIs(err, apperrors.ErrInsufficientRole)
}

func (suite *MemberServiceTestSuite) TestDuplicateMember() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "luis@example.com"}
	suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleAdmin)
	suite.fixture.users.EXPECT().GetByEmail("luis@example.com").Return(user, nil)
	suite.fixture.members.EXPECT().GetByProjectAndUser(suite.projectID, user.ID).Return(&models.ProjectMember{}, nil)

	_, err := suite.service.Add(suite.actorID, suite.projectID, &service.AddMemberRequest{Email: "luis@example.com"})
	suite.ErrorIs(err, apperrors.ErrMemberExists)
}

func (suite *MemberServiceTestSuite) TestUnknownEmailProvisionedFromDirectory() {
	suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleAdmin)
	suite.fixture.users.EXPECT().GetByEmail("nuria@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.directory.EXPECT().Enabled().Return(true)
	suite.directory.EXPECT().LookupByEmail("nuria@example.com").Return(&service.DirectoryUser{
		DN:        "CN=Nuria,OU=People,DC=example,DC=com",
		GivenName: "Nuria",
		SN:        "Soler",
		Mail:      "nuria@example.com",
	}, nil)
	suite.fixture.users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.Equal("Nuria Soler", u.FullName)
		suite.Equal(models.AuthProviderLDAP, u.AuthProvider)
		suite.Equal("CN=Nuria,OU=People,DC=example,DC=com", u.ExternalID)
		suite.Nil(u.PasswordHash)
		u.ID = uuid.New()
		return nil
	})
	suite.fixture.members.EXPECT().GetByProjectAndUser(suite.projectID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.fixture.members.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Add(suite.actorID, suite.projectID, &service.AddMemberRequest{Email: "nuria@example.com", Role: models.RoleLead})
	suite.Require().NoError(err)
	suite.Equal(models.RoleLead, resp.Role)
	suite.Equal("Nuria Soler", resp.FullName)
}

func (suite *MemberServiceTestSuite) TestUnknownEmailWithoutDirectory() {
	suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleAdmin)
	suite.fixture.users.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.directory.EXPECT().Enabled().Return(false)

	_, err := suite.service.Add(suite.actorID, suite.projectID, &service.AddMemberRequest{Email: "ghost@example.com"})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *MemberServiceTestSuite) TestRemove() {
	memberID := uuid.New()

	suite.Run("admins stay", func() {
		suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleAdmin)
		suite.fixture.members.EXPECT().GetByID(memberID).Return(&models.ProjectMember{ID: memberID, ProjectID: suite.projectID, Role: models.RoleAdmin}, nil)

		err := suite.service.Remove(suite.actorID, suite.projectID, memberID)
		suite.ErrorIs(err, apperrors.ErrCannotRemoveAdmin)
	})

	suite.Run("member of another project", func() {
		suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleLead)
		suite.fixture.members.EXPECT().GetByID(memberID).Return(&models.ProjectMember{ID: memberID, ProjectID: uuid.New(), Role: models.RoleTester}, nil)

		err := suite.service.Remove(suite.actorID, suite.projectID, memberID)
		suite.ErrorIs(err, apperrors.ErrProjectMemberNotFound)
	})

	suite.Run("tester removed", func() {
		suite.fixture.expectMember(suite.projectID, suite.actorID, models.RoleLead)
		suite.fixture.members.EXPECT().GetByID(memberID).Return(&models.ProjectMember{ID: memberID, ProjectID: suite.projectID, Role: models.RoleTester}, nil)
		suite.fixture.members.EXPECT().Delete(memberID).Return(nil)

		suite.NoError(suite.service.Remove(suite.actorID, suite.projectID, memberID))
	})
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
