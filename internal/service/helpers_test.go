package service_test

import (
	"qa-tracker-backend/internal/database/models"
	"qa-tracker-backend/internal/mocks"
	"qa-tracker-backend/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// accessFixture wires an AccessService to repository mocks
type accessFixture struct {
	users    *mocks.MockUserRepositoryInterface
	projects *mocks.MockProjectRepositoryInterface
	members  *mocks.MockMemberRepositoryInterface
	access   *service.AccessService
}

func newAccessFixture(ctrl *gomock.Controller) *accessFixture {
	f := &accessFixture{
		users:    mocks.NewMockUserRepositoryInterface(ctrl),
		projects: mocks.NewMockProjectRepositoryInterface(ctrl),
		members:  mocks.NewMockMemberRepositoryInterface(ctrl),
	}
	f.access = service.NewAccessService(f.users, f.projects, f.members)
	return f
}

// expectMember makes userID an active member of projectID with the given role
func (f *accessFixture) expectMember(projectID, userID uuid.UUID, role models.Role) {
	f.expectMembership(projectID, &models.User{BaseModel: models.BaseModel{ID: userID}, Role: models.RoleTester, IsActive: true}, role)
}

// expectMembership makes user a member of projectID, active or not
func (f *accessFixture) expectMembership(projectID uuid.UUID, user *models.User, role models.Role) {
	f.projects.EXPECT().GetByID(projectID).Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}, Name: "Portal"}, nil)
	f.members.EXPECT().GetByProjectAndUser(projectID, user.ID).Return(&models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: projectID,
		UserID:    user.ID,
		Role:      role,
	}, nil)
	f.users.EXPECT().GetByID(user.ID).Return(user, nil)
}

// expectOutsider makes userID a stranger to projectID
func (f *accessFixture) expectOutsider(projectID, userID uuid.UUID) {
	f.projects.EXPECT().GetByID(projectID).Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil)
	f.members.EXPECT().GetByProjectAndUser(projectID, userID).Return(nil, gorm.ErrRecordNotFound)
}

// expectActor returns an active user with the given global role
func (f *accessFixture) expectActor(role models.Role) *models.User {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "actor@example.com",
		FullName:  "Actor",
		Role:      role,
		IsActive:  true,
	}
	f.users.EXPECT().GetByID(user.ID).Return(user, nil)
	return user
}
