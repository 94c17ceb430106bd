package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/mocks"
	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)

	users.EXPECT().GetByEmail("Eva@Example.com").Return(nil, gorm.ErrRecordNotFound)
	users.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(t, "eva@example.com", user.Email)
		assert.Equal(t, models.RoleLead, user.Role)
		assert.True(t, user.EmailVerified)
		require.NotNil(t, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("longenough")))
		return nil
	})

	user, err := createUser(users, "Eva@Example.com", " Eva Gil ", "LEAD", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "Eva Gil", user.FullName)
}

func TestCreateUserRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)

	_, err := createUser(users, "a@example.com", "A", "owner", "longenough")
	assert.True(t, apperrors.IsValidation(err))

	_, err = createUser(users, "a@example.com", "A", "tester", "short")
	assert.True(t, apperrors.IsValidation(err))

	users.EXPECT().GetByEmail("a@example.com").Return(&models.User{}, nil)
	_, err = createUser(users, "a@example.com", "A", "tester", "longenough")
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestSetUserRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	target := &models.User{Email: "luis@example.com", Role: models.RoleTester}

	users.EXPECT().GetByEmail("luis@example.com").Return(target, nil)
	users.EXPECT().Update(target).Return(nil)

	user, err := setUserRole(users, "luis@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	users.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	_, err = setUserRole(users, "ghost@example.com", "lead")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeactivateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	target := &models.User{Email: "luis@example.com", IsActive: true}

	users.EXPECT().GetByEmail("luis@example.com").Return(target, nil)
	users.EXPECT().Update(target).Return(errors.New("connection reset"))

	_, err := deactivateUser(users, "luis@example.com")
	assert.ErrorContains(t, err, "failed to update user")
	assert.False(t, target.IsActive)
}

func TestCollectStats(t *testing.T) {
	web := models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Web"}
	api := models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "API"}

	t.Run("every project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryInterface(ctrl)
		reports := mocks.NewMockReportRepositoryInterface(ctrl)

		reports.EXPECT().Projects(gomock.Nil()).Return([]models.Project{web, api}, nil)
		reports.EXPECT().BugRows(gomock.Nil()).Return([]repository.BugReportRow{
			{ProjectID: web.ID, Status: models.BugStatusOpen},
		}, nil)
		reports.EXPECT().TestCaseRows(gomock.Nil()).Return(nil, nil)
		reports.EXPECT().ExecutionRows(gomock.Nil()).Return(nil, nil)

		stats, err := collectStats(projects, reports, "")
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 1, stats[0].OpenBugs)
	})

	t.Run("by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryInterface(ctrl)
		reports := mocks.NewMockReportRepositoryInterface(ctrl)
		scope := []uuid.UUID{api.ID}

		projects.EXPECT().GetAll().Return([]models.Project{web, api}, nil)
		reports.EXPECT().Projects(scope).Return([]models.Project{api}, nil)
		reports.EXPECT().BugRows(scope).Return(nil, nil)
		reports.EXPECT().TestCaseRows(scope).Return(nil, nil)
		reports.EXPECT().ExecutionRows(scope).Return(nil, nil)

		stats, err := collectStats(projects, reports, "api")
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "API", stats[0].ProjectName)
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryInterface(ctrl)
		projects.EXPECT().GetAll().Return([]models.Project{web}, nil)

		_, err := collectStats(projects, mocks.NewMockReportRepositoryInterface(ctrl), "Mobile")
		assert.ErrorContains(t, err, `project "Mobile" not found`)
	})
}

func TestRenderReport(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out bytes.Buffer
	renderReport(&out, []service.ProjectStats{
		{ProjectName: "Web", ReportCounters: service.ReportCounters{TotalBugs: 3, OpenBugs: 1, ResolvedBugs: 2, TotalTestCases: 1, SuccessRate: 75}},
		{ProjectName: "API", ReportCounters: service.ReportCounters{TotalBugs: 1, OpenBugs: 1, SuccessRate: 0}},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "PROJECT"))
	assert.True(t, strings.HasPrefix(lines[1], "Web"))
	assert.True(t, strings.HasSuffix(lines[1], "75%"))
	assert.True(t, strings.HasPrefix(lines[4], "TOTAL"))
	// two resolved bugs out of five items
	assert.True(t, strings.HasSuffix(lines[4], "40%"))

	out.Reset()
	renderReport(&out, nil)
	assert.Equal(t, "No projects found.\n", out.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
