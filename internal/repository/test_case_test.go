//go:build integration
// +build integration

package repository

import (
	"errors"
	"sync"
	"testing"

	"qa-tracker-backend/internal/database/models"
	"qa-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

// TestCaseRepositoryTestSuite tests TestCaseRepository and ExecutionRepository
type TestCaseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TestCaseRepository
	executions    *ExecutionRepository
	factories     *testutils.FactorySet
	owner         *models.User
	project       *models.Project
}

func (suite *TestCaseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTestCaseRepository(suite.baseTestSuite.DB)
	suite.executions = NewExecutionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TestCaseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TestCaseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	suite.owner = suite.factories.User.WithRole(models.RoleLead)
	suite.Require().NoError(NewUserRepository(db).Create(suite.owner))
	suite.project = suite.factories.Project.Create(suite.owner.ID)
	suite.Require().NoError(NewProjectRepository(db).CreateWithOwner(
		suite.project, suite.factories.Member.Create(suite.project.ID, suite.owner.ID, models.RoleLead)))
}

func (suite *TestCaseRepositoryTestSuite) TestCreateNumberedIsSequential() {
	for i := 1; i <= 3; i++ {
		tc := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
		suite.Require().NoError(suite.repo.CreateNumbered(tc))
		suite.Equal(i, tc.CaseNumber)
	}
}

func (suite *TestCaseRepositoryTestSuite) TestCreateNumberedConcurrently() {
	const workers = 8
	var wg sync.WaitGroup
	numbers := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tc := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
			if err := suite.repo.CreateNumbered(tc); err == nil {
				numbers <- tc.CaseNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[int]bool{}
	for n := range numbers {
		suite.False(seen[n], "case number %d assigned twice", n)
		seen[n] = true
	}
	suite.Len(seen, workers)
}

func (suite *TestCaseRepositoryTestSuite) TestUpdateLockedWritesHistory() {
	tc := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
	suite.Require().NoError(suite.repo.CreateNumbered(tc))

	updated, err := suite.repo.UpdateLocked(tc.ID, func(locked *models.TestCase) ([]models.TestCaseHistory, error) {
		locked.Title = "Renamed"
		return []models.TestCaseHistory{{
			TestCaseID: locked.ID, FieldName: "Título", OldValue: tc.Title, NewValue: "Renamed", ChangedBy: suite.owner.ID,
		}}, nil
	})
	suite.Require().NoError(err)
	suite.Equal("Renamed", updated.Title)

	history, err := suite.repo.ListHistory(tc.ID, 50)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal("Renamed", history[0].NewValue)
	suite.Equal(suite.owner.ID, history[0].Changer.ID)
}

func (suite *TestCaseRepositoryTestSuite) TestUpdateLockedRollsBackOnError() {
	tc := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
	suite.Require().NoError(suite.repo.CreateNumbered(tc))
	boom := errors.New("boom")

	_, err := suite.repo.UpdateLocked(tc.ID, func(locked *models.TestCase) ([]models.TestCaseHistory, error) {
		locked.Title = "Never saved"
		return nil, boom
	})
	suite.ErrorIs(err, boom)

	found, err := suite.repo.GetByID(tc.ID)
	suite.Require().NoError(err)
	suite.Equal(tc.Title, found.Title)
}

func (suite *TestCaseRepositoryTestSuite) TestRecordExecution() {
	tc := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
	suite.Require().NoError(suite.repo.CreateNumbered(tc))

	execution, err := suite.repo.RecordExecution(tc.ID, func(locked *models.TestCase) (*models.TestExecution, []models.TestCaseHistory, error) {
		locked.Status = models.TestCaseStatusClosed
		return &models.TestExecution{
				ExecutedBy:    suite.owner.ID,
				Status:        models.ExecutionStatusPassed,
				StepsStatus:   datatypes.JSONSlice[models.StepStatus]{{Completed: true}, {Completed: true}},
				StepsRevision: locked.StepsRevision,
			}, []models.TestCaseHistory{{
				TestCaseID: locked.ID, FieldName: "Estado", OldValue: "active", NewValue: "closed", ChangedBy: suite.owner.ID,
			}}, nil
	})
	suite.Require().NoError(err)
	suite.Equal(tc.ID, execution.TestCaseID)

	found, err := suite.repo.GetByID(tc.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TestCaseStatusClosed, found.Status)

	executions, err := suite.executions.ListByTestCase(tc.ID, 20)
	suite.Require().NoError(err)
	suite.Require().Len(executions, 1)
	suite.Len(executions[0].StepsStatus, 2)
	suite.Equal(suite.owner.ID, executions[0].Executor.ID)
}

func (suite *TestCaseRepositoryTestSuite) TestListFiltersByStatus() {
	active := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
	suite.Require().NoError(suite.repo.CreateNumbered(active))
	draft := suite.factories.TestCase.Create(suite.project.ID, suite.owner.ID)
	draft.Status = models.TestCaseStatusDraft
	suite.Require().NoError(suite.repo.CreateNumbered(draft))

	all, err := suite.repo.List(suite.project.ID, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	status := models.TestCaseStatusDraft
	drafts, err := suite.repo.List(suite.project.ID, &status)
	suite.Require().NoError(err)
	suite.Require().Len(drafts, 1)
	suite.Equal(draft.ID, drafts[0].ID)
}

func TestTestCaseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TestCaseRepositoryTestSuite))
}
