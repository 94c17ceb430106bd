package seed

import (
	"errors"
	"fmt"
	"strings"

	"qa-tracker-backend/internal/database/models"
	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Result counts what a load created. Records that already existed are skipped.
type Result struct {
	Users     int
	Projects  int
	Members   int
	TestCases int
	Bugs      int
}

// Loader writes a seed File through the repositories and services so numbering,
// history and membership rules apply to seeded data as well.
type Loader struct {
	users     repository.UserRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	members   repository.MemberRepositoryInterface
	testCases service.TestCaseServiceInterface
	bugs      service.BugServiceInterface
	hashCost  int
}

// NewLoader creates a new seed loader
func NewLoader(users repository.UserRepositoryInterface, projects repository.ProjectRepositoryInterface, members repository.MemberRepositoryInterface, testCases service.TestCaseServiceInterface, bugs service.BugServiceInterface) *Loader {
	return &Loader{
		users:     users,
		projects:  projects,
		members:   members,
		testCases: testCases,
		bugs:      bugs,
		hashCost:  bcrypt.DefaultCost,
	}
}

// Load creates users first, then projects with their members, test cases and bugs.
// A project whose name already exists is left untouched.
func (l *Loader) Load(file *File) (*Result, error) {
	result := &Result{}

	for _, data := range file.Users {
		created, err := l.createUser(data)
		if err != nil {
			return result, fmt.Errorf("failed to create user %s: %w", data.Email, err)
		}
		if created {
			result.Users++
		}
	}
	logrus.WithFields(logrus.Fields{"created": result.Users, "total": len(file.Users)}).Info("Seeded users")

	existing, err := l.projects.GetAll()
	if err != nil {
		return result, fmt.Errorf("failed to list projects: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, project := range existing {
		known[project.Name] = true
	}

	for _, data := range file.Projects {
		name := strings.TrimSpace(data.Name)
		if known[name] {
			logrus.WithField("project", name).Info("Project already exists, skipping")
			continue
		}
		if err := l.createProject(data, result); err != nil {
			return result, fmt.Errorf("failed to seed project %s: %w", name, err)
		}
		result.Projects++
	}
	logrus.WithFields(logrus.Fields{
		"projects":   result.Projects,
		"members":    result.Members,
		"test_cases": result.TestCases,
		"bugs":       result.Bugs,
	}).Info("Seeded projects")

	return result, nil
}

func (l *Loader) createUser(data UserData) (bool, error) {
	_, err := l.users.GetByEmail(data.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	role := models.RoleTester
	if data.Role != "" {
		role = models.Role(data.Role)
	}
	user := &models.User{
		Email:         normalizeEmail(data.Email),
		FullName:      strings.TrimSpace(data.FullName),
		Role:          role,
		IsActive:      !data.Inactive,
		EmailVerified: true,
		AuthProvider:  models.AuthProviderLocal,
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), l.hashCost)
		if err != nil {
			return false, fmt.Errorf("failed to hash password: %w", err)
		}
		encoded := string(hash)
		user.PasswordHash = &encoded
	}
	if err := l.users.Create(user); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Loader) createProject(data ProjectData, result *Result) error {
	owner, err := l.lookup(data.Owner)
	if err != nil {
		return err
	}

	status := models.ProjectStatusActive
	if data.Status != "" {
		status = models.ProjectStatus(data.Status)
	}
	ownerRole := models.RoleLead
	if owner.Role == models.RoleAdmin {
		ownerRole = models.RoleAdmin
	}

	project := &models.Project{
		Name:        strings.TrimSpace(data.Name),
		Description: data.Description,
		Status:      status,
		CreatedBy:   owner.ID,
	}
	if err := l.projects.CreateWithOwner(project, &models.ProjectMember{UserID: owner.ID, Role: ownerRole}); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	for _, member := range data.Members {
		user, err := l.lookup(member.Email)
		if err != nil {
			return err
		}
		if user.ID == owner.ID {
			continue
		}
		role := models.RoleTester
		if member.Role != "" {
			role = models.Role(member.Role)
		}
		if err := l.members.Create(&models.ProjectMember{ProjectID: project.ID, UserID: user.ID, Role: role}); err != nil {
			return fmt.Errorf("failed to add member %s: %w", member.Email, err)
		}
		result.Members++
	}

	testCaseIDs := make(map[string]uuid.UUID, len(data.TestCases))
	for _, tc := range data.TestCases {
		authorID := owner.ID
		if tc.Author != "" {
			author, err := l.lookup(tc.Author)
			if err != nil {
				return err
			}
			authorID = author.ID
		}

		steps := make([]models.TestStep, len(tc.Steps))
		for i, step := range tc.Steps {
			steps[i] = models.TestStep{Action: step.Action, Expected: step.Expected}
		}
		created, err := l.testCases.Create(authorID, &service.CreateTestCaseRequest{
			ProjectID:      project.ID,
			Title:          tc.Title,
			Description:    tc.Description,
			Preconditions:  tc.Preconditions,
			Steps:          steps,
			ExpectedResult: tc.ExpectedResult,
			Status:         models.TestCaseStatus(tc.Status),
			Priority:       models.Priority(tc.Priority),
			Month:          tc.Month,
			Sprint:         tc.Sprint,
			StoryID:        tc.StoryID,
		})
		if err != nil {
			return fmt.Errorf("failed to create test case %q: %w", tc.Title, err)
		}
		testCaseIDs[tc.Title] = created.ID
		result.TestCases++
	}

	for _, bug := range data.Bugs {
		reporter, err := l.lookup(bug.Reporter)
		if err != nil {
			return err
		}
		req := &service.CreateBugRequest{
			ProjectID:        project.ID,
			Title:            bug.Title,
			Description:      bug.Description,
			StepsToReproduce: bug.StepsToReproduce,
			ExpectedBehavior: bug.ExpectedBehavior,
			ActualBehavior:   bug.ActualBehavior,
			Priority:         models.Priority(bug.Priority),
			Severity:         models.Severity(bug.Severity),
		}
		if bug.TestCase != "" {
			id := testCaseIDs[bug.TestCase]
			req.TestCaseID = &id
		}
		if bug.Assignee != "" {
			assignee, err := l.lookup(bug.Assignee)
			if err != nil {
				return err
			}
			req.AssignedTo = &assignee.ID
		}
		if _, err := l.bugs.Create(reporter.ID, req); err != nil {
			return fmt.Errorf("failed to create bug %q: %w", bug.Title, err)
		}
		result.Bugs++
	}

	return nil
}

func (l *Loader) lookup(email string) (*models.User, error) {
	user, err := l.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s is not declared in the seed file and does not exist", email)
		}
		return nil, err
	}
	return user, nil
}
