package seed

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"qa-tracker-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// File is the layout of a seed YAML document
type File struct {
	Users    []UserData    `yaml:"users"`
	Projects []ProjectData `yaml:"projects"`
}

type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password,omitempty"`
	Inactive bool   `yaml:"inactive,omitempty"`
}

type ProjectData struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Status      string         `yaml:"status,omitempty"`
	Owner       string         `yaml:"owner"`
	Members     []MemberData   `yaml:"members,omitempty"`
	TestCases   []TestCaseData `yaml:"test_cases,omitempty"`
	Bugs        []BugData      `yaml:"bugs,omitempty"`
}

type MemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type TestCaseData struct {
	Title          string     `yaml:"title"`
	Description    string     `yaml:"description"`
	Preconditions  string     `yaml:"preconditions,omitempty"`
	Steps          []StepData `yaml:"steps"`
	ExpectedResult string     `yaml:"expected_result"`
	Status         string     `yaml:"status,omitempty"`
	Priority       string     `yaml:"priority,omitempty"`
	Month          string     `yaml:"month,omitempty"`
	Sprint         string     `yaml:"sprint,omitempty"`
	StoryID        *int       `yaml:"story_id,omitempty"`
	Author         string     `yaml:"author,omitempty"`
}

type StepData struct {
	Action   string `yaml:"action"`
	Expected string `yaml:"expected"`
}

type BugData struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	StepsToReproduce string `yaml:"steps_to_reproduce,omitempty"`
	ExpectedBehavior string `yaml:"expected_behavior,omitempty"`
	ActualBehavior   string `yaml:"actual_behavior,omitempty"`
	Priority         string `yaml:"priority,omitempty"`
	Severity         string `yaml:"severity,omitempty"`
	Reporter         string `yaml:"reporter"`
	Assignee         string `yaml:"assignee,omitempty"`
	TestCase         string `yaml:"test_case,omitempty"`
}

// LoadFile reads and validates a seed file from disk
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown keys are rejected so typos surface
// before anything is written.
func Parse(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the document for missing fields and broken references.
// Member, author, reporter and assignee emails may point at users declared in
// the file or at accounts that already exist, so those are checked on load.
func (f *File) Validate() error {
	emails := make(map[string]bool, len(f.Users))
	for i, user := range f.Users {
		email := normalizeEmail(user.Email)
		if email == "" || user.FullName == "" {
			return fmt.Errorf("users[%d]: email and full_name are required", i)
		}
		if emails[email] {
			return fmt.Errorf("users[%d]: duplicate email %s", i, email)
		}
		emails[email] = true
		if user.Role != "" && !models.Role(user.Role).IsValid() {
			return fmt.Errorf("users[%d]: invalid role %q", i, user.Role)
		}
	}

	names := make(map[string]bool, len(f.Projects))
	for i, project := range f.Projects {
		name := strings.TrimSpace(project.Name)
		if name == "" || normalizeEmail(project.Owner) == "" {
			return fmt.Errorf("projects[%d]: name and owner are required", i)
		}
		if names[name] {
			return fmt.Errorf("projects[%d]: duplicate project %s", i, name)
		}
		names[name] = true
		if project.Status != "" && !models.ProjectStatus(project.Status).IsValid() {
			return fmt.Errorf("project %s: invalid status %q", name, project.Status)
		}
		for _, member := range project.Members {
			if member.Role != "" && !models.Role(member.Role).IsValid() {
				return fmt.Errorf("project %s: member %s has invalid role %q", name, member.Email, member.Role)
			}
		}

		titles := make(map[string]bool, len(project.TestCases))
		for _, tc := range project.TestCases {
			if tc.Title == "" || len(tc.Steps) == 0 {
				return fmt.Errorf("project %s: test cases need a title and at least one step", name)
			}
			titles[tc.Title] = true
		}
		for _, bug := range project.Bugs {
			if bug.Title == "" || bug.Description == "" || normalizeEmail(bug.Reporter) == "" {
				return fmt.Errorf("project %s: bugs need a title, description and reporter", name)
			}
			if bug.TestCase != "" && !titles[bug.TestCase] {
				return fmt.Errorf("project %s: bug %q links unknown test case %q", name, bug.Title, bug.TestCase)
			}
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
