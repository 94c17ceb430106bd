package models

import "strings"

// Role is both the global role of a user and the role a user holds inside a project
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLead   Role = "lead"
	RoleTester Role = "tester"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLead, RoleTester:
		return true
	}
	return false
}

// CanManage reports whether the role may manage projects and their members
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleLead
}

// NormalizeRole maps free-form role names coming from identity providers onto a Role.
// Anything unrecognised becomes a tester.
func NormalizeRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin", "padmin", "superadmin", "owner", "administrator":
		return RoleAdmin
	case "lead", "leader", "manager", "pm":
		return RoleLead
	default:
		return RoleTester
	}
}

// AuthProvider identifies where a user account comes from
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGitHub AuthProvider = "github"
	AuthProviderLDAP   AuthProvider = "ldap"
)

// ProjectStatus defines the lifecycle of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusInactive  ProjectStatus = "inactive"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusInactive, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// TestCaseStatus defines the lifecycle of a test case
type TestCaseStatus string

const (
	TestCaseStatusDraft      TestCaseStatus = "draft"
	TestCaseStatusActive     TestCaseStatus = "active"
	TestCaseStatusClosed     TestCaseStatus = "closed"
	TestCaseStatusDeprecated TestCaseStatus = "deprecated"
)

// IsValid checks if the TestCaseStatus is valid
func (s TestCaseStatus) IsValid() bool {
	switch s {
	case TestCaseStatusDraft, TestCaseStatusActive, TestCaseStatusClosed, TestCaseStatusDeprecated:
		return true
	}
	return false
}

// Priority is shared by test cases and bugs
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Severity grades the impact of a bug
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
	SeverityBlocker  Severity = "blocker"
)

// IsValid checks if the Severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical, SeverityBlocker:
		return true
	}
	return false
}

// BugStatus defines the workflow states of a bug
type BugStatus string

const (
	BugStatusOpen       BugStatus = "open"
	BugStatusInProgress BugStatus = "in_progress"
	BugStatusResolved   BugStatus = "resolved"
	BugStatusClosed     BugStatus = "closed"
	BugStatusReopened   BugStatus = "reopened"
)

// IsValid checks if the BugStatus is valid
func (s BugStatus) IsValid() bool {
	switch s {
	case BugStatusOpen, BugStatusInProgress, BugStatusResolved, BugStatusClosed, BugStatusReopened:
		return true
	}
	return false
}

// IsOpen reports whether the bug still needs work
func (s BugStatus) IsOpen() bool {
	return s == BugStatusOpen || s == BugStatusInProgress || s == BugStatusReopened
}

// ExecutionStatus is the overall outcome of a test execution
type ExecutionStatus string

const (
	ExecutionStatusPassed      ExecutionStatus = "passed"
	ExecutionStatusFailed      ExecutionStatus = "failed"
	ExecutionStatusBlocked     ExecutionStatus = "blocked"
	ExecutionStatusSkipped     ExecutionStatus = "skipped"
	ExecutionStatusNotExecuted ExecutionStatus = "not_executed"
)

// IsValid checks if the ExecutionStatus is valid
func (s ExecutionStatus) IsValid() bool {
	switch s {
	case ExecutionStatusPassed, ExecutionStatusFailed, ExecutionStatusBlocked, ExecutionStatusSkipped, ExecutionStatusNotExecuted:
		return true
	}
	return false
}
