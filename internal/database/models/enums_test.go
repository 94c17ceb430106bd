package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"SuperAdmin", RoleAdmin},
		{" owner ", RoleAdmin},
		{"padmin", RoleAdmin},
		{"administrator", RoleAdmin},
		{"lead", RoleLead},
		{"Manager", RoleLead},
		{"pm", RoleLead},
		{"leader", RoleLead},
		{"tester", RoleTester},
		{"", RoleTester},
		{"qa-engineer", RoleTester},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.raw))
		})
	}
}

func TestRoleCanManage(t *testing.T) {
	assert.True(t, RoleAdmin.CanManage())
	assert.True(t, RoleLead.CanManage())
	assert.False(t, RoleTester.CanManage())
	assert.False(t, Role("guest").CanManage())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ProjectStatusArchived.IsValid())
	assert.False(t, ProjectStatus("deleted").IsValid())

	assert.True(t, TestCaseStatusDeprecated.IsValid())
	assert.False(t, TestCaseStatus("all").IsValid())

	assert.True(t, PriorityCritical.IsValid())
	assert.False(t, Priority("urgent").IsValid())

	assert.True(t, SeverityBlocker.IsValid())
	assert.False(t, Severity("trivial").IsValid())

	assert.True(t, BugStatusReopened.IsValid())
	assert.False(t, BugStatus("wontfix").IsValid())

	assert.True(t, ExecutionStatusNotExecuted.IsValid())
	assert.False(t, ExecutionStatus("pending").IsValid())
}

func TestBugStatusIsOpen(t *testing.T) {
	assert.True(t, BugStatusOpen.IsOpen())
	assert.True(t, BugStatusInProgress.IsOpen())
	assert.True(t, BugStatusReopened.IsOpen())
	assert.False(t, BugStatusResolved.IsOpen())
	assert.False(t, BugStatusClosed.IsOpen())
}
