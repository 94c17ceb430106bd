// Package workflow contains the pure status rules for bugs and test cases.
// Guards evaluate preconditions without side effects.
package workflow

import (
	"fmt"
	"time"

	"qa-tracker-backend/internal/database/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// BugTransitionContext provides context for bug status transition guards.
type BugTransitionContext struct {
	BugNumber int
	From      models.BugStatus
	To        models.BugStatus
	Strict    bool // when false any valid status may follow any other
}

var bugTransitions = map[models.BugStatus][]models.BugStatus{
	models.BugStatusOpen:       {models.BugStatusInProgress, models.BugStatusResolved, models.BugStatusClosed},
	models.BugStatusInProgress: {models.BugStatusOpen, models.BugStatusResolved, models.BugStatusClosed},
	models.BugStatusResolved:   {models.BugStatusClosed, models.BugStatusReopened},
	models.BugStatusClosed:     {models.BugStatusReopened},
	models.BugStatusReopened:   {models.BugStatusInProgress, models.BugStatusResolved, models.BugStatusClosed},
}

// AllowedBugTransitions lists the statuses reachable from the given one in strict mode.
func AllowedBugTransitions(from models.BugStatus) []models.BugStatus {
	return append([]models.BugStatus(nil), bugTransitions[from]...)
}

// CanTransitionBug evaluates whether a bug may move between two statuses.
// Rules:
// - Target status must be valid
// - Staying in the same status is always allowed
// - In strict mode the move must be listed in the transition table
func CanTransitionBug(ctx BugTransitionContext) GuardResult {
	// Rule 1: target must be a known status
	if !ctx.To.IsValid() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid bug status %q", ctx.To),
		}
	}

	// Rule 2: no-op
	if ctx.From == ctx.To {
		return GuardResult{Allowed: true}
	}

	if !ctx.Strict {
		return GuardResult{Allowed: true}
	}

	// Rule 3: transition table
	for _, next := range bugTransitions[ctx.From] {
		if next == ctx.To {
			return GuardResult{Allowed: true}
		}
	}

	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("bug #%d cannot move from %s to %s", ctx.BugNumber, ctx.From, ctx.To),
	}
}

// ResolvedAt returns the resolution timestamp a bug should carry after a status change.
// Entering resolved stamps now; resolved to closed keeps the stamp; moving back to an
// open status clears it.
func ResolvedAt(from, to models.BugStatus, current *time.Time, now time.Time) *time.Time {
	switch {
	case to == models.BugStatusResolved && from != models.BugStatusResolved:
		return &now
	case to.IsOpen():
		return nil
	default:
		return current
	}
}

// TestCaseStatusAfterExecution returns the status a test case moves to after an
// execution is recorded. A passed run closes it, a failed run reactivates it, and
// any other outcome leaves it alone.
func TestCaseStatusAfterExecution(result models.ExecutionStatus, current models.TestCaseStatus) models.TestCaseStatus {
	switch result {
	case models.ExecutionStatusPassed:
		return models.TestCaseStatusClosed
	case models.ExecutionStatusFailed:
		return models.TestCaseStatusActive
	default:
		return current
	}
}
