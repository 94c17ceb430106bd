package service

import (
	"fmt"
	"math"
	"time"

	"qa-tracker-backend/internal/database/models"
	"qa-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportCounters are the additive counters of a report
type ReportCounters struct {
	TotalBugs         int `json:"total_bugs"`
	OpenBugs          int `json:"open_bugs"`
	ResolvedBugs      int `json:"resolved_bugs"`
	TotalTestCases    int `json:"total_test_cases"`
	ClosedTestCases   int `json:"closed_test_cases"`
	ActiveTestCases   int `json:"active_test_cases"`
	PassedExecutions  int `json:"passed_executions"`
	FailedExecutions  int `json:"failed_executions"`
	BlockedExecutions int `json:"blocked_executions"`
	SkippedExecutions int `json:"skipped_executions"`
	PendingExecutions int `json:"pending_executions"`
	SuccessRate       int `json:"success_rate"`
}

// ProjectStats is the report of one project
type ProjectStats struct {
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	ReportCounters
}

// TrendPoint counts bugs created and resolved on one UTC day
type TrendPoint struct {
	Date     string `json:"date"`
	Created  int    `json:"created"`
	Resolved int    `json:"resolved"`
}

// ReportResponse is the full report over the caller's scope
type ReportResponse struct {
	Projects    []ProjectStats `json:"projects"`
	Aggregate   ReportCounters `json:"aggregate"`
	Trend       []TrendPoint   `json:"trend"`
	GeneratedAt string         `json:"generated_at"`
}

// ReportService aggregates bug, test case and execution counts
type ReportService struct {
	repo      repository.ReportRepositoryInterface
	access    *AccessService
	trendDays int
	now       func() time.Time
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface, access *AccessService, trendDays int) *ReportService {
	return &ReportService{
		repo:      repo,
		access:    access,
		trendDays: trendDays,
		now:       time.Now,
	}
}

// Generate builds the report for the projects the caller can see. Admins see every
// project. projectID narrows the report to one project.
func (s *ReportService) Generate(actorID uuid.UUID, projectID *uuid.UUID) (*ReportResponse, error) {
	scope, err := s.scope(actorID, projectID)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.Projects(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	bugs, err := s.repo.BugRows(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load bugs: %w", err)
	}
	testCases, err := s.repo.TestCaseRows(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load test cases: %w", err)
	}
	executions, err := s.repo.ExecutionRows(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions: %w", err)
	}

	stats := BuildProjectStats(projects, bugs, testCases, executions)
	now := s.now()
	return &ReportResponse{
		Projects:    stats,
		Aggregate:   AggregateStats(stats),
		Trend:       BuildTrend(bugs, s.trendDays, now),
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}, nil
}

// scope returns the project ids to report on; nil means all projects
func (s *ReportService) scope(actorID uuid.UUID, projectID *uuid.UUID) ([]uuid.UUID, error) {
	actor, err := s.access.Actor(actorID)
	if err != nil {
		return nil, err
	}

	if projectID != nil {
		if actor.Role != models.RoleAdmin {
			if _, err := s.access.RequireMember(*projectID, actorID); err != nil {
				return nil, err
			}
		}
		return []uuid.UUID{*projectID}, nil
	}
	if actor.Role == models.RoleAdmin {
		return nil, nil
	}

	ids, err := s.access.ProjectIDs(actorID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// BuildProjectStats computes one ProjectStats per project, in project order
func BuildProjectStats(projects []models.Project, bugs []repository.BugReportRow, testCases []repository.TestCaseReportRow, executions []repository.ExecutionReportRow) []ProjectStats {
	stats := make([]ProjectStats, len(projects))
	index := make(map[uuid.UUID]*ProjectStats, len(projects))
	for i, p := range projects {
		stats[i] = ProjectStats{ProjectID: p.ID, ProjectName: p.Name}
		index[p.ID] = &stats[i]
	}

	for _, b := range bugs {
		st, ok := index[b.ProjectID]
		if !ok {
			continue
		}
		st.TotalBugs++
		switch b.Status {
		case models.BugStatusOpen, models.BugStatusInProgress, models.BugStatusReopened:
			st.OpenBugs++
		case models.BugStatusResolved, models.BugStatusClosed:
			st.ResolvedBugs++
		}
	}

	for _, tc := range testCases {
		st, ok := index[tc.ProjectID]
		if !ok {
			continue
		}
		st.TotalTestCases++
		if tc.Status == models.TestCaseStatusClosed {
			st.ClosedTestCases++
		}
	}

	for _, e := range executions {
		st, ok := index[e.ProjectID]
		if !ok {
			continue
		}
		switch e.Status {
		case models.ExecutionStatusPassed:
			st.PassedExecutions++
		case models.ExecutionStatusFailed:
			st.FailedExecutions++
		case models.ExecutionStatusBlocked:
			st.BlockedExecutions++
		case models.ExecutionStatusSkipped:
			st.SkippedExecutions++
		case models.ExecutionStatusNotExecuted:
			st.PendingExecutions++
		}
	}

	for i := range stats {
		st := &stats[i]
		st.ActiveTestCases = st.TotalTestCases - st.ClosedTestCases
		st.SuccessRate = percent(st.PassedExecutions, st.PassedExecutions+st.FailedExecutions)
	}
	return stats
}

// AggregateStats sums the per-project counters. Its success rate is the share of
// finished work: resolved bugs plus closed test cases over all bugs and test cases.
func AggregateStats(stats []ProjectStats) ReportCounters {
	var total ReportCounters
	for _, st := range stats {
		total.TotalBugs += st.TotalBugs
		total.OpenBugs += st.OpenBugs
		total.ResolvedBugs += st.ResolvedBugs
		total.TotalTestCases += st.TotalTestCases
		total.ClosedTestCases += st.ClosedTestCases
		total.ActiveTestCases += st.ActiveTestCases
		total.PassedExecutions += st.PassedExecutions
		total.FailedExecutions += st.FailedExecutions
		total.BlockedExecutions += st.BlockedExecutions
		total.SkippedExecutions += st.SkippedExecutions
		total.PendingExecutions += st.PendingExecutions
	}
	total.SuccessRate = percent(total.ResolvedBugs+total.ClosedTestCases, total.TotalBugs+total.TotalTestCases)
	return total
}

// BuildTrend returns days zero-filled UTC buckets ending on the day of now.
// A bug counts as resolved on its resolved_at day; resolved or closed bugs
// without a stamp fall back to their last update.
func BuildTrend(bugs []repository.BugReportRow, days int, now time.Time) []TrendPoint {
	if days < 1 {
		return []TrendPoint{}
	}

	today := now.UTC().Truncate(24 * time.Hour)
	first := today.AddDate(0, 0, -(days - 1))
	points := make([]TrendPoint, days)
	for i := range points {
		points[i].Date = first.AddDate(0, 0, i).Format(time.DateOnly)
	}

	bucket := func(t time.Time) int {
		day := t.UTC().Truncate(24 * time.Hour)
		if day.Before(first) || day.After(today) {
			return -1
		}
		return int(day.Sub(first).Hours() / 24)
	}

	for _, b := range bugs {
		if i := bucket(b.CreatedAt); i >= 0 {
			points[i].Created++
		}

		var resolvedAt *time.Time
		switch {
		case b.ResolvedAt != nil:
			resolvedAt = b.ResolvedAt
		case b.Status == models.BugStatusResolved || b.Status == models.BugStatusClosed:
			updated := b.UpdatedAt
			resolvedAt = &updated
		}
		if resolvedAt != nil {
			if i := bucket(*resolvedAt); i >= 0 {
				points[i].Resolved++
			}
		}
	}
	return points
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
