package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print bug, test case and execution statistics per project",
		Long: `Print a table of per-project statistics across every project, or a single
project selected by name or id with --project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}

			stats, err := collectStats(repository.NewProjectRepository(db), repository.NewReportRepository(db), project)
			if err != nil {
				return err
			}
			renderReport(os.Stdout, stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Limit the report to one project (name or id)")

	return cmd
}

// collectStats loads report rows for every project or for the one matching selector
func collectStats(projects repository.ProjectRepositoryInterface, reports repository.ReportRepositoryInterface, selector string) ([]service.ProjectStats, error) {
	var scope []uuid.UUID
	if selector = strings.TrimSpace(selector); selector != "" {
		all, err := projects.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		for _, p := range all {
			if p.ID.String() == selector || strings.EqualFold(p.Name, selector) {
				scope = []uuid.UUID{p.ID}
				break
			}
		}
		if scope == nil {
			return nil, fmt.Errorf("project %q not found", selector)
		}
	}

	list, err := reports.Projects(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	bugs, err := reports.BugRows(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load bugs: %w", err)
	}
	testCases, err := reports.TestCaseRows(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load test cases: %w", err)
	}
	executions, err := reports.ExecutionRows(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions: %w", err)
	}

	return service.BuildProjectStats(list, bugs, testCases, executions), nil
}

func renderReport(w io.Writer, stats []service.ProjectStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No projects found.")
		return
	}

	header := color.New(color.Bold)
	fmt.Fprintln(w, header.Sprintf("%-28s %6s %6s %8s %6s %6s %6s %6s %8s", "PROJECT", "BUGS", "OPEN", "RESOLVED", "CASES", "PASSED", "FAILED", "BLOCK", "SUCCESS"))
	for _, s := range stats {
		renderRow(w, truncate(s.ProjectName, 28), s.ReportCounters)
	}
	fmt.Fprintln(w, strings.Repeat("-", 90))
	renderRow(w, "TOTAL", service.AggregateStats(stats))
}

func renderRow(w io.Writer, name string, c service.ReportCounters) {
	fmt.Fprintf(w, "%-28s %6d %6d %8d %6d %6d %6d %6d %s\n",
		name, c.TotalBugs, c.OpenBugs, c.ResolvedBugs, c.TotalTestCases,
		c.PassedExecutions, c.FailedExecutions, c.BlockedExecutions,
		rateColor(c.SuccessRate).Sprintf("%7d%%", c.SuccessRate))
}

func rateColor(rate int) *color.Color {
	switch {
	case rate >= 80:
		return color.New(color.FgGreen)
	case rate >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
