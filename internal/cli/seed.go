package cli

import (
	"fmt"

	"qa-tracker-backend/internal/history"
	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/seed"
	"qa-tracker-backend/internal/service"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, projects, test cases and bugs from a YAML file",
		Long: `Load fixture data from a YAML file. Users are matched by email and
projects by name, so running the same file twice creates nothing new.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := seed.LoadFile(path)
			if err != nil {
				return err
			}

			cfg, db, err := connect()
			if err != nil {
				return err
			}

			users := repository.NewUserRepository(db)
			projects := repository.NewProjectRepository(db)
			members := repository.NewMemberRepository(db)
			testCaseRepo := repository.NewTestCaseRepository(db)

			validate := validator.New()
			recorder := history.NewRecorder(cfg.HistoryLanguage)
			access := service.NewAccessService(users, projects, members)
			testCases := service.NewTestCaseService(testCaseRepo, repository.NewExecutionRepository(db), access, recorder, validate)
			bugs := service.NewBugService(repository.NewBugRepository(db), testCaseRepo, repository.NewCommentRepository(db), access, recorder, validate, cfg.StrictBugTransitions)

			result, err := seed.NewLoader(users, projects, members, testCases, bugs).Load(file)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen)
			fmt.Printf("%s users=%d projects=%d members=%d test_cases=%d bugs=%d\n",
				green.Sprint("Seeded"), result.Users, result.Projects, result.Members, result.TestCases, result.Bugs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "seed.yaml", "Path to the seed YAML file")

	return cmd
}
