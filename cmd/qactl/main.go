package main

import (
	"fmt"
	"os"

	"qa-tracker-backend/internal/api/handlers"
	"qa-tracker-backend/internal/cli"
	"qa-tracker-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "qactl",
		Short:   "Administration tool for the QA tracker",
		Version: handlers.Version,
		Long: `qactl seeds fixture data, manages user accounts and prints project
statistics directly against the QA tracker database.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.UsersCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
