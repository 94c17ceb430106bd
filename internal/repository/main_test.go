//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"qa-tracker-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain tears the shared Postgres container down after the run, and on
// Ctrl+C so an interrupted run does not leave it behind.
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupted
		logrus.WithField("signal", sig.String()).Warn("Repository tests interrupted, removing Postgres container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
