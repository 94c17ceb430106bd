package cli

import (
	"fmt"
	"time"

	"qa-tracker-backend/internal/config"
	"qa-tracker-backend/internal/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	connectAttempts = 30
	connectDelay    = time.Second
)

// connect loads configuration and opens the database, retrying while Postgres
// is still starting (typical right after docker compose up).
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := &database.Options{LogLevel: logger.Silent}
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return cfg, db, nil
		}
		if attempt%10 == 0 || attempt == connectAttempts {
			logrus.WithError(err).Warnf("Database not ready (%d/%d)", attempt, connectAttempts)
		}
		time.Sleep(connectDelay)
	}
	return nil, nil, fmt.Errorf("database not ready after %d attempts", connectAttempts)
}
