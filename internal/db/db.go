// Package db opens the devbackend store and keeps its schema current.
package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/painel/internal/config"
)

// Open connects with the configured driver. PostgreSQL is retried a few times
// so the store can start alongside its database container.
func Open(cfg config.DatabaseConfig, log logrus.FieldLogger) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true}
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "painel.db"
		}
		d, err := gorm.Open(sqlite.Open(path), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", path, err)
		}
		return d, nil
	case "postgres":
		var (
			d   *gorm.DB
			err error
		)
		for attempt := 1; attempt <= 5; attempt++ {
			d, err = gorm.Open(postgres.Open(cfg.DSN()), gcfg)
			if err == nil {
				return d, nil
			}
			log.WithError(err).WithField("attempt", attempt).Warn("database not ready, retrying")
			time.Sleep(2 * time.Second)
		}
		return nil, fmt.Errorf("connect postgres %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
