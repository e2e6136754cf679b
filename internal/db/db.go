// Package db opens the local session database. The default is an embedded
// sqlite file; set DATABASE_DSN to use PostgreSQL instead (several browser
// clients sharing one session store).
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tjtrack/tjtrack-web/internal/config"
)

// Open connects according to the session configuration.
func Open(cfg config.SessionConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if cfg.DSN != "" {
		conn, err := gorm.Open(postgres.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return conn, nil
	}
	conn, err := gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("sqlite %s: %w", cfg.DBPath, err)
	}
	return conn, nil
}
