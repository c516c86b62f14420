// Package store provides the persistent and notification adapters that
// satisfy the orchestrator's collaborator ports: Postgres-backed catalogue
// and compatibility stores, a Redis-backed notification sink, and
// in-memory doubles for tests.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/urban-gardening-assistant/planner-engine/pkg/types"
)

const (
	maxConnectRetries = 3
	retryBaseDelay    = time.Second
	pingTimeout       = 5 * time.Second
)

// NewPostgresConnection establishes a GORM connection with retry logic and
// connection-pool tuning from cfg, grounded on the engine's database
// adapter conventions.
func NewPostgresConnection(cfg *types.DatabaseConfig) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("database configuration is required")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxConnectRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
		if err == nil {
			break
		}
		if attempt < maxConnectRetries {
			time.Sleep(time.Duration(attempt) * retryBaseDelay)
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to database after %d attempts", maxConnectRetries)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database instance")
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}
