package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urban-gardening-assistant/planner-engine/pkg/types"
)

const (
	envDBHost     = "DB_HOST"
	envDBPort     = "DB_PORT"
	envDBUser     = "DB_USER"
	envDBPassword = "DB_PASSWORD"
	envDBName     = "DB_NAME"
	envDBSSLMode  = "DB_SSLMODE"
)

// LoadDatabaseConfig loads Postgres connection settings for the catalogue
// and compatibility store adapters.
func LoadDatabaseConfig() (*types.DatabaseConfig, error) {
	portStr := getEnvOrDefault(envDBPort, "5432")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envDBPort, err)
	}

	cfg := &types.DatabaseConfig{
		Host:            getEnvOrDefault(envDBHost, "localhost"),
		Port:            port,
		User:            getEnvOrDefault(envDBUser, "planner"),
		Password:        os.Getenv(envDBPassword),
		DBName:          getEnvOrDefault(envDBName, "garden_planner"),
		SSLMode:         getEnvOrDefault(envDBSSLMode, "disable"),
		ConnTimeout:     10 * time.Second,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		MaxConnLifetime: 5 * time.Minute,
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("database port out of range: %d", cfg.Port)
	}

	return cfg, nil
}
