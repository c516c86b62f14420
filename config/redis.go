package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urban-gardening-assistant/planner-engine/pkg/types"
)

const (
	envRedisHost     = "REDIS_HOST"
	envRedisPort     = "REDIS_PORT"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
)

// LoadRedisConfig loads connection settings for the notification sink adapter.
func LoadRedisConfig() (*types.RedisConfig, error) {
	portStr := getEnvOrDefault(envRedisPort, "6379")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envRedisPort, err)
	}

	dbStr := getEnvOrDefault(envRedisDB, "0")
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envRedisDB, err)
	}

	return &types.RedisConfig{
		Host:        getEnvOrDefault(envRedisHost, "localhost"),
		Port:        port,
		Password:    os.Getenv(envRedisPassword),
		DB:          db,
		ConnTimeout: 5 * time.Second,
		EnableTLS:   false,
	}, nil
}

// loadAPIConfig loads the HTTP server's listening and hardening settings.
func loadAPIConfig() *types.APIConfig {
	return &types.APIConfig{
		Port:            getEnvOrDefault("API_PORT", "8080"),
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		RateLimit:       100,
		RateLimitWindow: time.Minute,
		EnableTLS:       false,
	}
}
