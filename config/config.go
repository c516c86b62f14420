// Package config provides configuration loading for the garden planner
// engine's collaborator adapters and HTTP entrypoint. The optimization core
// itself (selector, fitness evaluator, genetic algorithm, validator) never
// touches this package — only the orchestrator's surrounding service does.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/urban-gardening-assistant/planner-engine/pkg/types"
)

const (
	defaultEnvironment = "development"
	defaultServiceName = "garden-planner-engine"
	defaultVersion     = "1.0.0"

	envEnvironment  = "ENV"
	envServiceName  = "SERVICE_NAME"
	envVersion      = "VERSION"
	envFeatureFlags = "FEATURE_FLAGS"
)

var validEnvironments = []string{"development", "staging", "production"}

// LoadConfig loads the complete service configuration from environment
// variables with comprehensive validation.
func LoadConfig() (*types.ServiceConfig, error) {
	cfg := &types.ServiceConfig{}

	cfg.Environment = strings.ToLower(getEnvOrDefault(envEnvironment, defaultEnvironment))
	if !isValidEnvironment(cfg.Environment) {
		return nil, fmt.Errorf("invalid environment %q: must be one of %v", cfg.Environment, validEnvironments)
	}

	cfg.ServiceName = getEnvOrDefault(envServiceName, defaultServiceName)

	version := getEnvOrDefault(envVersion, defaultVersion)
	if _, err := semver.NewVersion(version); err != nil {
		return nil, fmt.Errorf("invalid version format %q: must be semantic version", version)
	}
	cfg.Version = version

	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	cfg.Database = dbConfig

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load Redis configuration: %w", err)
	}
	cfg.Redis = redisConfig

	cfg.API = loadAPIConfig()

	if raw := os.Getenv(envFeatureFlags); raw != "" {
		flags, err := parseFeatureFlags(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse feature flags: %w", err)
		}
		cfg.FeatureFlags = flags
	} else {
		cfg.FeatureFlags = map[string]bool{}
	}

	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

func isValidEnvironment(env string) bool {
	for _, v := range validEnvironments {
		if env == v {
			return true
		}
	}
	return false
}

func parseFeatureFlags(raw string) (map[string]bool, error) {
	result := make(map[string]bool)
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid feature flag format: %s", pair)
		}
		key := strings.TrimSpace(kv[0])
		value := strings.ToLower(strings.TrimSpace(kv[1]))
		if key == "" {
			return nil, fmt.Errorf("empty feature flag key")
		}
		switch value {
		case "true":
			result[key] = true
		case "false":
			result[key] = false
		default:
			return nil, fmt.Errorf("invalid feature flag value: %s", value)
		}
	}
	return result, nil
}

func applyEnvironmentOverrides(cfg *types.ServiceConfig) {
	switch cfg.Environment {
	case "production":
		cfg.API.EnableTLS = true
		cfg.Redis.EnableTLS = true
		cfg.Database.SSLMode = "verify-full"
	case "staging":
		cfg.API.EnableTLS = true
		cfg.Redis.EnableTLS = true
		cfg.Database.SSLMode = "require"
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
