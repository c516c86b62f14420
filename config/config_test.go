package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		envEnvironment, envServiceName, envVersion, envFeatureFlags,
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "API_PORT",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadConfig_DefaultsWhenEnvUnset(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultEnvironment, cfg.Environment)
	assert.Equal(t, defaultServiceName, cfg.ServiceName)
	assert.Equal(t, defaultVersion, cfg.Version)
	assert.Empty(t, cfg.FeatureFlags)
}

func TestLoadConfig_RejectsInvalidEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envEnvironment, "not-a-real-environment")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalidVersion(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envVersion, "not-a-semver")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ProductionOverridesTightenSecurity(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envEnvironment, "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.API.EnableTLS)
	assert.True(t, cfg.Redis.EnableTLS)
	assert.Equal(t, "verify-full", cfg.Database.SSLMode)
}

func TestParseFeatureFlags_ParsesCommaSeparatedPairs(t *testing.T) {
	flags, err := parseFeatureFlags("ai_narrative=true, experimental_ga=false")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"ai_narrative": true, "experimental_ga": false}, flags)
}

func TestParseFeatureFlags_RejectsMalformedPair(t *testing.T) {
	_, err := parseFeatureFlags("ai_narrative")
	assert.Error(t, err)
}

func TestParseFeatureFlags_RejectsNonBooleanValue(t *testing.T) {
	_, err := parseFeatureFlags("ai_narrative=maybe")
	assert.Error(t, err)
}
