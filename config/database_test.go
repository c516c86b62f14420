package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatabaseConfig_Defaults(t *testing.T) {
	t.Setenv(envDBHost, "")
	t.Setenv(envDBPort, "")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
}

func TestLoadDatabaseConfig_RejectsNonNumericPort(t *testing.T) {
	t.Setenv(envDBPort, "not-a-port")
	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}

func TestLoadDatabaseConfig_RejectsOutOfRangePort(t *testing.T) {
	t.Setenv(envDBPort, "99999")
	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}
