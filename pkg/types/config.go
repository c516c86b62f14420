// Package types provides the core configuration structures shared across the
// garden planner engine's collaborator adapters and HTTP entrypoint.
package types

import "time"

// ServiceConfig is the top-level configuration for a planner-engine process.
type ServiceConfig struct {
	Environment string `json:"environment" yaml:"environment"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Version     string `json:"version" yaml:"version"`

	Database *DatabaseConfig `json:"database" yaml:"database"`
	Redis    *RedisConfig    `json:"redis" yaml:"redis"`
	API      *APIConfig      `json:"api" yaml:"api"`

	Debug           bool              `json:"debug" yaml:"debug"`
	ShutdownTimeout time.Duration     `json:"shutdownTimeout" yaml:"shutdownTimeout"`
	FeatureFlags    map[string]bool   `json:"featureFlags" yaml:"featureFlags"`
}

// DatabaseConfig holds Postgres connection settings for the catalogue and
// compatibility store adapters.
type DatabaseConfig struct {
	Host            string        `json:"host" yaml:"host"`
	Port            int           `json:"port" yaml:"port"`
	User            string        `json:"user" yaml:"user"`
	Password        string        `json:"password" yaml:"password"`
	DBName          string        `json:"dbName" yaml:"dbName"`
	SSLMode         string        `json:"sslMode" yaml:"sslMode"`
	ConnTimeout     time.Duration `json:"connTimeout" yaml:"connTimeout"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxConnLifetime time.Duration `json:"maxConnLifetime" yaml:"maxConnLifetime"`
}

// RedisConfig holds connection settings for the notification sink adapter.
type RedisConfig struct {
	Host        string        `json:"host" yaml:"host"`
	Port        int           `json:"port" yaml:"port"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	ConnTimeout time.Duration `json:"connTimeout" yaml:"connTimeout"`
	EnableTLS   bool          `json:"enableTLS" yaml:"enableTLS"`
}

// APIConfig holds the HTTP server's listening and hardening settings.
type APIConfig struct {
	Port            string        `json:"port" yaml:"port"`
	ReadTimeout     time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout    time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout     time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	RateLimit       int           `json:"rateLimit" yaml:"rateLimit"`
	RateLimitWindow time.Duration `json:"rateLimitWindow" yaml:"rateLimitWindow"`
	EnableTLS       bool          `json:"enableTLS" yaml:"enableTLS"`
}
