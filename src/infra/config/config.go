// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug, APP_SESSION_SECRET=...
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Session  SessionConfig
	Redis    RedisConfig
	Security SecurityConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"remixjokes"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 25)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`

	// MaxIdleConns is the minimum number of connections kept open (default: 5)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// AutoMigrate applies the embedded schema on startup (default: true)
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// SessionConfig holds the session cookie and token settings.
type SessionConfig struct {
	// Secret signs session tokens. Required.
	Secret string `envconfig:"SESSION_SECRET" required:"true"`

	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"RJ_session"`
	MaxAge     time.Duration `envconfig:"SESSION_MAX_AGE" default:"720h"`
	Issuer     string        `envconfig:"SESSION_ISSUER" default:"remix-jokes"`

	// Secure marks the cookie HTTPS-only; enable in production.
	Secure bool   `envconfig:"SESSION_SECURE" default:"false"`
	Domain string `envconfig:"SESSION_DOMAIN" default:""`
}

// RedisConfig holds the optional session revocation store settings.
type RedisConfig struct {
	// Addr is host:port. Empty disables server-side revocation.
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Enabled reports whether a Redis address was configured.
func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// SecurityConfig holds request origin checks for form posts.
type SecurityConfig struct {
	// AllowedOrigins lists extra origins allowed to post forms, besides the request host.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:""`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// section pairs a config section with its name for error messages.
type section struct {
	name   string
	target any
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	var cfg Config
	err := process(
		section{"server", &cfg.Server},
		section{"database", &cfg.Database},
		section{"log", &cfg.Log},
		section{"session", &cfg.Session},
		section{"redis", &cfg.Redis},
		section{"security", &cfg.Security},
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStorage reads only the database and log sections, for offline tools
// such as the seeder that do not serve sessions.
func LoadStorage() (*Config, error) {
	var cfg Config
	err := process(
		section{"database", &cfg.Database},
		section{"log", &cfg.Log},
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Each section is processed on its own so names stay flat (APP_PORT, not APP_SERVER_PORT).
func process(sections ...section) error {
	for _, s := range sections {
		if err := envconfig.Process("APP", s.target); err != nil {
			return fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}
	return nil
}
