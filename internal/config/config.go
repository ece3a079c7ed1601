// Package config reads process settings from the environment and the role
// membership table from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// OutboxConfig drives the relay worker. Zero values fall back to the relay's
// own defaults.
type OutboxConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Retention    time.Duration
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env         string
	Database    DatabaseConfig
	Outbox      OutboxConfig
	RedisAddr   string
	KafkaBroker string
	JWTSecret   string
	Port        string
	RolesConfig string
	RBACModel   string
	// RoleReload is how often each API replica re-reads role_members.
	RoleReload time.Duration
}

// FromEnv reads the process environment. Call godotenv.Load first when a
// .env file should be honoured.
func FromEnv() (*Config, error) {
	return fromLookup(os.Getenv)
}

func fromLookup(get func(string) string) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     get("DB_HOST"),
			Port:     get("DB_PORT"),
			User:     get("DB_USER"),
			Password: get("DB_PASSWORD"),
			Name:     get("DB_NAME"),
			SSLMode:  get("DB_SSLMODE"),
		},
		Env:         get("APP_ENV"),
		RedisAddr:   get("REDIS_ADDR"),
		KafkaBroker: get("KAFKA_BROKER"),
		JWTSecret:   get("JWT_SECRET"),
		Port:        get("PORT"),
		RolesConfig: get("ROLES_CONFIG"),
		RBACModel:   get("RBAC_MODEL"),
	}

	outbox, err := outboxFromLookup(get)
	if err != nil {
		return nil, err
	}
	cfg.Outbox = outbox

	if v := get("ROLE_RELOAD_INTERVAL"); v != "" {
		if cfg.RoleReload, err = time.ParseDuration(v); err != nil || cfg.RoleReload <= 0 {
			return nil, fmt.Errorf("config: ROLE_RELOAD_INTERVAL must be a positive duration, got %q", v)
		}
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func outboxFromLookup(get func(string) string) (OutboxConfig, error) {
	var (
		out OutboxConfig
		err error
	)
	if v := get("OUTBOX_POLL_INTERVAL"); v != "" {
		if out.PollInterval, err = time.ParseDuration(v); err != nil {
			return out, fmt.Errorf("config: OUTBOX_POLL_INTERVAL: %w", err)
		}
	}
	if v := get("OUTBOX_BATCH_SIZE"); v != "" {
		if out.BatchSize, err = strconv.Atoi(v); err != nil || out.BatchSize < 1 {
			return out, fmt.Errorf("config: OUTBOX_BATCH_SIZE must be a positive integer, got %q", v)
		}
	}
	if v := get("OUTBOX_RETENTION"); v != "" {
		if out.Retention, err = time.ParseDuration(v); err != nil {
			return out, fmt.Errorf("config: OUTBOX_RETENTION: %w", err)
		}
	}
	return out, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET must be set")
	}
	switch c.Env {
	case "":
		c.Env = EnvDevelopment
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("config: APP_ENV must be %s or %s, got %q", EnvDevelopment, EnvProduction, c.Env)
	}
	if c.Port == "" {
		c.Port = "3000"
	}
	if c.RolesConfig == "" {
		c.RolesConfig = "config/roles.yaml"
	}
	if c.RoleReload == 0 {
		c.RoleReload = time.Minute
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: DB_HOST must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: DB_USER must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: DB_NAME must be set")
	}
	if d.Port == "" {
		d.Port = "5432"
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	return nil
}
