// Package config handles runtime configuration: development defaults
// overlaid with environment variables.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Bytewave site backend.
type Config struct {
	Port          string
	DBPath        string
	StaticDir     string
	Env           string // "development" or "production"
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: The JWT secret default is insecure and must be overridden in
// production via BYTEWAVE_JWT_SECRET.
func (c *Config) LoadDefaults() {
	c.Port = "8080"
	c.DBPath = "./bytewave.db"
	c.StaticDir = "./web"
	c.Env = "development"
	c.JWTSecret = "bytewave-dev-secret"
	c.TokenTTL = 24 * time.Hour
	c.AdminEmail = "admin@bytewave.com"
	c.AdminPassword = "admin"
	c.AdminName = "Administrator"
}

// Load builds a Config by applying defaults and overlaying environment
// variables.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	overlay(&cfg.Port, "BYTEWAVE_PORT")
	overlay(&cfg.DBPath, "BYTEWAVE_DB_PATH")
	overlay(&cfg.StaticDir, "BYTEWAVE_STATIC_DIR")
	overlay(&cfg.Env, "BYTEWAVE_ENV")
	overlay(&cfg.JWTSecret, "BYTEWAVE_JWT_SECRET")
	overlay(&cfg.AdminEmail, "BYTEWAVE_ADMIN_EMAIL")
	overlay(&cfg.AdminPassword, "BYTEWAVE_ADMIN_PASSWORD")
	overlay(&cfg.AdminName, "BYTEWAVE_ADMIN_NAME")

	if v := os.Getenv("BYTEWAVE_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}

	return cfg
}

// IsProduction reports whether the backend runs in production mode.
// Controls the Secure attribute on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
