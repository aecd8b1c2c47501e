// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Storage backends.
const (
	StorageLocal      = "local"
	StorageCloudinary = "cloudinary"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"REBELS_DB_PATH" envDefault:"./data/rebels.db"`
	SessionSecret string `env:"REBELS_SESSION_SECRET,required"`
	ServerHost    string `env:"REBELS_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"REBELS_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"REBELS_ENV" envDefault:"development"`
	LogLevel      string `env:"REBELS_LOG_LEVEL" envDefault:"info"`

	// Admin account seeded into an empty admin_users table
	AdminEmail    string `env:"REBELS_ADMIN_EMAIL" envDefault:"admin@frankfurterrebels.de"`
	AdminPassword string `env:"REBELS_ADMIN_PASSWORD" envDefault:"admin123"`

	// Object storage for uploads
	Storage       string `env:"REBELS_STORAGE" envDefault:"local"`
	UploadsDir    string `env:"REBELS_UPLOADS_DIR" envDefault:"./uploads"`
	StorageBucket string `env:"REBELS_STORAGE_BUCKET" envDefault:"cricket-images"`

	CloudinaryCloudName string `env:"REBELS_CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"REBELS_CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"REBELS_CLOUDINARY_API_SECRET"`

	// Page cache
	RedisURL    string `env:"REBELS_REDIS_URL"`                         // Optional Redis URL
	CachePrefix string `env:"REBELS_CACHE_PREFIX" envDefault:"rebels:"` // Redis key prefix
	CacheTTL    int    `env:"REBELS_CACHE_TTL" envDefault:"300"`        // Seconds

	DoSeed bool `env:"REBELS_DO_SEED" envDefault:"false"` // Seed default content rows

	// Public site URL used in robots.txt and sitemap.xml; empty derives it from the request
	SiteURL string `env:"REBELS_SITE_URL"`

	// Optional MaxMind GeoLite2-Country database for event metadata
	GeoIPDBPath string `env:"REBELS_GEOIP_DB_PATH"`

	// Events older than this many days are pruned nightly; 0 keeps everything
	EventRetentionDays int `env:"REBELS_EVENT_RETENTION_DAYS" envDefault:"90"`

	// Honour X-Real-IP / X-Forwarded-For; enable only behind a proxy that sets them
	TrustedProxy bool `env:"REBELS_TRUSTED_PROXY" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// UseCloudinary returns true if uploads go to Cloudinary.
func (c Config) UseCloudinary() bool {
	return c.Storage == StorageCloudinary
}

// CacheDuration returns the page cache TTL.
func (c Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// EventRetention returns how long events are kept, or 0 to keep them forever.
func (c Config) EventRetention() time.Duration {
	if c.EventRetentionDays <= 0 {
		return 0
	}
	return time.Duration(c.EventRetentionDays) * 24 * time.Hour
}

// MinSessionSecretLength is the minimum length of the HMAC key used to sign sessions.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("REBELS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("REBELS_SESSION_SECRET is a known default value and must not be used")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("REBELS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	switch cfg.Storage {
	case StorageLocal:
	case StorageCloudinary:
		if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
			return nil, fmt.Errorf("REBELS_STORAGE=cloudinary requires REBELS_CLOUDINARY_CLOUD_NAME, " +
				"REBELS_CLOUDINARY_API_KEY and REBELS_CLOUDINARY_API_SECRET")
		}
	default:
		return nil, fmt.Errorf("REBELS_STORAGE must be %q or %q, got %q", StorageLocal, StorageCloudinary, cfg.Storage)
	}

	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("REBELS_ADMIN_EMAIL must not be empty")
	}
	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	cfg.SiteURL = strings.TrimSuffix(strings.TrimSpace(cfg.SiteURL), "/")

	if !cfg.IsDevelopment() && cfg.AdminPassword == "admin123" {
		slog.Warn("REBELS_ADMIN_PASSWORD is the default; change it after the first login")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
