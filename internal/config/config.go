package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the diary service.
// Environment variables are parsed from the DIARY_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8000"`

	// Blob store configuration. "fs" writes attachments under UploadDir,
	// "s3" writes them to an S3-compatible bucket.
	BlobBackend string `envconfig:"BLOB_BACKEND" default:"fs"`
	UploadDir   string `envconfig:"UPLOAD_DIR" default:"uploads"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:""`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint  string `envconfig:"S3_ENDPOINT" default:""`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY" default:""`
	S3SecretKey string `envconfig:"S3_SECRET_KEY" default:""`

	// Entry store configuration. "memory" keeps entries for the lifetime of
	// the process, "sqlite" persists them to SQLitePath.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`

	// Identity verification
	GoogleClientID string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	RequireAuth    bool   `envconfig:"REQUIRE_AUTH" default:"false"`

	// Speech recognition
	SpeechAPIURL   string `envconfig:"SPEECH_API_URL" default:"https://speech.googleapis.com"`
	SpeechAPIKey   string `envconfig:"SPEECH_API_KEY" default:""`
	SpeechLanguage string `envconfig:"SPEECH_LANGUAGE" default:"en-US"`
}

// ResolveDefaults validates backend selectors and derives dependent values.
func (c *Config) ResolveDefaults() error {
	switch c.BlobBackend {
	case "fs":
		if c.UploadDir == "" {
			return fmt.Errorf("DIARY_UPLOAD_DIR is required when BLOB_BACKEND=fs")
		}
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("DIARY_S3_BUCKET is required when BLOB_BACKEND=s3")
		}
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND: %s", c.BlobBackend)
	}

	switch c.StoreDriver {
	case "memory":
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = filepath.Join(c.UploadDir, "diary.db")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	if c.RequireAuth && c.GoogleClientID == "" {
		return fmt.Errorf("DIARY_GOOGLE_CLIENT_ID is required when REQUIRE_AUTH=true")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: DIARY_HTTP_PORT, DIARY_UPLOAD_DIR.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("DIARY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("blob_backend", cfg.BlobBackend).
		Str("store_driver", cfg.StoreDriver).
		Bool("require_auth", cfg.RequireAuth).
		Bool("speech_configured", cfg.SpeechAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	cfg := &Config{
		Environment: EnvTesting,
		HTTPPort:    8000,
		BlobBackend: "fs",
		UploadDir:   "uploads",
		StoreDriver: "memory",

		SpeechAPIURL:   "https://speech.googleapis.com",
		SpeechLanguage: "en-US",
	}
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
