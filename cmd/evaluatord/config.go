package main

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Host        string
	Port        int
	Environment string
	LogLevel    string

	// Database settings
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// API token settings. Tokens is a comma-separated list of
	// token:name:role entries.
	APITokens string

	// Email settings
	EmailProvider        string
	EmailPostmarkToken   string
	EmailPostmarkAccount string
	EmailFromAddress     string
	EmailFromName        string

	// Storage settings
	StorageProvider  string
	StorageLocalPath string
	StorageLocalURL  string
	StorageS3Bucket  string
	StorageS3Region  string
	StorageS3BaseURL string

	// Document settings
	DocumentLanguage string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		// Server settings
		Host:        envString(getenv, "SERVER_HOST", "localhost"),
		Port:        envInt(getenv, "SERVER_PORT", 8080),
		Environment: envString(getenv, "ENVIRONMENT", "dev"),
		LogLevel:    envString(getenv, "LOG_LEVEL", "info"),

		// Database settings
		DBUser:     envString(getenv, "DB_USER", "postgres"),
		DBPassword: envString(getenv, "DB_PASSWORD", ""),
		DBHost:     envString(getenv, "DB_HOSTNAME", "localhost"),
		DBPort:     envString(getenv, "DB_PORT", "5432"),
		DBName:     envString(getenv, "DB_NAME", "postgres"),

		// API tokens
		APITokens: envString(getenv, "API_TOKENS", ""),

		// Email settings
		EmailProvider:        envString(getenv, "EMAIL_PROVIDER", "mock"),
		EmailPostmarkToken:   envString(getenv, "POSTMARK_SERVER_TOKEN", ""),
		EmailPostmarkAccount: envString(getenv, "POSTMARK_ACCOUNT_TOKEN", ""),
		EmailFromAddress:     envString(getenv, "EMAIL_FROM_ADDRESS", "billing@example.com"),
		EmailFromName:        envString(getenv, "EMAIL_FROM_NAME", "Container Evaluator"),

		// Storage settings
		StorageProvider:  envString(getenv, "STORAGE_PROVIDER", "local"),
		StorageLocalPath: envString(getenv, "STORAGE_LOCAL_PATH", "./uploads"),
		StorageLocalURL:  envString(getenv, "STORAGE_LOCAL_URL", "http://localhost:8080/uploads"),
		StorageS3Bucket:  envString(getenv, "STORAGE_S3_BUCKET", ""),
		StorageS3Region:  envString(getenv, "STORAGE_S3_REGION", "us-east-1"),
		StorageS3BaseURL: envString(getenv, "STORAGE_S3_BASE_URL", ""),

		// Document settings
		DocumentLanguage: envString(getenv, "DOCUMENT_LANGUAGE", "en"),
	}

	// Validate production requirements
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// isProduction reports whether the environment is production.
func (c *Config) isProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// validate checks production requirements.
func (c *Config) validate() error {
	if c.isProduction() && c.APITokens == "" {
		return fmt.Errorf("API_TOKENS must be set in production environment")
	}
	return nil
}

// Helper functions for loading environment variables with defaults.

func envString(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(getenv func(string) string, key string, defaultValue int) int {
	if value := getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func envDuration(getenv func(string) string, key string, defaultValue time.Duration) time.Duration {
	if value := getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
