package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Content store (headless CMS read API)
	CMSBaseURL   string
	CMSDataset   string
	CMSReadToken string

	// Revalidation webhook
	RevalidateSecret string

	// Email
	EmailFrom       string
	ResendAPIKey    string
	ReportRecipient string

	// Observability (optional)
	SentryDSN string

	// Object storage (S3-compatible: R2, MinIO, AWS S3, etc.)
	// All five values are required before upload grants can be issued,
	// but the server boots without them; the upload endpoint reports a
	// configuration error instead.
	StorageAccountID string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StoragePublicURL string

	// Expiry for issued upload grants, enforced by the object store.
	UploadGrantExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Living Word"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envRequired("APP_URL"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/site.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Content store
		CMSBaseURL:   envRequired("CMS_BASE_URL"),
		CMSDataset:   envString("CMS_DATASET", "production"),
		CMSReadToken: envString("CMS_READ_TOKEN", ""),

		// Revalidation webhook
		RevalidateSecret: envRequired("REVALIDATE_SECRET"),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:       envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey:    envString("RESEND_API_KEY", ""),
		ReportRecipient: envString("REPORT_RECIPIENT", "reports@example.com"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Object storage
		StorageAccountID: envString("STORAGE_ACCOUNT_ID", ""),
		StorageAccessKey: envString("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: envString("STORAGE_SECRET_KEY", ""),
		StorageBucket:    envString("STORAGE_BUCKET", ""),
		StoragePublicURL: envString("STORAGE_PUBLIC_URL", ""),

		UploadGrantExpiry: envDuration("UPLOAD_GRANT_EXPIRY", 600*time.Second),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for
// production deployments. Development allows email to fall back to log mode.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
}

// StorageConfigured reports whether every value needed to issue upload
// grants is present.
func (c *Config) StorageConfigured() bool {
	return c.StorageAccountID != "" &&
		c.StorageAccessKey != "" &&
		c.StorageSecretKey != "" &&
		c.StorageBucket != "" &&
		c.StoragePublicURL != ""
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
