// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "SITEAPI"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, base_url, etc.
//   - Environment variables: SITEAPI_MONGO_URI, SITEAPI_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "optimal_solutions", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Rate limiting configuration
	{Name: "rate_limit_enabled", Default: true, Desc: "Enable request rate limiting"},
	{Name: "rate_limit_requests", Default: 100, Desc: "Max requests per client per window"},
	{Name: "rate_limit_window", Default: "15m", Desc: "Counting window for the global rate limit"},
	{Name: "rate_limit_contact_requests", Default: 5, Desc: "Max contact submissions per client per window"},
	{Name: "rate_limit_contact_window", Default: "1h", Desc: "Counting window for contact submissions"},

	// CORS configuration
	{Name: "cors_origin", Default: "http://localhost:3000", Desc: "Origin allowed to call the API"},

	// Admin API key (Bearer token auth; empty disables the admin endpoints)
	{Name: "admin_api_key", Default: "", Desc: "API key for the admin endpoints (leave empty to disable)"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@example.com", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Optimal Solutions", Desc: "From display name"},
	{Name: "contact_notify_to", Default: "", Desc: "Address notified of new contact submissions (empty to skip)"},

	// Base URL for links in outbound email
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public site URL for email links"},

	// Catalog seeding
	{Name: "seed_catalog", Default: true, Desc: "Seed catalog collections with default content when empty"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SITEAPI_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		// Rate limiting
		RateLimitEnabled:         appValues.Bool("rate_limit_enabled"),
		RateLimitRequests:        appValues.Int("rate_limit_requests"),
		RateLimitWindow:          appValues.Duration("rate_limit_window", 15*time.Minute),
		RateLimitContactRequests: appValues.Int("rate_limit_contact_requests"),
		RateLimitContactWindow:   appValues.Duration("rate_limit_contact_window", time.Hour),

		CORSOrigin:  appValues.String("cors_origin"),
		AdminAPIKey: appValues.String("admin_api_key"),

		// Email/SMTP
		MailSMTPHost:    appValues.String("mail_smtp_host"),
		MailSMTPPort:    appValues.Int("mail_smtp_port"),
		MailSMTPUser:    appValues.String("mail_smtp_user"),
		MailSMTPPass:    appValues.String("mail_smtp_pass"),
		MailFrom:        appValues.String("mail_from"),
		MailFromName:    appValues.String("mail_from_name"),
		ContactNotifyTo: appValues.String("contact_notify_to"),

		BaseURL: appValues.String("base_url"),

		SeedCatalog: appValues.Bool("seed_catalog"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.RateLimitEnabled {
		if appCfg.RateLimitRequests <= 0 {
			return fmt.Errorf("rate_limit_requests must be positive, got %d", appCfg.RateLimitRequests)
		}
		if appCfg.RateLimitContactRequests <= 0 {
			return fmt.Errorf("rate_limit_contact_requests must be positive, got %d", appCfg.RateLimitContactRequests)
		}
	}

	if coreCfg.Env == "prod" && appCfg.AdminAPIKey == "" {
		logger.Warn("admin_api_key is empty, admin endpoints will reject every request")
	}

	return nil
}
