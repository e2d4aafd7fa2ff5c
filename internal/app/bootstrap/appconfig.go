// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to this service lives: the
// MongoDB connection, rate limit policies, SMTP delivery, and the
// admin API key.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Rate limiting configuration. The global policy covers every /api
	// route; the contact policy additionally covers form submission.
	RateLimitEnabled         bool          // Enable request rate limiting (default: true)
	RateLimitRequests        int           // Max requests per client per window (default: 100)
	RateLimitWindow          time.Duration // Counting window for the global policy (default: 15m)
	RateLimitContactRequests int           // Max contact submissions per client per window (default: 5)
	RateLimitContactWindow   time.Duration // Counting window for contact submissions (default: 1h)

	// CORS origin allowed to call the API (the marketing site frontend)
	CORSOrigin string

	// API key authentication for the admin endpoints.
	// Leave empty to disable the admin surface entirely.
	AdminAPIKey string

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit, email-smtp.us-east-1.amazonaws.com for SES)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty for Mailpit, SES SMTP credentials for AWS)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address (e.g., noreply@example.com)
	MailFromName string // From display name

	// Internal address that receives new contact submission
	// notifications. Leave empty to skip the notification email.
	ContactNotifyTo string

	// Base URL of the public site, used for links in outbound email
	// (e.g., the unsubscribe link in the newsletter welcome).
	BaseURL string

	// Seed the catalog collections with default content when empty
	SeedCatalog bool
}
