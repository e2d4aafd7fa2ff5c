// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	adminfeature "github.com/optimalsolutions/siteapi/internal/app/features/admin"
	catalogfeature "github.com/optimalsolutions/siteapi/internal/app/features/catalog"
	contactfeature "github.com/optimalsolutions/siteapi/internal/app/features/contact"
	healthfeature "github.com/optimalsolutions/siteapi/internal/app/features/health"
	newsletterfeature "github.com/optimalsolutions/siteapi/internal/app/features/newsletter"
	contactstore "github.com/optimalsolutions/siteapi/internal/app/store/contacts"
	newsletterstore "github.com/optimalsolutions/siteapi/internal/app/store/newsletter"
	portfoliostore "github.com/optimalsolutions/siteapi/internal/app/store/portfolio"
	ratelimitstore "github.com/optimalsolutions/siteapi/internal/app/store/ratelimit"
	servicestore "github.com/optimalsolutions/siteapi/internal/app/store/services"
	testimonialstore "github.com/optimalsolutions/siteapi/internal/app/store/testimonials"
	"github.com/optimalsolutions/siteapi/internal/app/system/apicors"
	"github.com/optimalsolutions/siteapi/internal/app/system/httperr"
	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
	"github.com/optimalsolutions/siteapi/internal/app/system/notify"
	"github.com/optimalsolutions/siteapi/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// notifier is the email dispatcher created in BuildHandler, kept at
// package level so Shutdown can wait for in-flight deliveries.
var notifier *notify.Dispatcher

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The service is a pure JSON API consumed by the marketing site
// frontend, so there is no session, CSRF, or template layer: every
// route under /api speaks JSON, shares the global rate limit, and
// answers CORS preflight for the configured frontend origin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	dev := coreCfg.Env == "dev"
	db := deps.MongoDatabase

	// Stores
	contacts := contactstore.New(db)
	subscribers := newsletterstore.New(db)
	services := servicestore.New(db)
	portfolio := portfoliostore.New(db)
	testimonials := testimonialstore.New(db)

	// Email dispatcher shared by the contact and newsletter features
	notifier = notify.New(deps.Mailer, appCfg.MailFromName, appCfg.ContactNotifyTo, appCfg.BaseURL, logger)

	// Feature handlers
	catalogHandler := catalogfeature.NewHandler(services, portfolio, testimonials, logger)
	contactHandler := contactfeature.NewHandler(contacts, notifier, logger)
	newsletterHandler := newsletterfeature.NewHandler(subscribers, notifier, logger)
	adminHandler := adminfeature.NewHandler(contacts, subscribers, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Panic recovery: unhandled panics become a JSON 500. Stack traces
	// are included in the body only in dev.
	r.Use(httperr.Recoverer(logger, dev))

	// ─────────────────────────────────────────────────────────────────────────────
	// Health endpoints for load balancers and orchestrators
	// ─────────────────────────────────────────────────────────────────────────────
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// ─────────────────────────────────────────────────────────────────────────────
	// API Routes
	// ─────────────────────────────────────────────────────────────────────────────
	r.Route("/api", func(api chi.Router) {
		// CORS for the marketing site frontend, including preflight.
		api.Use(apicors.Middleware(appCfg.CORSOrigin))

		// Lenient global rate limit across every API route.
		if appCfg.RateLimitEnabled {
			globalLimiter := ratelimitstore.New(db, "api", appCfg.RateLimitRequests, appCfg.RateLimitWindow)
			api.Use(ratelimit.Middleware(globalLimiter,
				"Too many requests, please try again later.", logger))
		}

		// Public catalog (read-only)
		api.Mount("/services", catalogfeature.ServiceRoutes(catalogHandler))
		api.Mount("/portfolio", catalogfeature.PortfolioRoutes(catalogHandler))
		api.Mount("/testimonials", catalogfeature.TestimonialRoutes(catalogHandler))

		// Contact form, with the stricter submission limit stacked on
		// top of the global one.
		api.Route("/contact", func(cr chi.Router) {
			if appCfg.RateLimitEnabled {
				contactLimiter := ratelimitstore.New(db, "contact", appCfg.RateLimitContactRequests, appCfg.RateLimitContactWindow)
				cr.Use(ratelimit.Middleware(contactLimiter,
					"Too many contact form submissions, please try again later.", logger))
			}
			cr.Mount("/", contactfeature.Routes(contactHandler))
		})

		// Newsletter subscribe/unsubscribe
		api.Mount("/newsletter", newsletterfeature.Routes(newsletterHandler))

		// Admin endpoints, Bearer API key auth
		api.Mount("/admin", adminfeature.Routes(adminHandler, appCfg.AdminAPIKey, logger))
	})

	// Unknown routes get a JSON 404 instead of the default text body.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.NotFound(w, "Route not found")
	})

	logger.Info("HTTP handler built",
		zap.String("env", coreCfg.Env),
		zap.Bool("rate_limiting", appCfg.RateLimitEnabled),
		zap.String("cors_origin", appCfg.CORSOrigin),
	)

	return r, nil
}
