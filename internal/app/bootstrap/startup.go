// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	portfoliostore "github.com/optimalsolutions/siteapi/internal/app/store/portfolio"
	servicestore "github.com/optimalsolutions/siteapi/internal/app/store/services"
	testimonialstore "github.com/optimalsolutions/siteapi/internal/app/store/testimonials"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// This is the place for one-time initialization that depends on having live
// database connections and fully loaded configuration. Unlike ConnectDB and
// EnsureSchema which focus on infrastructure, Startup is for application-level
// initialization.
//
// Returning a non-nil error will abort startup and prevent the server from
// starting. Returning nil signals that initialization succeeded.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	// Log catalog state so an empty catalog is visible at boot rather
	// than as a puzzling empty API response later.
	services, err := servicestore.New(db).Count(ctx)
	if err != nil {
		return err
	}
	portfolio, err := portfoliostore.New(db).Count(ctx)
	if err != nil {
		return err
	}
	testimonials, err := testimonialstore.New(db).Count(ctx)
	if err != nil {
		return err
	}

	logger.Info("catalog loaded",
		zap.Int64("services", services),
		zap.Int64("portfolio_items", portfolio),
		zap.Int64("testimonials", testimonials),
	)

	if appCfg.ContactNotifyTo == "" {
		logger.Warn("contact_notify_to is empty, contact submissions will not notify anyone")
	}

	return nil
}
