// Package catalog serves the public read-only catalog: service
// offerings, portfolio case studies, and client testimonials.
//
// Endpoints:
//   - GET /api/services, GET /api/services/{id}
//   - GET /api/portfolio, GET /api/portfolio/{id}
//   - GET /api/testimonials
//
// All reads are scoped to active records; inactive records are
// indistinguishable from absent ones.
package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	portfoliostore "github.com/optimalsolutions/siteapi/internal/app/store/portfolio"
	servicestore "github.com/optimalsolutions/siteapi/internal/app/store/services"
	testimonialstore "github.com/optimalsolutions/siteapi/internal/app/store/testimonials"
	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
)

// Handler handles catalog read requests.
type Handler struct {
	services     *servicestore.Store
	portfolio    *portfoliostore.Store
	testimonials *testimonialstore.Store
	logger       *zap.Logger
}

// NewHandler creates a new catalog Handler.
func NewHandler(services *servicestore.Store, portfolio *portfoliostore.Store, testimonials *testimonialstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		services:     services,
		portfolio:    portfolio,
		testimonials: testimonials,
		logger:       logger,
	}
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ListActive(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch services")
		return
	}
	jsonutil.OK(w, services)
}

// GetService handles GET /api/services/{id}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	service, err := h.services.GetByServiceID(r.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.NotFound(w, "Service not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch service", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch service")
		return
	}
	jsonutil.OK(w, service)
}

// ListPortfolio handles GET /api/portfolio. Optional query parameters
// industry, year, and serviceType filter by exact match; featured=true
// restricts to featured items (any other featured value is ignored).
func (h *Handler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := portfoliostore.ListFilter{
		Industry:    q.Get("industry"),
		Year:        q.Get("year"),
		ServiceType: q.Get("serviceType"),
	}
	if q.Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	items, err := h.portfolio.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list portfolio items", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch portfolio items")
		return
	}
	jsonutil.OK(w, items)
}

// GetPortfolioItem handles GET /api/portfolio/{id}.
func (h *Handler) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.portfolio.GetByPortfolioID(r.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.NotFound(w, "Portfolio item not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch portfolio item", zap.String("id", id), zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch portfolio item")
		return
	}
	jsonutil.OK(w, item)
}

// ListTestimonials handles GET /api/testimonials. featured=true
// restricts to featured testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if r.URL.Query().Get("featured") == "true" {
		f := true
		featured = &f
	}

	testimonials, err := h.testimonials.List(r.Context(), featured)
	if err != nil {
		h.logger.Error("failed to list testimonials", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch testimonials")
		return
	}
	jsonutil.OK(w, testimonials)
}
