package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ServiceRoutes returns a router for the service catalog.
// Mount at /api/services.
func ServiceRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListServices)
	r.Get("/{id}", h.GetService)
	return r
}

// PortfolioRoutes returns a router for the portfolio catalog.
// Mount at /api/portfolio.
func PortfolioRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListPortfolio)
	r.Get("/{id}", h.GetPortfolioItem)
	return r
}

// TestimonialRoutes returns a router for testimonials.
// Mount at /api/testimonials.
func TestimonialRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ListTestimonials)
	return r
}
