package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/optimalsolutions/siteapi/internal/app/system/auth"
)

// Routes returns a router for the admin endpoints. Mount at /api/admin.
//
// Authentication is via API key (Bearer token in Authorization header).
// An empty key rejects every request, so leaving the key unconfigured
// disables the admin surface.
func Routes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.APIKeyAuth(apiKey, logger))

	r.Get("/contacts", h.ListContacts)
	r.Patch("/contacts/{id}/status", h.UpdateContactStatus)
	r.Get("/subscribers", h.ListSubscribers)

	return r
}
