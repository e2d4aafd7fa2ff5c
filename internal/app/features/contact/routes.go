package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router for contact form submission.
// Mount at /api/contact. The caller applies the stricter contact rate
// limit when mounting.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Submit)
	return r
}
