package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router for newsletter subscription management.
// Mount at /api/newsletter.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Subscribe)
	r.Post("/unsubscribe", h.Unsubscribe)
	r.Get("/unsubscribe", h.UnsubscribeLink)
	return r
}
