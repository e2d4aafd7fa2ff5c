// Package apicors provides CORS middleware for the JSON API.
//
// The public API is consumed by the marketing site's browser frontend from a
// known origin, so the default middleware pins Access-Control-Allow-Origin to
// the configured frontend origin rather than "*". Admin endpoints authenticate
// with a Bearer API key, which is not cookie-based, so no credentials are
// allowed in either mode.
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware that allows the given origins.
//
// This middleware:
//   - Echoes the request origin when it is in the allow list
//   - Allows common API methods and headers
//   - Handles preflight OPTIONS requests
//
// Usage in routes.go:
//
//	r.Group(func(r chi.Router) {
//	    r.Use(apicors.Middleware(appCfg.CORSOrigin))
//	    r.Mount("/api", apiRoutes)
//	})
func Middleware(allowedOrigins ...string) func(http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	allowAny := false
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAny = true
		}
		originSet[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowAny {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				// The response varies by the request origin even when
				// the origin is rejected.
				w.Header().Set("Vary", "Origin")
				if _, allowed := originSet[origin]; allowed && origin != "" {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
				// If origin not allowed, don't set the allow header (browser will block)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
