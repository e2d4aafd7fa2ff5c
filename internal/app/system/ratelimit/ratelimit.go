// internal/app/system/ratelimit/ratelimit.go
//
// Package ratelimit provides HTTP middleware around the rate limit
// store. Each middleware instance enforces one policy (scope, budget,
// window); routes can stack a broad limiter with a stricter one.
package ratelimit

import (
	"net/http"

	ratelimitstore "github.com/optimalsolutions/siteapi/internal/app/store/ratelimit"
	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
	"github.com/optimalsolutions/siteapi/internal/app/system/network"
	"go.uber.org/zap"
)

// Middleware returns HTTP middleware that counts requests per client IP
// against the store's policy. Requests over budget get a 429 with a
// Retry-After header. Store errors fail open: blocking all traffic on a
// database hiccup is worse than briefly not limiting it.
func Middleware(store *ratelimitstore.Store, message string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := network.GetClientIP(r)

			result, err := store.Check(r.Context(), clientIP)
			if err != nil {
				logger.Warn("rate limit check failed, allowing request",
					zap.String("client_ip", clientIP),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !result.Allowed {
				logger.Info("rate limit exceeded",
					zap.String("client_ip", clientIP),
				)
				jsonutil.TooManyRequests(w, message, int(result.RetryAfter.Seconds()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
