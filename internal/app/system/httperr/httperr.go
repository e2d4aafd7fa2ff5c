// Package httperr converts handler panics into JSON error responses.
package httperr

import (
	"net/http"
	"runtime/debug"

	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Recoverer returns middleware that catches panics, logs them, and
// responds with a JSON 500. When dev is true the response includes the
// stack trace; production responses carry only a generic message.
func Recoverer(logger *zap.Logger, dev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// The connection is gone; re-panic so net/http aborts it.
					panic(rec)
				}

				stack := debug.Stack()
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.ByteString("stack", stack),
				)

				body := map[string]any{"message": "Something went wrong!"}
				if dev {
					body["stack"] = string(stack)
				}
				jsonutil.JSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
