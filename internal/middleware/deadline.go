package middleware

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"seothon.dev/web/internal/observability"
)

// WriteDeadline bounds how long a route may take to write its response. The server
// runs without a global write timeout so long-lived streams stay open; buffered routes
// opt in here instead.
func WriteDeadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := http.NewResponseController(w)
			if err := rc.SetWriteDeadline(time.Now().Add(d)); err != nil && !errors.Is(err, http.ErrNotSupported) {
				observability.FromContext(r.Context()).Debug("set write deadline", zap.Error(err))
			}
			next.ServeHTTP(w, r)
		})
	}
}
