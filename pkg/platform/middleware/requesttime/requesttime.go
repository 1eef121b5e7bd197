// Package requesttime provides middleware for request-scoped time.
// Every stamp written while handling one request uses the same instant, so a
// batch create yields records whose CreatedAt values are identical.
package requesttime

import (
	"net/http"
	"time"

	"wardregistry/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
