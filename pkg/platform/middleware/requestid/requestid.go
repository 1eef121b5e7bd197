// Package requestid tags every request with an id for log correlation.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"wardregistry/pkg/requestcontext"
)

// Header is echoed back on the response and honoured when the caller sets it.
const Header = "X-Request-ID"

// Middleware reuses an incoming X-Request-ID or mints a new one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
