// Package actor resolves the acting user for CreatedBy and UpdatedBy stamps.
//
// The registry has no authentication; the caller names itself in the X-Actor
// header and requests without one fall back to a configured default.
package actor

import (
	"net/http"
	"strings"

	"wardregistry/pkg/requestcontext"
)

// Header carries the acting user's display name.
const Header = "X-Actor"

// Middleware stores the actor in the request context.
func Middleware(defaultActor string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := strings.TrimSpace(r.Header.Get(Header))
			if name == "" {
				name = defaultActor
			}
			ctx := requestcontext.WithActor(r.Context(), name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
