package testutil

import (
	"net/http"
	"time"

	"wardregistry/pkg/requestcontext"
)

// WithActor attributes the request to actor, as the actor middleware would.
func WithActor(req *http.Request, actor string) *http.Request {
	return req.WithContext(requestcontext.WithActor(req.Context(), actor))
}

// AtTime pins the request clock so created and updated stamps are predictable.
func AtTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
