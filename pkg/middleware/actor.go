package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ActorHeader carries the identity of the operator making the request. It is set by the
// authenticating proxy in front of the API.
const ActorHeader = "X-Actor-ID"

// DefaultActor is recorded when neither the header nor a configured default is available.
const DefaultActor = "system"

type actorKey struct{}

// Actor stores the acting identity in the request context, falling back to defaultActor.
func Actor(defaultActor string) func(next http.Handler) http.Handler {
	if defaultActor == "" {
		defaultActor = DefaultActor
	}
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			actor := strings.TrimSpace(r.Header.Get(ActorHeader))
			if actor == "" {
				actor = defaultActor
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(fn)
	}
}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the acting identity, or DefaultActor if none was stored.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}
