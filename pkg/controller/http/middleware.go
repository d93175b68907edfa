package http

import (
	"context"
	"net/http"

	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
)

// ActorHeader carries the caller's user ID. There is no session
// management here; identity is asserted by the upstream proxy.
const ActorHeader = "X-Actor-ID"

type ctxActorKey struct{}

// requireActor rejects requests lacking an actor header and stores the
// actor ID in the request context for the handlers.
func requireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(ActorHeader)
		if actor == "" {
			http.Error(w, "Actor identity required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ctxActorKey{}, types.UserID(actor))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFrom(ctx context.Context) types.UserID {
	actor, _ := ctx.Value(ctxActorKey{}).(types.UserID)
	return actor
}
