package auth

import (
	"context"
	"net/http"

	"github.com/knighthacks/blade/server/database"
)

type sessionContextKey struct{}

func SetSession(ctx context.Context, session database.SessionWithUser) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// GetSession returns the session attached by the auth middleware. It panics on
// requests that never passed through it.
func GetSession(r *http.Request) database.SessionWithUser {
	return r.Context().Value(sessionContextKey{}).(database.SessionWithUser)
}
