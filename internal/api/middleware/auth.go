// Package middleware carries the API-specific middleware. Auth resolves the
// bearer token to a guest session and stashes it on the request context.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tgrante/dicegame-go/internal/api/response"
	"github.com/tgrante/dicegame-go/internal/services/auth"
)

type contextKey string

const sessionKey contextKey = "auth-session"

// Auth requires a valid guest token on every request it wraps
func Auth(authService auth.ServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				response.Error(w, auth.ErrInvalidToken)
				return
			}

			session, err := authService.ValidateSession(r.Context(), token)
			if err != nil {
				response.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the Authorization bearer header, falling back to a
// query parameter for EventSource clients that cannot set headers
func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// MustGetSession returns the authenticated session from the context. Panics
// when called outside the Auth middleware, which is a programming error.
func MustGetSession(ctx context.Context) *auth.Session {
	session, ok := ctx.Value(sessionKey).(*auth.Session)
	if !ok {
		panic("no auth session on context")
	}
	return session
}
