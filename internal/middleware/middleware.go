package middleware

import (
	"context"
	"net/http"
	"strings"

	"healthassist/internal/store"
	"healthassist/internal/utils"
)

type contextKey string

// UsernameKey carries the authenticated username through the request
// context.
const UsernameKey contextKey = "username"

// JWTAuthMiddleware validates the bearer token and ensures its session
// is still active. It returns a generic error message ("Unauthorized
// access") for any token-related error.
func JWTAuthMiddleware(sessions store.SessionStore) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized access", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Unauthorized access", http.StatusUnauthorized)
				return
			}

			username, err := utils.ParseToken(parts[1])
			if err != nil {
				http.Error(w, "Unauthorized access", http.StatusUnauthorized)
				return
			}

			// A valid token alone is not enough: sign-out must
			// invalidate the session server-side.
			if !sessions.Active(username) {
				http.Error(w, "Unauthorized access", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
