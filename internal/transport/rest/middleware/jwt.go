package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"myflix/internal/domain"
)

// TokenVerifier is the slice of the auth service the gate needs.
type TokenVerifier interface {
	Authorize(tokenString string) (*domain.AuthClaims, error)
}

type contextKey string

const usernameKey contextKey = "auth.username"

// JWT gates protected routes behind a bearer token. The handler never runs on
// rejection; on success the verified subject is placed in the request context.
func JWT(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.Authorize(bearerToken(r))
			if err != nil {
				unauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the subject resolved by the JWT middleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "unauthenticated: " + err.Error(),
	})
}
