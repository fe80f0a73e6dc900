package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier mirrors auth.TokenService.Verify without importing it,
// keeping the middleware testable with a stub.
type TokenVerifier interface {
	Verify(tokenString string) (jwt.MapClaims, error)
}

// contextKey avoids collisions with other packages' context values.
type contextKey string

const emailKey contextKey = "userEmail"

// Auth rejects requests without a verifiable bearer token before the handler
// runs. On success the token's email claim is placed in the request context.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w)
				return
			}

			// "Bearer <token>" — token is the second whitespace-separated field.
			parts := strings.Fields(header)
			if len(parts) != 2 {
				unauthorized(w)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				unauthorized(w)
				return
			}

			email, _ := claims["email"].(string)
			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

// WithEmail stores the authenticated email in the context. Exported for tests
// that exercise handlers without the middleware.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmail returns the authenticated email, or "" when the request did not
// pass through Auth.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
