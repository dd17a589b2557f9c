package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Auth validates the bearer tokens the identity provider issues and exposes
// the role claim to handlers. Token issuance is not this service's business;
// it only verifies the HS256 signature and expiry.
type Auth struct {
	secret []byte
	apiKey string
}

func NewAuth(secret []byte, apiKey string) *Auth {
	return &Auth{secret: secret, apiKey: apiKey}
}

type contextKey string

const roleContextKey = contextKey("role")

// Role returns the authenticated role from a request context, empty when the
// request never passed the middleware.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleContextKey).(string)
	return role
}

// Middleware rejects requests without a valid bearer token. Service-to-service
// callers may use the configured API key instead and act with the "api" role.
func (a *Auth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.apiKey != "" && r.Header.Get("X-Api-Key") == a.apiKey {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), roleContextKey, "api")))
			return
		}

		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		role := "viewer"
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if r, ok := claims["role"].(string); ok && r != "" {
				role = r
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), roleContextKey, role)))
	}
}
