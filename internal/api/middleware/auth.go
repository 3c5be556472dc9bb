package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/edvin/catalog/internal/api/response"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller taken from the bearer token.
type Identity struct {
	ID string
}

// Auth returns middleware that validates HS256 bearer tokens signed with
// secret. The "sub" claim, or "id" when sub is absent, becomes the Identity.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				response.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			token := extractBearer(r)
			if token == "" {
				response.WriteError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			identity, err := parseToken(token, secret)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func parseToken(raw string, secret []byte) (*Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	for _, key := range []string{"sub", "id"} {
		if id, ok := claims[key].(string); ok && id != "" {
			return &Identity{ID: id}, nil
		}
	}
	return nil, fmt.Errorf("token has no subject")
}

// extractBearer returns the token from an "Authorization: Bearer <token>"
// header, or "" when the header has another shape.
func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the authenticated caller, or nil on unauthenticated routes.
func GetIdentity(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}
