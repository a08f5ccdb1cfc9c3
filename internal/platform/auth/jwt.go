package auth

import (
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/example/expert-platform/internal/platform/api"
	"github.com/example/expert-platform/internal/platform/httpserver"
)

const codeUnauthorized = "UNAUTHORIZED"

type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type JWTVerifier struct {
	Secret []byte
}

func (v JWTVerifier) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireUser validates the Bearer token and injects the Principal (subject + role claim)
// into the request context. It is the upstream half of the admin gate: Gate trusts
// whatever this middleware stored.
func RequireUser(verifier JWTVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := httpserver.RequestIDFromContext(r.Context())
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if authz == "" {
				api.Unauthorized(w, codeUnauthorized, "missing bearer token", rid)
				return
			}
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				api.Unauthorized(w, codeUnauthorized, "invalid authorization header", rid)
				return
			}
			claims, err := verifier.Parse(strings.TrimSpace(parts[1]))
			if err != nil || strings.TrimSpace(claims.Subject) == "" {
				api.Unauthorized(w, codeUnauthorized, "invalid token", rid)
				return
			}
			p := Principal{UserID: claims.Subject, Role: strings.TrimSpace(claims.Role)}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}
