package auth

import (
	"context"
	"net/http"

	"github.com/vst-mis/vst-mis/internal/platform/httpx"
)

type contextKey struct{}

var claimsKey contextKey

// ClaimsFromContext returns the claims attached by RequireAuth.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// token's claims to the request context.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			httpx.Error(w, http.StatusUnauthorized, "Access token required")
			return
		}
		claims, err := s.Resolve(r.Context(), token)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
