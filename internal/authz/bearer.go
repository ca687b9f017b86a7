package authz

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"storefront-api/internal/observability/metrics"
	obsmw "storefront-api/internal/observability/middleware"
	"storefront-api/internal/service"
)

// TokenVerifier is the slice of the token service the guard needs.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Guard admits a request only when it carries a verifiable bearer token.
// Every failure mode collapses to the same 401 body; clients learn nothing
// about why verification failed.
type Guard struct {
	tokens TokenVerifier
}

func NewGuard(tokens TokenVerifier) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := "success"
		defer func() {
			metrics.AuthenticationAttemptsTotal.WithLabelValues(result).Inc()
		}()
		reqID := obsmw.RequestIDFromContext(r.Context())

		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			result = "failure"
			slog.Warn("guard missing bearer token", "request_id", reqID)
			unauthorized(w)
			return
		}
		tokStr := strings.TrimSpace(raw[len("Bearer "):])

		claims, err := g.tokens.Verify(tokStr)
		if err != nil {
			result = "failure"
			slog.Warn("guard rejected token", "error", err, "request_id", reqID)
			unauthorized(w)
			return
		}

		ctx := withClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type claimsKey struct{}

func withClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom returns the verified claims of the acting identity, if the
// request passed the guard.
func ClaimsFrom(ctx context.Context) (*service.Claims, bool) {
	v, ok := ctx.Value(claimsKey{}).(*service.Claims)
	return v, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
