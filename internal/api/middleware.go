package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bledarhoxha/prona/internal/auth"
	"github.com/bledarhoxha/prona/internal/store"
)

type contextKey string

const identityKey contextKey = "identity"
const claimsKey contextKey = "claims"

// IdentityMiddleware resolves the caller's identity from the Authorization
// header. Requests without a valid bearer token proceed as anonymous; the
// catalog itself decides what anonymous callers may do, so reads stay
// public and mutations fail with a normal unauthorized result.
func IdentityMiddleware(secret string, db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.Anonymous()

			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenStr := strings.TrimPrefix(header, "Bearer ")
				claims, err := auth.ValidateToken(secret, tokenStr)
				if err == nil && claims.ID != "" {
					revoked, rerr := store.IsTokenRevoked(r.Context(), db, claims.ID)
					if rerr != nil {
						slog.Error("checking token revocation", "error", rerr)
						jsonError(w, http.StatusInternalServerError, "internal error")
						return
					}
					if !revoked {
						identity = auth.FromClaims(claims)
						ctx := context.WithValue(r.Context(), claimsKey, claims)
						r = r.WithContext(ctx)
					}
				}
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the caller's identity from the context.
func GetIdentity(ctx context.Context) auth.Identity {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	if !ok {
		return auth.Anonymous()
	}
	return identity
}

// GetClaims retrieves the validated JWT claims from the context, if any.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs HTTP requests with method, path, status, and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}
