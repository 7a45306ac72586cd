package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"alumni-trace-backend/internal/logger"
	"alumni-trace-backend/internal/security"
)

type contextKey string

const registrarClaimsKey contextKey = "registrarClaims"

// RequireRegistrar rejects requests that do not carry a valid registrar
// session token in the Authorization header.
func RequireRegistrar(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Missing or malformed authorization header"})
				return
			}
			claims, err := tokens.ValidateSessionToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid or expired session"})
				return
			}
			ctx := context.WithValue(r.Context(), registrarClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RegistrarName returns the display name from the session claims, if any.
func RegistrarName(ctx context.Context) string {
	if claims, ok := ctx.Value(registrarClaimsKey).(*security.RegistrarClaims); ok {
		return claims.Name
	}
	return ""
}

// RequestLogging logs method, path, status and latency for every request.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
