package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/auth"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
)

// ContextKey is a private key type for request-context values.
type ContextKey string

// UserEmailCtxKey holds the email decoded from a verified credential.
const UserEmailCtxKey = ContextKey("user_email")

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			log.Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	var token string
	fmt.Sscanf(authHeader, "Bearer %s", &token)
	return token
}

// RequireCredential fully verifies the bearer credential: 401 when the
// header is absent, 403 when the token does not verify. The decoded email
// lands in the request context under UserEmailCtxKey.
func RequireCredential(tokens *auth.JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				respondMessage(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			email, err := tokens.Verify(bearerToken(r))
			if err != nil {
				respondMessage(w, http.StatusForbidden, "forbidden access")
				return
			}

			ctx := context.WithValue(r.Context(), UserEmailCtxKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireBearerHeader only checks that an Authorization header is present;
// the token itself is not verified. This mirrors the long-standing gap on
// the seller products route, where clients send a bearer token that the
// server never inspects.
func RequireBearerHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			respondMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		next.ServeHTTP(w, r)
	})
}
