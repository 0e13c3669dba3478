package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/shop-backoffice/internal/auth"
	rl "github.com/rogerio-castellano/shop-backoffice/internal/http/rate_limiter"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

type contextKey string

const userKey = contextKey("user")

var userRepo repo.UserRepository

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

// AdminOnly lets a request through only when its bearer token names an
// existing user with the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "You need to login first")
			return
		}

		user, err := userRepo.GetByID(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, "The user ID doesn't match")
				return
			}
			writeError(w, http.StatusInternalServerError, "could not verify user")
			return
		}
		if user.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "You don't have an admin role")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the user admitted by AdminOnly.
func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}

// RequestLogger writes one entry per request.
func RequestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			entry := log.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			})
			if status >= http.StatusInternalServerError {
				entry.Error("request failed")
				return
			}
			entry.Info("request handled")
		})
	}
}

// RateLimit rejects visitors that exhaust their token bucket.
func RateLimit(limiter *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.Allow(ip) {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
