package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/rogerio-castellano/shop-backoffice/internal/auth"
	"github.com/rogerio-castellano/shop-backoffice/internal/http/middleware"
	rl "github.com/rogerio-castellano/shop-backoffice/internal/http/rate_limiter"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

func setupUsers(t *testing.T) {
	t.Helper()
	auth.Configure("middleware-secret", time.Hour)
	users := repo.NewInMemoryUserRepository()
	for _, u := range []models.User{
		{ID: "admin", Name: "Admin", Email: "admin@shop.test", Role: models.RoleAdmin},
		{ID: "buyer", Name: "Buyer", Email: "buyer@shop.test", Role: models.RoleUser},
	} {
		if _, err := users.Create(context.Background(), u); err != nil {
			t.Fatal(err)
		}
	}
	middleware.SetUserRepo(users)
}

func bearer(t *testing.T, id, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(models.User{ID: id, Role: role})
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

func TestAdminOnly(t *testing.T) {
	setupUsers(t)

	var seen models.User
	h := middleware.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = middleware.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"unknown user", bearer(t, "ghost", models.RoleAdmin), http.StatusUnauthorized},
		{"customer", bearer(t, "buyer", models.RoleUser), http.StatusForbidden},
		{"admin", bearer(t, "admin", models.RoleAdmin), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus >= 400 {
				var body map[string]any
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("error body is not JSON: %v", err)
				}
				if body["success"] != false {
					t.Errorf("expected success=false, got %v", body["success"])
				}
			}
		})
	}
	if seen.ID != "admin" {
		t.Errorf("expected admin user in context, got %q", seen.ID)
	}
}

func TestAdminOnly_RoleComesFromStoreNotToken(t *testing.T) {
	setupUsers(t)
	h := middleware.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer(t, "buyer", models.RoleAdmin))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestRateLimit(t *testing.T) {
	h := middleware.RateLimit(rl.New(1, 1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := []int{}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetOutput(&bytes.Buffer{})
	h := middleware.RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/product/latest", nil))

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != logrus.InfoLevel || entry.Data["status"] != http.StatusTeapot || entry.Data["path"] != "/api/v1/product/latest" {
		t.Errorf("unexpected entry: %v %v", entry.Level, entry.Data)
	}
}
