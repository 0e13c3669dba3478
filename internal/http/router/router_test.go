package router_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	rl "github.com/rogerio-castellano/shop-backoffice/internal/http/rate_limiter"
	"github.com/rogerio-castellano/shop-backoffice/internal/http/router"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRateLimitIgnoresForwardedHeaders(t *testing.T) {
	r := router.NewRouter(router.Options{Limiter: rl.New(1, 1), Logger: quietLogger()})

	passed := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i+1))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			passed++
		case http.StatusTooManyRequests:
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}

	// One token of burst, plus at most one refilled while the loop runs.
	if passed > 2 {
		t.Errorf("expected spoofed headers to share one bucket, %d of 20 requests passed", passed)
	}
}

func TestRateLimitSeparatesPeers(t *testing.T) {
	r := router.NewRouter(router.Options{Limiter: rl.New(1, 1), Logger: quietLogger()})

	for _, peer := range []string{"203.0.113.7:40000", "203.0.113.8:40000"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = peer
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("expected first request from %s to pass, got %d", peer, w.Code)
		}
	}
}
