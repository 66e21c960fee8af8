package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/model"
	pkgLog "calendar-assistant/pkg/log"
	"calendar-assistant/pkg/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	mgr, err := session.NewManager("test-secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func signedToken(t *testing.T, mgr *session.Manager) string {
	t.Helper()
	token, err := mgr.Sign(session.Claims{
		UserID:      "u1",
		Email:       "u1@example.com",
		AccessToken: "google-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return token
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := newSessions(t)
	mw := middleware.New(&mockLogger{}, sessions, 600)

	var gotScope model.Scope
	var hadScope bool

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		gotScope, hadScope = middleware.ScopeFromContext(c)
		c.Status(http.StatusOK)
	})

	t.Run("Missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("Malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abcdef")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("Tampered token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, sessions)+"x")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("Valid token", func(t *testing.T) {
		hadScope = false
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, sessions))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !hadScope {
			t.Fatalf("scope not attached to request")
		}
		if gotScope.UserID != "u1" || gotScope.GoogleAccessToken != "google-token" {
			t.Errorf("unexpected scope: %+v", gotScope)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 60/min gives a burst of 6; the seventh immediate request must fail.
	mw := middleware.New(&mockLogger{}, newSessions(t), 60)

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var last int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("burst not throttled, last status = %d", last)
	}

	// A different source has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("independent source throttled, status = %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, newSessions(t), 600)

	var ctxID string
	r := gin.New()
	r.GET("/ping", mw.RequestID(), func(c *gin.Context) {
		ctxID, _ = c.Request.Context().Value(pkgLog.RequestIDKey).(string)
		c.Status(http.StatusOK)
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if got := w.Header().Get("X-Request-ID"); got == "" {
			t.Errorf("response missing request id header")
		}
		if ctxID == "" {
			t.Errorf("request id not placed in context")
		}
	})

	t.Run("Caller supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "trace-42")
		r.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got != "trace-42" {
			t.Errorf("request id = %q, want trace-42", got)
		}
		if ctxID != "trace-42" {
			t.Errorf("context id = %q, want trace-42", ctxID)
		}
	})
}
