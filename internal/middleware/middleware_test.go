package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinica-api/internal/platform/logger"
	"clinica-api/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
}

func (f fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, auth.ErrTokenInvalid
	}
	return f.claims, f.err
}

func protected(t *testing.T, v auth.AuthVerifier) http.Handler {
	t.Helper()
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			t.Fatalf("expected claims inside RequireAuth")
		}
		_, _ = w.Write([]byte(c.Email))
	})
	return AuthContext(v)(RequireAuth(final))
}

func TestRequireAuth(t *testing.T) {
	v := fakeVerifier{claims: auth.Claims{UserID: 1, Email: "a@b.com"}}

	cases := []struct {
		name       string
		header     string
		verifier   auth.AuthVerifier
		wantStatus int
		wantAuth   string
		wantBody   string
	}{
		{name: "no header", verifier: v, wantStatus: http.StatusUnauthorized, wantAuth: "Bearer", wantBody: "Se requiere autenticación."},
		{name: "not bearer", header: "Basic abc", verifier: v, wantStatus: http.StatusUnauthorized, wantAuth: "Bearer"},
		{name: "invalid", header: "Bearer bad", verifier: v, wantStatus: http.StatusUnauthorized, wantAuth: `Bearer error="invalid_token"`, wantBody: "Token inválido."},
		{
			name:       "expired",
			header:     "Bearer good",
			verifier:   fakeVerifier{err: auth.ErrTokenExpired},
			wantStatus: http.StatusUnauthorized,
			wantAuth:   `Bearer error="invalid_token", error_description="token expired"`,
			wantBody:   "La sesión ha expirado.",
		},
		{name: "ok", header: "bearer good", verifier: v, wantStatus: http.StatusOK, wantBody: "a@b.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			protected(t, tc.verifier).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status=%d want %d body=%s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if got := rec.Header().Get("WWW-Authenticate"); got != tc.wantAuth {
				t.Fatalf("WWW-Authenticate=%q want %q", got, tc.wantAuth)
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("body=%q should contain %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestRecover_WritesJSON500(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message"`) {
		t.Fatalf("expected JSON message, got %s", rec.Body.String())
	}
}

func TestRequestLogger_LogsWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := logger.FromZap(zap.New(core))

	h := chimw.RequestID(RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside", nil)
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	for _, e := range entries {
		if _, ok := e.ContextMap()["request_id"]; !ok {
			t.Fatalf("entry %q without request_id", e.Message)
		}
	}

	last := entries[1]
	if last.Level != zapcore.WarnLevel {
		t.Fatalf("expected warn for 4xx, got %v", last.Level)
	}
	if got := last.ContextMap()["status"]; got != int64(http.StatusTeapot) {
		t.Fatalf("status field=%v (%T)", got, got)
	}
	if got := last.ContextMap()["path"]; got != "/ping" {
		t.Fatalf("path field=%v", got)
	}
}
