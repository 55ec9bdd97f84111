package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/auth/user", env.token("alice", "Alice"), nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeResponse[models.User](t, rec); got.ID != "alice" || got.DisplayName() != "Alice" {
		t.Errorf("user = %+v", got)
	}

	// a later session with a new name refreshes the stored profile
	rec = env.do(http.MethodGet, "/api/auth/user", env.token("alice", "Alicia"), nil)
	if got := decodeResponse[models.User](t, rec); got.DisplayName() != "Alicia" {
		t.Errorf("profile not refreshed: %+v", got)
	}

	expectStatus(t, env.do(http.MethodGet, "/api/auth/user", "", nil), http.StatusUnauthorized)
}

func TestSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: env.token("carol", "Carol")})
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	expectStatus(t, rec, http.StatusOK)
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthz", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeResponse[healthResponse](t, rec); got.Status != "ok" || got.Database != "ok" {
		t.Errorf("health = %+v", got)
	}

	env.do(http.MethodGet, "/api/categories", "", nil)
	rec = env.do(http.MethodGet, "/metrics", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "portfolio_http_requests_total") {
		t.Error("request counter missing from /metrics")
	}
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("https://portfolio.example")
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://portfolio.example" {
		t.Errorf("allowed origin headers = %v", rec.Header())
	}

	rec = preflight("https://evil.example")
	expectStatus(t, rec, http.StatusForbidden)
}

func TestPanicRecovery(t *testing.T) {
	handler := LogInternalServerErrors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	expectStatus(t, rec, http.StatusInternalServerError)
}

func TestUnknownErrorsAreGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder(nopLogger()).WriteError(rec, errString("db exploded"))
	expectStatus(t, rec, http.StatusInternalServerError)
	if strings.Contains(rec.Body.String(), "exploded") {
		t.Errorf("internal error leaked: %s", rec.Body.String())
	}
}

func TestStoreFailureIsGeneric(t *testing.T) {
	env := newTestEnv(t)
	env.exec("DROP TABLE comments")

	rec := env.do(http.MethodGet, "/api/projects/00000000-0000-4000-8000-000000000000/comments", "", nil)
	expectStatus(t, rec, http.StatusInternalServerError)
	body := rec.Body.String()
	for _, leak := range []string{"no such table", "comments ->", `"cause"`} {
		if strings.Contains(body, leak) {
			t.Errorf("response exposes %q: %s", leak, body)
		}
	}
}

func TestClientErrorsKeepCause(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder(nopLogger()).WriteError(rec, errs.NewDatabaseError("create", "like", gorm.ErrForeignKeyViolated))
	expectStatus(t, rec, http.StatusBadRequest)
	if got := decodeResponse[ErrorResponse](t, rec); got.Cause == "" {
		t.Errorf("cause missing from 400 response: %+v", got)
	}
}
