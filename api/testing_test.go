package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rpupo63/portfolio-site-backend/auth"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	t        *testing.T
	dsn      string
	db       database.Database
	handler  http.Handler
	verifier *auth.JWTVerifier
}

// newTestEnv serves the router over a fresh in-memory store. opts may replace
// dependencies before the router is built.
func newTestEnv(t *testing.T, opts ...func(*Dependencies)) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared&_foreign_keys=1", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db := database.New(gdb)
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	verifier, err := auth.NewJWTVerifier("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	cfg := map[string]string{
		"PUBLIC_BASE_URL":  "https://portfolio.example",
		"ACCEPTED_ORIGINS": "https://portfolio.example",
	}
	deps := Dependencies{Database: db, Verifier: verifier}
	for _, opt := range opts {
		opt(&deps)
	}
	handler := newRouter(deps, withConfig(cfg))

	return &testEnv{t: t, dsn: dsn, db: db, handler: handler, verifier: verifier}
}

// token mints a session for userID; an empty firstName leaves the claim out.
func (e *testEnv) token(userID, firstName string) string {
	e.t.Helper()
	id := auth.Identity{UserID: userID}
	if firstName != "" {
		id.FirstName = &firstName
	}
	tok, err := e.verifier.Issue(id)
	if err != nil {
		e.t.Fatalf("issue token: %v", err)
	}
	return tok
}

// do sends a request. body may be nil, a string of raw JSON, or a value to marshal.
func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			e.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, rec.Body.String())
	}
	return out
}

type errString string

func (e errString) Error() string { return string(e) }

func nopLogger() zerolog.Logger { return zerolog.Nop() }

// exec runs statements on a second connection to the shared in-memory store.
func (e *testEnv) exec(statement string) {
	e.t.Helper()
	gdb, err := gorm.Open(sqlite.Open(e.dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		e.t.Fatalf("open second connection: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		e.t.Fatal(err)
	}
	defer sqlDB.Close()
	if err := gdb.Exec(statement).Error; err != nil {
		e.t.Fatalf("exec %q: %v", statement, err)
	}
}
