package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/config"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath:    "/Dijkstra/v1",
		MaxBodyBytes:   1 << 20,
		RateRPS:        1000,
		RateBurst:      1000,
		IdempotencyTTL: time.Hour,
		OTEL:           config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), cfg)
	return r
}

func do(r *gin.Engine, method, target, body string, hdr ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expectEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, code apperr.Code) apperr.Envelope {
	t.Helper()
	var env apperr.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if w.Code != status || env.Status != status || env.Code != code {
		t.Fatalf("want %d %s, got %d %+v", status, code, w.Code, env)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID on error response")
	}
	return env
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	return v
}

func TestRegisterRoutes_Health_Metrics_Fallbacks(t *testing.T) {
	r := newTestRouter(t, testConfig())

	if w := do(r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}

	w := do(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("GET /metrics bad: code=%d", w.Code)
	}

	env := expectEnvelope(t, do(r, http.MethodGet, "/nope", ""), http.StatusNotFound, apperr.CodeRouteNotFound)
	if env.Detail != "No route matches GET /nope." {
		t.Fatalf("unexpected detail: %q", env.Detail)
	}
	expectEnvelope(t, do(r, http.MethodPost, "/health", ""), http.StatusMethodNotAllowed, apperr.CodeMethodNotAllowed)
	expectEnvelope(t, do(r, http.MethodPatch, "/Dijkstra/v1/user/"+uuid.NewString(), ""), http.StatusMethodNotAllowed, apperr.CodeMethodNotAllowed)

	if !strings.Contains(do(r, http.MethodGet, "/metrics", "").Body.String(), `api_errors_total{code="GEN-ROUTE-NF-A01",status="404"}`) {
		t.Fatalf("route fallback not counted")
	}
}

func TestRegisterRoutes_CORS(t *testing.T) {
	r := newTestRouter(t, testConfig())
	w := do(r, http.MethodGet, "/health", "", "Origin", "http://anywhere.test")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-all expected '*', got %q", got)
	}

	cfg := testConfig()
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	r = newTestRouter(t, cfg)

	w = do(r, http.MethodGet, "/health", "", "Origin", "http://localhost:3000")
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" ||
		w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("allowlisted origin not echoed: %v", w.Header())
	}
	w = do(r, http.MethodGet, "/health", "", "Origin", "http://evil.test")
	if w.Code != http.StatusForbidden || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("foreign origin: %d %v", w.Code, w.Header())
	}
}

func TestRegisterRoutes_BodyLimit_RateLimit_Gzip(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 32
	cfg.RateRPS = 0.001
	cfg.RateBurst = 2
	r := newTestRouter(t, cfg)

	big := `{"github_user_name":"` + strings.Repeat("a", 64) + `"}`
	expectEnvelope(t, do(r, http.MethodPost, "/Dijkstra/v1/user/create", big), http.StatusRequestEntityTooLarge, apperr.CodeBodyTooLarge)

	w := do(r, http.MethodGet, "/health", "", "Accept-Encoding", "gzip")
	if w.Code != http.StatusOK || w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response: %d %v", w.Code, w.Header())
	}

	do(r, http.MethodGet, "/health", "")
	w = do(r, http.MethodGet, "/health", "")
	expectEnvelope(t, w, http.StatusTooManyRequests, apperr.CodeRateLimited)
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}

	// writes draw from a separate bucket
	if w := do(r, http.MethodPost, "/Dijkstra/v1/user/create", "{}"); w.Code == http.StatusTooManyRequests {
		t.Fatalf("write limited by exhausted read bucket")
	}
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	cfg := testConfig()
	if w := do(newTestRouter(t, cfg), http.MethodGet, "/swagger/doc.json", ""); w.Code != http.StatusNotFound {
		t.Fatalf("swagger should be off by default, got %d", w.Code)
	}

	cfg.SwaggerEnabled = true
	w := do(newTestRouter(t, cfg), http.MethodGet, "/swagger/doc.json", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"/document/create"`) {
		t.Fatalf("swagger doc: %d", w.Code)
	}
	if w.Header().Get("Content-Security-Policy") != "" || w.Header().Get("X-Frame-Options") != "SAMEORIGIN" {
		t.Fatalf("docs served with API framing rules: %v", w.Header())
	}
	if w := do(newTestRouter(t, cfg), http.MethodGet, "/health", ""); w.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("API response missing CSP")
	}
}

func TestRegisterRoutes_CareerFlow(t *testing.T) {
	r := newTestRouter(t, testConfig())
	const base = "/Dijkstra/v1"

	// Users
	w := do(r, http.MethodPost, base+"/user/create", `{"github_user_name":"edsger","primary_specialization":"BACKEND","rank":" gold "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create user: %d %s", w.Code, w.Body.String())
	}
	user := decode[domain.User](t, w)
	if user.Rank != "GOLD" {
		t.Fatalf("rank not normalized: %q", user.Rank)
	}
	expectEnvelope(t, do(r, http.MethodPost, base+"/user/create", `{"github_user_name":"edsger","primary_specialization":"BACKEND"}`),
		http.StatusConflict, "USER-GITHUB-AE-A01")
	expectEnvelope(t, do(r, http.MethodGet, base+"/user/"+uuid.NewString(), ""), http.StatusNotFound, "USER-USER-NF-A01")
	env := expectEnvelope(t, do(r, http.MethodGet, base+"/user/not-a-uuid", ""), http.StatusUnprocessableEntity, apperr.CodeValidation)
	if env.Detail != "id: Must be a valid UUID" {
		t.Fatalf("unexpected detail: %q", env.Detail)
	}
	if w := do(r, http.MethodGet, base+"/user/github/edsger", ""); w.Code != http.StatusOK {
		t.Fatalf("get by github: %d", w.Code)
	}

	// Profile and links
	w = do(r, http.MethodPost, base+"/profile/create", `{"user_id":"`+user.ID+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create profile: %d %s", w.Code, w.Body.String())
	}
	profile := decode[domain.Profile](t, w)
	expectEnvelope(t, do(r, http.MethodPost, base+"/profile/create", `{"user_id":"`+user.ID+`"}`), http.StatusConflict, "USER-PROFILE-AE-A01")
	if w := do(r, http.MethodGet, base+"/profile/user/"+user.ID, ""); w.Code != http.StatusOK || decode[domain.Profile](t, w).ID != profile.ID {
		t.Fatalf("profile by user: %d", w.Code)
	}
	expectEnvelope(t, do(r, http.MethodGet, base+"/links/user/"+user.ID, ""), http.StatusNotFound, "USER-LINKS-NF-A01")
	w = do(r, http.MethodPost, base+"/links/create",
		`{"user_id":"`+user.ID+`","github_user_name":"edsger","linkedin_user_name":"ewd-li","leetcode_user_name":"ewd"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create links: %d %s", w.Code, w.Body.String())
	}

	// Documents with idempotent create
	const key = "doc-create-0001"
	w = do(r, http.MethodPost, base+"/document/create", `{"github_username":"edsger","document_name":"CV"}`, "Idempotency-Key", key)
	if w.Code != http.StatusCreated {
		t.Fatalf("create document: %d %s", w.Code, w.Body.String())
	}
	doc := decode[domain.Document](t, w)

	w = do(r, http.MethodPost, base+"/document/create", `{"github_username":"edsger","document_name":"CV"}`, "Idempotency-Key", key)
	if w.Code != http.StatusOK || w.Header().Get("Idempotency-Replayed") != "true" || decode[domain.Document](t, w).ID != doc.ID {
		t.Fatalf("replay: %d %v %s", w.Code, w.Header(), w.Body.String())
	}
	expectEnvelope(t, do(r, http.MethodPost, base+"/document/create", `{}`, "Idempotency-Key", "bad key!"), http.StatusBadRequest, apperr.CodeInvalidIdempotency)
	expectEnvelope(t, do(r, http.MethodPost, base+"/document/create", `{"github_username":"ghost"}`), http.StatusNotFound, "USER-GITHUB-NF-A01")
	env = expectEnvelope(t, do(r, http.MethodPost, base+"/document/create", `{"github_username":"  "}`), http.StatusUnprocessableEntity, apperr.CodeValidation)
	if env.Detail != "github_username: This field cannot be blank" {
		t.Fatalf("unexpected detail: %q", env.Detail)
	}

	w = do(r, http.MethodGet, base+"/document/user/edsger", "")
	etag := w.Header().Get("ETag")
	if w.Code != http.StatusOK || etag == "" || len(decode[map[string][]domain.Document](t, w)["documents"]) != 1 {
		t.Fatalf("list documents: %d %q %s", w.Code, etag, w.Body.String())
	}
	if w := do(r, http.MethodGet, base+"/document/user/edsger", "", "If-None-Match", etag); w.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", w.Code)
	}

	w = do(r, http.MethodPut, base+"/document/"+doc.ID, `{"latex":"\\section{Experience}"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	if got := decode[domain.Document](t, w); got.Latex == nil || *got.Latex != `\section{Experience}` || got.DocumentName == nil || *got.DocumentName != "CV" {
		t.Fatalf("partial update lost fields: %+v", got)
	}

	w = do(r, http.MethodDelete, base+"/document/"+doc.ID, "")
	if w.Code != http.StatusOK || decode[map[string]string](t, w)["message"] != "Document "+doc.ID+" deleted successfully." {
		t.Fatalf("delete document: %d %s", w.Code, w.Body.String())
	}
	expectEnvelope(t, do(r, http.MethodGet, base+"/document/"+doc.ID, ""), http.StatusNotFound, "USER-DOCUMENT-NF-A01")

	// Organizations and jobs
	w = do(r, http.MethodPost, base+"/organization/create", `{"name":"  dijkstra   guild "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create organization: %d %s", w.Code, w.Body.String())
	}
	org := decode[domain.Organization](t, w)
	if org.Name == nil || *org.Name != "Dijkstra Guild" {
		t.Fatalf("name not normalized: %v", org.Name)
	}

	env = expectEnvelope(t, do(r, http.MethodPost, base+"/job/create", `{"organization":"`+org.ID+`","technologies":["go","COBOL"]}`),
		http.StatusBadRequest, "OPPT-ORG-VAL-A01")
	if !strings.Contains(env.Detail, "COBOL") {
		t.Fatalf("unknown tool not reported: %q", env.Detail)
	}
	expectEnvelope(t, do(r, http.MethodPost, base+"/job/create", `{"organization":"`+uuid.NewString()+`"}`), http.StatusNotFound, "OPPT-ORG-NF-A01")

	w = do(r, http.MethodPost, base+"/job/create", `{"organization":"`+org.ID+`","title":"Backend Engineer","technologies":["go"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create job: %d %s", w.Code, w.Body.String())
	}
	job := decode[domain.Job](t, w)

	w = do(r, http.MethodGet, base+"/job/organization/"+org.ID+"?page=1&page_size=10", "")
	if w.Code != http.StatusOK || w.Header().Get("ETag") == "" {
		t.Fatalf("list jobs: %d %v", w.Code, w.Header())
	}
	if w := do(r, http.MethodDelete, base+"/job/"+job.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete job: %d", w.Code)
	}
	expectEnvelope(t, do(r, http.MethodDelete, base+"/job/"+job.ID, ""), http.StatusNotFound, "OPPT-JOB-NF-A01")

	// Deleting the user cascades to profile, links and documents.
	if w := do(r, http.MethodDelete, base+"/user/"+user.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete user: %d", w.Code)
	}
	expectEnvelope(t, do(r, http.MethodGet, base+"/profile/"+profile.ID, ""), http.StatusNotFound, "USER-PROFILE-NF-A01")
}

func Test_idempotencyScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		base, method, target, want string
	}{
		{"/Dijkstra/v1", http.MethodPost, "/Dijkstra/v1/document/create", "document.create"},
		{"/Dijkstra/v1", http.MethodGet, "/Dijkstra/v1/document/create", ""},
		{"/Dijkstra/v1", http.MethodPost, "/Dijkstra/v1/user/create", ""},
		{"/", http.MethodPost, "/document/create", "document.create"},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(tc.method, tc.target, nil)
		if got := idempotencyScope(tc.base)(c); got != tc.want {
			t.Fatalf("%s %s (base %q): got %q want %q", tc.method, tc.target, tc.base, got, tc.want)
		}
	}
}

func Test_idempotencyLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	if _, err := repo.CreateIdempotency(ctx, db, "document.create", "cv-1", "d-1", http.StatusCreated, time.Hour); err != nil {
		t.Fatalf("seed: %v", err)
	}
	lookup := idempotencyLookup(db)
	now := time.Now().UTC()

	if ok, err := lookup(ctx, "document.create", "cv-1", now); !ok || err != nil {
		t.Fatalf("hit = %v, %v", ok, err)
	}
	if ok, err := lookup(ctx, "document.create", "cv-2", now); ok || err != nil {
		t.Fatalf("miss = %v, %v", ok, err)
	}
	if ok, err := lookup(ctx, "document.create", "cv-1", now.Add(2*time.Hour)); ok || err != nil {
		t.Fatalf("expired = %v, %v", ok, err)
	}

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()
	if ok, err := lookup(ctx, "document.create", "cv-1", now); ok || err == nil {
		t.Fatalf("closed db = %v, %v", ok, err)
	}
}

func Test_corsConfig(t *testing.T) {
	open := corsConfig(nil)
	if !open.AllowAllOrigins || open.AllowCredentials {
		t.Fatalf("allow-all must not allow credentials: %+v", open)
	}
	strict := corsConfig([]string{"https://platform.dijkstra.org.in"})
	if strict.AllowAllOrigins || !strict.AllowCredentials || len(strict.AllowOrigins) != 1 {
		t.Fatalf("unexpected strict config: %+v", strict)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	groupWithPrefix(r, "/").GET("/a", func(c *gin.Context) { c.Status(http.StatusOK) })
	groupWithPrefix(r, "/v1").GET("/b", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, p := range []string{"/a", "/v1/b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", p, w.Code)
		}
	}
}
