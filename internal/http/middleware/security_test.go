package middleware

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serveSecured(opt SecurityOptions, req *http.Request) http.Header {
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Header()
}

func TestSecurityHeaders_APIDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := serveSecured(SecurityOptions{DocsPrefix: "/swagger/"},
		httptest.NewRequest(http.MethodGet, "/Dijkstra/v1/job/j-1", nil))

	want := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"Referrer-Policy":         "no-referrer",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": apiCSP,
	}
	for k, v := range want {
		if h.Get(k) != v {
			t.Fatalf("%s = %q, want %q", k, h.Get(k), v)
		}
	}
	for _, k := range []string{"Permissions-Policy", "Cache-Control", "Pragma", "Strict-Transport-Security"} {
		if h.Get(k) != "" {
			t.Fatalf("unexpected %s: %q", k, h.Get(k))
		}
	}
}

func TestSecurityHeaders_DocsPages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := serveSecured(SecurityOptions{DocsPrefix: "/swagger/"},
		httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if h.Get("Content-Security-Policy") != "" || h.Get("X-Frame-Options") != "SAMEORIGIN" {
		t.Fatalf("docs headers = %#v", h)
	}
	if h.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("docs lost nosniff")
	}

	// without a docs prefix nothing is exempt
	h = serveSecured(SecurityOptions{}, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if h.Get("Content-Security-Policy") != apiCSP {
		t.Fatalf("CSP missing without DocsPrefix")
	}
}

func TestSecurityHeaders_PolicyNoStoreHSTS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	opt := SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour, NoStore: true, EnablePolicy: true}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	h := serveSecured(opt, req)
	if h.Get("Permissions-Policy") == "" || h.Get("X-Permitted-Cross-Domain-Policies") != "none" {
		t.Fatalf("policy headers = %#v", h)
	}
	if h.Get("Cache-Control") != "no-store" || h.Get("Pragma") != "no-cache" || h.Get("Expires") != "0" {
		t.Fatalf("cache headers = %#v", h)
	}
	if got := h.Get("Strict-Transport-Security"); got != "max-age=86400; includeSubDomains; preload" {
		t.Fatalf("HSTS = %q", got)
	}

	// plain HTTP never gets HSTS
	if got := serveSecured(opt, httptest.NewRequest(http.MethodGet, "/", nil)).Get("Strict-Transport-Security"); got != "" {
		t.Fatalf("HSTS over HTTP: %q", got)
	}

	// default max age is 180 days
	proxied := httptest.NewRequest(http.MethodGet, "/", nil)
	proxied.Header.Set("X-Forwarded-Proto", "HTTPS")
	if got := serveSecured(SecurityOptions{EnableHSTS: true}, proxied).Get("Strict-Transport-Security"); !strings.HasPrefix(got, "max-age=15552000;") {
		t.Fatalf("default HSTS = %q", got)
	}
}

func TestBodyLimit_DeclaredAndStreamedOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			Fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	// small body passes
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("tiny")))
	if w.Code != http.StatusNoContent {
		t.Fatalf("small body: got %d", w.Code)
	}

	// declared Content-Length over the cap is rejected up front
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("this body is too long")))
	if w.Code != http.StatusRequestEntityTooLarge || !strings.Contains(w.Body.String(), `"code":"GEN-BODY-VAL-A01"`) {
		t.Fatalf("declared overflow: got %d %s", w.Code, w.Body.String())
	}

	// unknown length: MaxBytesReader trips during the read
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("this body is too long"))
	req.ContentLength = -1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge || !strings.Contains(w.Body.String(), "limit of 8 bytes") {
		t.Fatalf("streamed overflow: got %d %s", w.Code, w.Body.String())
	}
}

func TestBodyLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodyLimit(0))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 1<<12))))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected no limit, got %d", w.Code)
	}
}
