package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func securityEngine(opt SecurityOptions, pre gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if pre != nil {
		r.Use(pre)
	}
	r.Use(SecurityHeaders(opt))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	r := securityEngine(SecurityOptions{}, func(c *gin.Context) {
		c.Header("X-Request-ID", "rid-123")
		c.Next()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	h := w.Header()
	if h.Get("X-Content-Type-Options") != "nosniff" ||
		h.Get("X-Frame-Options") != "DENY" ||
		h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("baseline headers missing: %#v", h)
	}
	// None of the optional headers without the options.
	for _, name := range []string{"Permissions-Policy", "Cache-Control", "Strict-Transport-Security"} {
		if h.Get(name) != "" {
			t.Errorf("unexpected %s header: %q", name, h.Get(name))
		}
	}
	if h.Get("Access-Control-Expose-Headers") != "X-Request-ID" {
		t.Errorf("expose header = %q", h.Get("Access-Control-Expose-Headers"))
	}
}

func TestSecurityHeaders_ExposeHeaderMerging(t *testing.T) {
	// Appends to an existing list.
	r := securityEngine(SecurityOptions{}, func(c *gin.Context) {
		c.Header("X-Request-ID", "rid-abc")
		c.Header("Access-Control-Expose-Headers", "Foo")
		c.Next()
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "Foo, X-Request-ID" {
		t.Errorf("appended expose header = %q", got)
	}

	// Leaves the list alone when already present.
	r = securityEngine(SecurityOptions{}, func(c *gin.Context) {
		c.Header("X-Request-ID", "rid-xyz")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, Foo")
		c.Next()
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "X-Request-ID, Foo" {
		t.Errorf("expose header changed to %q", got)
	}
}

func TestSecurityHeaders_FullOptionsOverTLS(t *testing.T) {
	r := securityEngine(SecurityOptions{
		EnableHSTS:   true,
		HSTSMaxAge:   24 * time.Hour,
		NoStore:      true,
		EnablePolicy: true,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.TLS = &tls.ConnectionState{}
	r.ServeHTTP(w, req)

	h := w.Header()
	if h.Get("Permissions-Policy") == "" || h.Get("X-Permitted-Cross-Domain-Policies") != "none" {
		t.Errorf("policy headers missing: %#v", h)
	}
	if h.Get("Cache-Control") != "no-store" || h.Get("Pragma") != "no-cache" || h.Get("Expires") != "0" {
		t.Errorf("cache headers missing: %#v", h)
	}
	if got := h.Get("Strict-Transport-Security"); got != "max-age=86400; includeSubDomains; preload" {
		t.Errorf("HSTS = %q", got)
	}
}

func TestSecurityHeaders_HSTSRequiresHTTPS(t *testing.T) {
	opt := SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour}

	// Plain HTTP never gets HSTS.
	r := securityEngine(opt, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS on plain HTTP: %q", got)
	}

	// A proxy-terminated TLS hop counts.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=3600; includeSubDomains; preload" {
		t.Errorf("HSTS via forwarded proto = %q", got)
	}
}

func TestIsHTTPS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTTPS(req) {
		t.Error("plain HTTP reported as HTTPS")
	}
	req.TLS = &tls.ConnectionState{}
	if !isHTTPS(req) {
		t.Error("TLS request not reported as HTTPS")
	}
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set("X-Forwarded-Proto", "HTTPS")
	if !isHTTPS(req2) {
		t.Error("forwarded proto not honored case-insensitively")
	}
}
