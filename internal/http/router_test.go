package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunara-store/go-store-backend/internal/config"
	"github.com/lunara-store/go-store-backend/internal/http/middleware"
	"github.com/lunara-store/go-store-backend/internal/store"
)

func testConfig() config.Config {
	return config.Config{
		APIBasePath:        "/api",
		GinMode:            "test",
		MatchThreshold:     0.67,
		FAQListLimit:       12,
		PaymentDeclineRate: 0, // deterministic approvals
		JWT: config.JWTConfig{
			Secret: "router-test-secret",
			TTL:    time.Hour,
		},
		RateRPS:        1000,
		RateBurst:      100,
		IdempotencyTTL: time.Hour,
		OTEL:           config.OTELConfig{ServiceName: "lunara-test"},
	}
}

func testEngine(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st, err := store.OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	r := gin.New()
	RegisterRoutes(r, st, cfg)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_HealthMetricsAndFallbacks(t *testing.T) {
	r := testEngine(t, testConfig())

	// Health reports the winning storage backend.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	var health map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("health body: %v", err)
	}
	if health["status"] != "ok" || health["storage"] != "json" {
		t.Errorf("health = %v", health)
	}
	// Allow-all CORS branch emits a wildcard even without an Origin.
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("ACAO = %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}

	// Prometheus endpoint is wired.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Errorf("GET /metrics = %d (%d bytes)", w.Code, w.Body.Len())
	}

	// Fallbacks use the standard error envelope.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d", w.Code)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health = %d", w.Code)
	}
}

func TestRegisterRoutes_CORSAllowlistEcho(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowedOrigins = []string{"https://lunara.example"}
	r := testEngine(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://lunara.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://lunara.example" {
		t.Errorf("allowlisted ACAO = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "https://evil.example" {
		t.Error("unlisted origin echoed")
	}
}

// End-to-end through the real middleware chain, services, and file store:
// register, log in, ask the chatbot, check out with an idempotency key, and
// retry the checkout.
func TestRegisterRoutes_StorefrontFlow(t *testing.T) {
	r := testEngine(t, testConfig())

	// Register and keep the token.
	w := postJSON(t, r, "/api/register", map[string]any{
		"name": "Meera", "email": "meera@example.com", "password": "hunter22",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register = %d body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil || reg.Token == "" {
		t.Fatalf("register body: %v %s", err, w.Body.String())
	}
	auth := map[string]string{"Authorization": "Bearer " + reg.Token}

	// The chatbot answers a seeded FAQ without opening a ticket.
	w = postJSON(t, r, "/api/chatbot/ask", map[string]any{"message": "How do I track my order?"}, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("ask = %d body=%s", w.Code, w.Body.String())
	}
	var ask struct {
		Success  bool   `json:"success"`
		Matched  bool   `json:"matched"`
		TicketID *int   `json:"ticket_id"`
		Reply    string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ask); err != nil {
		t.Fatalf("ask body: %v", err)
	}
	if !ask.Success || !ask.Matched || ask.TicketID != nil {
		t.Errorf("ask = %+v", ask)
	}

	// Products come back as a plain array.
	wGet := httptest.NewRecorder()
	r.ServeHTTP(wGet, httptest.NewRequest(http.MethodGet, "/api/products?category=all", nil))
	if wGet.Code != http.StatusOK {
		t.Fatalf("products = %d", wGet.Code)
	}
	var products []map[string]any
	if err := json.Unmarshal(wGet.Body.Bytes(), &products); err != nil {
		t.Fatalf("products body not an array: %v", err)
	}

	// Checkout with an idempotency key, then retry it.
	order := map[string]any{
		"method": "card",
		"amount": 2499,
		"items": []map[string]any{
			{"product_id": "p1", "name": "Luna Crescent Ring", "price": 2499, "quantity": 1},
		},
	}
	headers := map[string]string{
		"Authorization":                  "Bearer " + reg.Token,
		middleware.HeaderIdempotencyKey: "flow-checkout-1",
	}
	w = postJSON(t, r, "/api/process-payment", order, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("checkout = %d body=%s", w.Code, w.Body.String())
	}
	var first struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil || first.OrderID == "" {
		t.Fatalf("checkout body: %v %s", err, w.Body.String())
	}

	w = postJSON(t, r, "/api/process-payment", order, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("retry = %d body=%s", w.Code, w.Body.String())
	}
	var second struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("retry body: %v", err)
	}
	if second.OrderID != first.OrderID {
		t.Errorf("retry created a new order: %q vs %q", second.OrderID, first.OrderID)
	}

	// The order history shows exactly one order.
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	wGet = httptest.NewRecorder()
	r.ServeHTTP(wGet, req)
	if wGet.Code != http.StatusOK {
		t.Fatalf("orders = %d", wGet.Code)
	}
	var history struct {
		Orders []struct {
			ID string `json:"id"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(wGet.Body.Bytes(), &history); err != nil {
		t.Fatalf("orders body: %v", err)
	}
	if len(history.Orders) != 1 || history.Orders[0].ID != first.OrderID {
		t.Errorf("history = %+v", history.Orders)
	}
}

func TestLimitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestGroupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	groupWithPrefix(r, "/").GET("/root", func(c *gin.Context) { c.String(http.StatusOK, "root") })
	groupWithPrefix(r, "").GET("/bare", func(c *gin.Context) { c.String(http.StatusOK, "bare") })
	groupWithPrefix(r, "/shop").GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/root": "root", "/bare": "bare", "/shop/ping": "pong"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Errorf("GET %s = %d %q", path, w.Code, w.Body.String())
		}
	}
}
