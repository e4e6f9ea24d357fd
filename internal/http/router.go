// Package httpapi assembles the Gin engine for the storefront API: the
// middleware chain (tracing, correlation IDs, redacting logs, recovery,
// metrics, idempotency, rate limiting, CORS, security headers), the service
// wiring on top of the injected store, and every public route.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/lunara-store/go-store-backend/internal/config"
	"github.com/lunara-store/go-store-backend/internal/http/handlers"
	"github.com/lunara-store/go-store-backend/internal/http/middleware"
	"github.com/lunara-store/go-store-backend/internal/services"
	"github.com/lunara-store/go-store-backend/internal/store"
)

// RegisterRoutes attaches all middleware and endpoints to the given engine.
// The storage backend is injected once and shared by every service.
//
// The idempotency validator runs before the rate limiter so a detected
// replay can bypass it; RequestID precedes the logger so every line carries
// the correlation ID.
func RegisterRoutes(r *gin.Engine, st store.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())

	// Emails flow through chat, newsletter, and auth payloads, so the
	// redacting logger is not optional here.
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			middleware.HeaderIdempotencyKey, // often derived from cart contents
		},
	}))

	r.Use(middleware.Recovery())
	r.Use(limitBody(1 << 20))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: 200,
		},
		func(ctx context.Context, userID, key string, now time.Time) (bool, error) {
			rec, err := st.GetPaymentIdempotency(ctx, userID, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// Without a configured allowlist any origin may call the API; the
	// storefront frontend is typically served from a separate host.
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Emit ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo the request Origin when allowlisted, alongside gin-contrib/cors.
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health, reporting which storage backend won at startup
	r.GET("/health", func(c *gin.Context) {
		if err := st.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": st.Name()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": st.Name()})
	})

	// Dependency injection: services ← store
	chatSvc := services.NewChatService(st)
	chatSvc.Threshold = cfg.MatchThreshold

	authSvc := services.NewAuthService(st, cfg.JWT.Secret, cfg.JWT.TTL)

	paySvc := services.NewPaymentService(st, cfg.PaymentDeclineRate)
	paySvc.KeyTTL = cfg.IdempotencyTTL

	newsSvc := services.NewNewsletterService(st)

	catSvc := services.NewCatalogService(st)
	catSvc.FAQLimit = cfg.FAQListLimit

	h := handlers.New(chatSvc, authSvc, paySvc, newsSvc, catSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	api.Use(middleware.BearerAuth(authSvc.VerifyToken))
	{
		// Chatbot
		api.GET("/faqs", h.ListFAQs)
		api.POST("/chatbot/ask", h.Ask)

		// Accounts
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.GET("/user", h.CurrentUser)

		// Catalogue
		api.GET("/products", h.ListProducts)

		// Payments and orders
		api.POST("/process-payment", h.ProcessPayment)
		api.GET("/order/:id", h.GetOrder)
		api.GET("/orders", h.ListOrders)

		// Newsletter
		api.POST("/subscribe", h.Subscribe)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
