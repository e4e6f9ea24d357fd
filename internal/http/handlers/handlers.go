// Handler wiring and service contracts.
//
// Handlers are transport-thin: they validate input, call application
// services through narrow interfaces, and translate results into HTTP
// responses. Business rules (matching thresholds, decline rates, password
// policy) live in internal/services.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/services"
)

// ChatService answers visitor questions and files support tickets.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts. The same applies to every service
// contract in this file.
type ChatService interface {
	// Ask scores the message against the knowledge base and produces a reply.
	Ask(ctx context.Context, message, name, email string) (*services.ChatReply, error)
}

// AuthService manages accounts and bearer tokens.
type AuthService interface {
	// Register creates an account and returns the profile plus a token.
	Register(ctx context.Context, name, email, password string) (*domain.PublicUser, string, error)
	// Login verifies credentials and returns the profile plus a token.
	Login(ctx context.Context, email, password string) (*domain.PublicUser, string, error)
	// CurrentUser resolves an authenticated user id to its profile.
	CurrentUser(ctx context.Context, userID string) (*domain.PublicUser, error)
}

// PaymentService simulates the payment gateway and manages orders.
type PaymentService interface {
	// Process validates, charges, and persists a confirmed order.
	Process(ctx context.Context, userID, method string, amount float64, items []domain.OrderItem) (*domain.Order, error)
	// RecordKey ties an Idempotency-Key to a processed order.
	RecordKey(ctx context.Context, userID, key, orderID string, status int) error
	// Replay returns the order previously recorded for (userID, key).
	Replay(ctx context.Context, userID, key string) (*domain.Order, error)
	// Order fetches a single order scoped to its owner.
	Order(ctx context.Context, userID, orderID string) (*domain.Order, error)
	// Orders lists the user's orders, most recent first.
	Orders(ctx context.Context, userID string) ([]domain.Order, error)
}

// NewsletterService records signups and issues discount codes.
type NewsletterService interface {
	// Subscribe validates and records the email, returning a discount code.
	Subscribe(ctx context.Context, email string) (string, error)
}

// CatalogService serves products and the public FAQ listing.
type CatalogService interface {
	// Products returns the catalogue, optionally filtered by category.
	Products(ctx context.Context, category string) ([]domain.Product, error)
	// FAQs returns the capped public question/category listing.
	FAQs(ctx context.Context) ([]services.FAQListItem, error)
}

// Handlers groups the HTTP endpoints for the storefront API. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	chatSvc ChatService
	authSvc AuthService
	paySvc  PaymentService
	newsSvc NewsletterService
	catSvc  CatalogService
}

// New constructs a Handlers instance bound to the given services.
func New(chat ChatService, auth AuthService, pay PaymentService, news NewsletterService, cat CatalogService) *Handlers {
	return &Handlers{
		chatSvc: chat,
		authSvc: auth,
		paySvc:  pay,
		newsSvc: news,
		catSvc:  cat,
	}
}

// userID extracts the authenticated user id placed in the Gin context by the
// bearer-token middleware. It returns "" for anonymous requests; endpoints
// that allow guests treat the empty value accordingly.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
