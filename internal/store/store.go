// Package store implements the persistence layer behind the storefront.
//
// Two interchangeable backends exist:
//
//   - SQLStore: GORM over SQLite (pure Go driver), the preferred backend.
//   - FileStore: flat JSON files under a data directory, used when the
//     database cannot be opened.
//
// The backend is selected exactly once at startup (see Open) and injected
// into services as a Store value; nothing in the application consults a
// process-global availability flag. Both backends honour the same contract,
// most importantly ticket id allocation: ids are integers, unique and
// strictly increasing for the lifetime of the underlying store.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/faq"
)

// Sentinel errors shared by both backends. Services branch on these; raw
// driver errors are propagated only for unexpected failures.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when registering an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateSubscriber is returned when an email is already on the
	// newsletter list.
	ErrDuplicateSubscriber = errors.New("email already subscribed")

	// ErrDuplicateKey is returned when a payment idempotency record already
	// exists for the given (user, key) pair.
	ErrDuplicateKey = errors.New("idempotency key already recorded")
)

// Store is the persistence contract consumed by the service layer.
//
// All methods are context-aware and safe for concurrent use. Create methods
// fill in store-assigned fields (ids, creation timestamps) on the passed
// value.
type Store interface {
	// Name identifies the backend ("sqlite" or "json") for logs and health.
	Name() string

	// Ping reports whether the backend is reachable. Used by the health
	// endpoint.
	Ping(ctx context.Context) error

	// ListFAQs returns the FAQ knowledge base in seed order.
	ListFAQs(ctx context.Context) ([]domain.FAQ, error)

	// CreateTicket persists a support ticket, assigning a fresh integer id
	// (strictly greater than any id previously issued by this store) and the
	// creation timestamp. The assigned id is returned.
	CreateTicket(ctx context.Context, t *domain.SupportTicket) (int, error)

	// ListTickets returns all support tickets, oldest first.
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)

	// CreateUser persists a new account. Returns ErrDuplicateEmail when the
	// email is taken.
	CreateUser(ctx context.Context, u *domain.User) error

	// UserByEmail fetches an account by (lowercased) email, or ErrNotFound.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UserByID fetches an account by id, or ErrNotFound.
	UserByID(ctx context.Context, id string) (*domain.User, error)

	// CreateOrder persists a confirmed order.
	CreateOrder(ctx context.Context, o *domain.Order) error

	// OrderByID fetches an order by id scoped to its owner, or ErrNotFound.
	OrderByID(ctx context.Context, id, userID string) (*domain.Order, error)

	// ListOrders returns the user's orders, most recent first.
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)

	// ListProducts returns the catalogue, optionally filtered by category
	// ("" or "all" return everything).
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)

	// AddSubscriber records a newsletter signup. Returns
	// ErrDuplicateSubscriber when the email is already on the list.
	AddSubscriber(ctx context.Context, email string) error

	// GetPaymentIdempotency returns a non-expired idempotency record for
	// (userID, key), or ErrNotFound.
	GetPaymentIdempotency(ctx context.Context, userID, key string, now time.Time) (*domain.PaymentIdempotency, error)

	// CreatePaymentIdempotency inserts a record; ErrDuplicateKey on conflict.
	CreatePaymentIdempotency(ctx context.Context, rec *domain.PaymentIdempotency) error
}

// Open selects the storage backend: it tries SQLite at dbPath first and
// falls back to flat JSON files under dataDir when the database cannot be
// opened or migrated. Whichever backend wins is seeded with the built-in
// FAQ catalogue (and product seed) if empty.
//
// The returned Store is the only handle the rest of the application sees;
// the fallback decision is never revisited at runtime.
func Open(dbPath, dataDir string) (Store, error) {
	if s, err := OpenSQLite(dbPath); err == nil {
		return s, nil
	}
	return OpenFileStore(dataDir)
}

// seedFAQs converts the engine's seed catalogue into persistence rows.
func seedFAQs(now time.Time) []domain.FAQ {
	entries := faq.Seed()
	rows := make([]domain.FAQ, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.FAQ{
			Category:  e.Category,
			Question:  e.Question,
			Answer:    e.Answer,
			CreatedAt: now,
		})
	}
	return rows
}
