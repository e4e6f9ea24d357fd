// Flat-file Store implementation. Each collection lives in its own JSON
// file under the data directory (faqs.json, support_tickets.json,
// users.json, orders.json, subscribers.json, products.json,
// payment_idempotency.json). Files are created with seed or empty defaults
// on first access, and a corrupt file is rewritten with its default rather
// than wedging the storefront.
//
// Concurrency: a single mutex serializes every read-modify-write cycle, so
// ticket id allocation (max existing id + 1) is race-free within the
// process. The backend is intended for single-instance deployments where
// the database is unavailable; it is not a multi-writer store.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lunara-store/go-store-backend/internal/domain"
)

const (
	fileFAQs        = "faqs.json"
	fileTickets     = "support_tickets.json"
	fileUsers       = "users.json"
	fileOrders      = "orders.json"
	fileSubscribers = "subscribers.json"
	fileProducts    = "products.json"
	fileIdempotency = "payment_idempotency.json"
)

// FileStore is the JSON flat-file Store implementation.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// OpenFileStore ensures the data directory exists and seeds the FAQ and
// product files when absent.
func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStore{dir: dir}

	s.mu.Lock()
	defer s.mu.Unlock()
	var faqs []domain.FAQ
	if err := s.load(fileFAQs, &faqs, seedFAQs(time.Now().UTC())); err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := s.load(fileProducts, &products, productSeed()); err != nil {
		return nil, err
	}
	var tickets []domain.SupportTicket
	if err := s.load(fileTickets, &tickets, []domain.SupportTicket{}); err != nil {
		return nil, err
	}
	return s, nil
}

// Name implements Store.
func (s *FileStore) Name() string { return "json" }

// Ping verifies the data directory is still accessible.
func (s *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

// load reads filename into out, writing def (and returning it through out)
// when the file is missing or unparseable. Callers must hold s.mu.
func (s *FileStore) load(filename string, out any, def any) error {
	path := filepath.Join(s.dir, filename)
	b, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(b, out); jsonErr == nil {
			return nil
		}
		// Corrupt file: fall through and rewrite the default.
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := s.save(filename, def); err != nil {
		return err
	}
	// Round-trip through JSON so out gets the default's value regardless of
	// the concrete types involved.
	raw, err := json.Marshal(def)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// save writes v to filename atomically (temp file + rename). Callers must
// hold s.mu.
func (s *FileStore) save(filename string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ListFAQs implements Store.
func (s *FileStore) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var faqs []domain.FAQ
	if err := s.load(fileFAQs, &faqs, seedFAQs(time.Now().UTC())); err != nil {
		return nil, err
	}
	return faqs, nil
}

// CreateTicket appends a ticket with id = max existing id + 1.
func (s *FileStore) CreateTicket(ctx context.Context, t *domain.SupportTicket) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tickets []domain.SupportTicket
	if err := s.load(fileTickets, &tickets, []domain.SupportTicket{}); err != nil {
		return 0, err
	}
	maxID := 0
	for _, existing := range tickets {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	t.ID = maxID + 1
	if t.Status == "" {
		t.Status = domain.TicketStatusOpen
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	tickets = append(tickets, *t)
	if err := s.save(fileTickets, tickets); err != nil {
		return 0, err
	}
	return t.ID, nil
}

// ListTickets implements Store.
func (s *FileStore) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tickets []domain.SupportTicket
	if err := s.load(fileTickets, &tickets, []domain.SupportTicket{}); err != nil {
		return nil, err
	}
	return tickets, nil
}

// CreateUser implements Store.
func (s *FileStore) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []domain.User
	if err := s.load(fileUsers, &users, []domain.User{}); err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	users = append(users, *u)
	return s.save(fileUsers, users)
}

// UserByEmail implements Store.
func (s *FileStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []domain.User
	if err := s.load(fileUsers, &users, []domain.User{}); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// UserByID implements Store.
func (s *FileStore) UserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []domain.User
	if err := s.load(fileUsers, &users, []domain.User{}); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// CreateOrder implements Store.
func (s *FileStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []domain.Order
	if err := s.load(fileOrders, &orders, []domain.Order{}); err != nil {
		return err
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	orders = append(orders, *o)
	return s.save(fileOrders, orders)
}

// OrderByID implements Store.
func (s *FileStore) OrderByID(ctx context.Context, id, userID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []domain.Order
	if err := s.load(fileOrders, &orders, []domain.Order{}); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id && orders[i].UserID == userID {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// ListOrders implements Store. Orders are returned most recent first to
// match the SQL backend.
func (s *FileStore) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []domain.Order
	if err := s.load(fileOrders, &orders, []domain.Order{}); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0)
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].UserID == userID {
			out = append(out, orders[i])
		}
	}
	return out, nil
}

// ListProducts implements Store.
func (s *FileStore) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var products []domain.Product
	if err := s.load(fileProducts, &products, productSeed()); err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return products, nil
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// AddSubscriber implements Store.
func (s *FileStore) AddSubscriber(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subs []domain.Subscriber
	if err := s.load(fileSubscribers, &subs, []domain.Subscriber{}); err != nil {
		return err
	}
	maxID := uint(0)
	for _, existing := range subs {
		if existing.Email == email {
			return ErrDuplicateSubscriber
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	subs = append(subs, domain.Subscriber{
		ID:        maxID + 1,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	})
	return s.save(fileSubscribers, subs)
}

// GetPaymentIdempotency implements Store.
func (s *FileStore) GetPaymentIdempotency(ctx context.Context, userID, key string, now time.Time) (*domain.PaymentIdempotency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var recs []domain.PaymentIdempotency
	if err := s.load(fileIdempotency, &recs, []domain.PaymentIdempotency{}); err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].UserID == userID && recs[i].Key == key && recs[i].ExpiresAt.After(now) {
			r := recs[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// CreatePaymentIdempotency implements Store.
func (s *FileStore) CreatePaymentIdempotency(ctx context.Context, rec *domain.PaymentIdempotency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var recs []domain.PaymentIdempotency
	if err := s.load(fileIdempotency, &recs, []domain.PaymentIdempotency{}); err != nil {
		return err
	}
	for i := range recs {
		if recs[i].UserID == rec.UserID && recs[i].Key == rec.Key {
			return ErrDuplicateKey
		}
	}
	recs = append(recs, *rec)
	return s.save(fileIdempotency, recs)
}
