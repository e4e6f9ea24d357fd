package services

import (
	"context"
	"time"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/store"
)

// fakeStore is an in-memory store.Store used by the service tests. Zero
// values behave like an empty store; fields can be pre-populated or error
// hooks set per test.
type fakeStore struct {
	faqs        []domain.FAQ
	tickets     []domain.SupportTicket
	users       []domain.User
	orders      []domain.Order
	products    []domain.Product
	subscribers []string
	idem        []domain.PaymentIdempotency

	listFAQsErr     error
	createTicketErr error
	createOrderErr  error
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) Name() string { return "fake" }

func (f *fakeStore) Ping(context.Context) error { return nil }

func (f *fakeStore) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	if f.listFAQsErr != nil {
		return nil, f.listFAQsErr
	}
	return f.faqs, nil
}

func (f *fakeStore) CreateTicket(ctx context.Context, t *domain.SupportTicket) (int, error) {
	if f.createTicketErr != nil {
		return 0, f.createTicketErr
	}
	maxID := 0
	for _, existing := range f.tickets {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	t.ID = maxID + 1
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	f.tickets = append(f.tickets, *t)
	return t.ID, nil
}

func (f *fakeStore) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	return f.tickets, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, u *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) UserByID(ctx context.Context, id string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	if f.createOrderErr != nil {
		return f.createOrderErr
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeStore) OrderByID(ctx context.Context, id, userID string) (*domain.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id && f.orders[i].UserID == userID {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].UserID == userID {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

func (f *fakeStore) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" || category == "all" {
		return f.products, nil
	}
	out := make([]domain.Product, 0)
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) AddSubscriber(ctx context.Context, email string) error {
	for _, existing := range f.subscribers {
		if existing == email {
			return store.ErrDuplicateSubscriber
		}
	}
	f.subscribers = append(f.subscribers, email)
	return nil
}

func (f *fakeStore) GetPaymentIdempotency(ctx context.Context, userID, key string, now time.Time) (*domain.PaymentIdempotency, error) {
	for i := range f.idem {
		if f.idem[i].UserID == userID && f.idem[i].Key == key && f.idem[i].ExpiresAt.After(now) {
			r := f.idem[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreatePaymentIdempotency(ctx context.Context, rec *domain.PaymentIdempotency) error {
	for i := range f.idem {
		if f.idem[i].UserID == rec.UserID && f.idem[i].Key == rec.Key {
			return store.ErrDuplicateKey
		}
	}
	f.idem = append(f.idem, *rec)
	return nil
}
