package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lunara-store/go-store-backend/internal/domain"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	return s
}

func TestFileStore_Ping(t *testing.T) {
	s := newFileStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := os.RemoveAll(s.dir); err != nil {
		t.Fatal(err)
	}
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("Ping succeeded after the data directory vanished")
	}
}

func TestFileStore_SeedsFAQsAndProducts(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	faqs, err := s.ListFAQs(ctx)
	if err != nil {
		t.Fatalf("ListFAQs: %v", err)
	}
	if len(faqs) != 25 {
		t.Fatalf("seeded %d FAQs, want 25", len(faqs))
	}
	if faqs[0].Question != "Do you ship internationally?" {
		t.Fatalf("seed order changed, first question %q", faqs[0].Question)
	}

	products, err := s.ListProducts(ctx, "all")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seeded products")
	}
}

func TestFileStore_TicketIDsMonotonic(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	seen := make(map[int]bool)
	prev := 0
	for i := 0; i < 5; i++ {
		id, err := s.CreateTicket(ctx, &domain.SupportTicket{
			Question:  "where is my order",
			Sentiment: domain.SentimentNeutral,
			Source:    domain.TicketSourceUnmatched,
		})
		if err != nil {
			t.Fatalf("CreateTicket: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate ticket id %d", id)
		}
		if id <= prev {
			t.Fatalf("ticket id %d not greater than previous %d", id, prev)
		}
		seen[id] = true
		prev = id
	}

	tickets, err := s.ListTickets(ctx)
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 5 {
		t.Fatalf("got %d tickets, want 5", len(tickets))
	}
	if tickets[0].Status != domain.TicketStatusOpen {
		t.Fatalf("default status = %q, want open", tickets[0].Status)
	}
}

func TestFileStore_TicketIDAfterGap(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	// Pre-populate with a high id; allocation must continue above it.
	if _, err := s.CreateTicket(ctx, &domain.SupportTicket{ID: 0, Question: "q"}); err != nil {
		t.Fatal(err)
	}
	tk := &domain.SupportTicket{Question: "q2"}
	if _, err := s.CreateTicket(ctx, tk); err != nil {
		t.Fatal(err)
	}
	if tk.ID != 2 {
		t.Fatalf("second id = %d, want 2", tk.ID)
	}
}

func TestFileStore_UserDuplicateEmail(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	u := &domain.User{ID: "u1", Name: "Meera", Email: "meera@example.com", PasswordHash: "x"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	dup := &domain.User{ID: "u2", Name: "Other", Email: "meera@example.com", PasswordHash: "y"}
	if err := s.CreateUser(ctx, dup); err != ErrDuplicateEmail {
		t.Fatalf("duplicate email err = %v, want ErrDuplicateEmail", err)
	}

	got, err := s.UserByEmail(ctx, "meera@example.com")
	if err != nil || got.ID != "u1" {
		t.Fatalf("UserByEmail = (%v, %v)", got, err)
	}
	if _, err := s.UserByID(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("UserByID(missing) err = %v, want ErrNotFound", err)
	}
}

func TestFileStore_OrdersScopedToUser(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	orders := []domain.Order{
		{ID: "o1", UserID: "alice", Total: 100, Status: "confirmed"},
		{ID: "o2", UserID: "bob", Total: 200, Status: "confirmed"},
		{ID: "o3", UserID: "alice", Total: 300, Status: "confirmed"},
	}
	for i := range orders {
		if err := s.CreateOrder(ctx, &orders[i]); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	got, err := s.ListOrders(ctx, "alice")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o3" || got[1].ID != "o1" {
		t.Fatalf("ListOrders(alice) = %+v, want o3 then o1", got)
	}

	if _, err := s.OrderByID(ctx, "o2", "alice"); err != ErrNotFound {
		t.Fatalf("cross-user order lookup err = %v, want ErrNotFound", err)
	}
	if o, err := s.OrderByID(ctx, "o2", "bob"); err != nil || o.Total != 200 {
		t.Fatalf("OrderByID(o2, bob) = (%v, %v)", o, err)
	}
}

func TestFileStore_SubscriberDuplicate(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	if err := s.AddSubscriber(ctx, "news@example.com"); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if err := s.AddSubscriber(ctx, "news@example.com"); err != ErrDuplicateSubscriber {
		t.Fatalf("duplicate err = %v, want ErrDuplicateSubscriber", err)
	}
}

func TestFileStore_PaymentIdempotency(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := &domain.PaymentIdempotency{
		ID: "i1", UserID: "alice", Key: "k1", OrderID: "o1",
		Status: 200, CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}
	if err := s.CreatePaymentIdempotency(ctx, rec); err != nil {
		t.Fatalf("CreatePaymentIdempotency: %v", err)
	}
	if err := s.CreatePaymentIdempotency(ctx, rec); err != ErrDuplicateKey {
		t.Fatalf("duplicate err = %v, want ErrDuplicateKey", err)
	}

	got, err := s.GetPaymentIdempotency(ctx, "alice", "k1", now)
	if err != nil || got.OrderID != "o1" {
		t.Fatalf("GetPaymentIdempotency = (%v, %v)", got, err)
	}
	// Expired records are invisible.
	if _, err := s.GetPaymentIdempotency(ctx, "alice", "k1", now.Add(2*time.Hour)); err != ErrNotFound {
		t.Fatalf("expired lookup err = %v, want ErrNotFound", err)
	}
}

func TestFileStore_CorruptFileRewritten(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFileStore(dir)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileTickets), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	tickets, err := s.ListTickets(context.Background())
	if err != nil {
		t.Fatalf("ListTickets after corruption: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("expected empty ticket list, got %d", len(tickets))
	}
}
