// SQLite-backed Store implementation. This file contains database
// bootstrapping (pure Go driver, PRAGMAs, pool sizing), schema migration,
// first-run seeding, and the repository methods themselves.
//
// The repository methods follow the "thin repository" approach: no business
// logic, only CRUD persistence and query composition. Error semantics:
// missing records surface as ErrNotFound, unique violations as the matching
// duplicate sentinel, and anything else propagates the raw GORM error.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/lunara-store/go-store-backend/internal/domain"
)

// SQLStore is the GORM/SQLite Store implementation.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the SQLite database at path, applies
// PRAGMAs, migrates the schema, and seeds the FAQ and product catalogues on
// first run. Any failure leaves the caller free to fall back to FileStore.
func OpenSQLite(path string) (*SQLStore, error) {
	// Fail early if the parent directory does not exist (instead of the
	// sqlite "out of memory (14)" error on some platforms).
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := autoMigrate(db); err != nil {
		return nil, err
	}
	s := &SQLStore{db: db}
	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}
	return s, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.FAQ{},
		&domain.SupportTicket{},
		&domain.User{},
		&domain.Order{},
		&domain.Subscriber{},
		&domain.Product{},
		&domain.PaymentIdempotency{},
	)
}

// seedIfEmpty writes the built-in FAQ and product catalogues when the
// corresponding tables have no rows. Seeding is idempotent across restarts.
func (s *SQLStore) seedIfEmpty() error {
	now := time.Now().UTC()

	var faqCount int64
	if err := s.db.Model(&domain.FAQ{}).Count(&faqCount).Error; err != nil {
		return err
	}
	if faqCount == 0 {
		if err := s.db.Create(seedFAQs(now)).Error; err != nil {
			return err
		}
	}

	var prodCount int64
	if err := s.db.Model(&domain.Product{}).Count(&prodCount).Error; err != nil {
		return err
	}
	if prodCount == 0 {
		if err := s.db.Create(productSeed()).Error; err != nil {
			return err
		}
	}
	return nil
}

// Name implements Store.
func (s *SQLStore) Name() string { return "sqlite" }

// Ping checks the underlying connection.
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// DB exposes the underlying handle for migrations and tests.
func (s *SQLStore) DB() *gorm.DB { return s.db }

// ListFAQs returns the knowledge base ordered by id (seed order).
func (s *SQLStore) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	var out []domain.FAQ
	err := s.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// CreateTicket inserts a ticket; the integer primary key is allocated by
// SQLite's autoincrement, which is unique and strictly increasing.
func (s *SQLStore) CreateTicket(ctx context.Context, t *domain.SupportTicket) (int, error) {
	if t.Status == "" {
		t.Status = domain.TicketStatusOpen
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return 0, err
	}
	return t.ID, nil
}

// ListTickets returns all tickets, oldest first.
func (s *SQLStore) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := s.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// CreateUser inserts an account row; unique-email violations map to
// ErrDuplicateEmail.
func (s *SQLStore) CreateUser(ctx context.Context, u *domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UserByEmail fetches an account by email.
func (s *SQLStore) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByID fetches an account by primary key.
func (s *SQLStore) UserByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateOrder inserts a confirmed order row.
func (s *SQLStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(o).Error
}

// OrderByID fetches a single order scoped to its owner.
func (s *SQLStore) OrderByID(ctx context.Context, id, userID string) (*domain.Order, error) {
	var o domain.Order
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns the user's orders, most recent first.
func (s *SQLStore) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListProducts returns the catalogue, optionally filtered by category.
func (s *SQLStore) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	q := s.db.WithContext(ctx).Order("id asc")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	var out []domain.Product
	err := q.Find(&out).Error
	return out, err
}

// AddSubscriber records a newsletter signup; duplicates map to
// ErrDuplicateSubscriber.
func (s *SQLStore) AddSubscriber(ctx context.Context, email string) error {
	sub := domain.Subscriber{Email: email, CreatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSubscriber
		}
		return err
	}
	return nil
}

// GetPaymentIdempotency returns a non-expired record or ErrNotFound.
func (s *SQLStore) GetPaymentIdempotency(ctx context.Context, userID, key string, now time.Time) (*domain.PaymentIdempotency, error) {
	var rec domain.PaymentIdempotency
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND key = ? AND expires_at > ?", userID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreatePaymentIdempotency inserts a record and returns ErrDuplicateKey on
// unique violation.
func (s *SQLStore) CreatePaymentIdempotency(ctx context.Context, rec *domain.PaymentIdempotency) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// isUniqueViolation detects UNIQUE constraint failures across GORM and the
// pure-Go SQLite driver, which often reports them as plain-text errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}
