// Package services – PaymentService
//
// This file implements the mock payment processor. It validates the order,
// flips a weighted coin to simulate gateway declines, and persists confirmed
// orders. No card data is ever accepted or stored; the only inputs are the
// method label, the amount, and the item list.
package services

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/store"
)

// GuestUserID is the owner recorded on orders placed without logging in.
const GuestUserID = "guest"

// PaymentService simulates a payment gateway and records confirmed orders.
type PaymentService struct {
	// Store is the persistence backend for orders.
	Store store.Store

	// DeclineRate is the probability in [0,1] that a charge is declined.
	DeclineRate float64

	// KeyTTL is how long an Idempotency-Key replay stays valid.
	KeyTTL time.Duration

	// Rand returns a uniform float64 in [0,1); injectable for tests.
	Rand func() float64

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewPaymentService constructs a PaymentService with the given decline rate.
func NewPaymentService(s store.Store, declineRate float64) *PaymentService {
	return &PaymentService{
		Store:       s,
		DeclineRate: declineRate,
		KeyTTL:      24 * time.Hour,
		Rand:        rand.Float64,
		Now:         time.Now,
	}
}

// Process validates the order, simulates the charge, and persists a confirmed
// order on success. An empty userID records the order against the guest
// account. The returned id identifies the stored order.
func (s *PaymentService) Process(ctx context.Context, userID, method string, amount float64, items []domain.OrderItem) (*domain.Order, error) {
	tr := otel.Tracer("services/PaymentService")
	ctx, span := tr.Start(ctx, "Process",
		trace.WithAttributes(
			attribute.Float64("order.amount", amount),
			attribute.Int("order.items", len(items)),
		),
	)
	defer span.End()

	if amount <= 0 || len(items) == 0 {
		return nil, ErrInvalidOrder
	}
	if userID == "" {
		userID = GuestUserID
	}
	if s.Rand() < s.DeclineRate {
		return nil, ErrPaymentDeclined
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Total:         amount,
		Status:        "confirmed",
		PaymentMethod: method,
		CreatedAt:     s.Now().UTC(),
	}
	if err := s.Store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// RecordKey stores the idempotency record tying (userID, key) to a processed
// order so a retried request can be served from the first outcome. A
// concurrent duplicate is not an error; the first writer wins.
func (s *PaymentService) RecordKey(ctx context.Context, userID, key, orderID string, status int) error {
	if userID == "" {
		userID = GuestUserID
	}
	now := s.Now().UTC()
	err := s.Store.CreatePaymentIdempotency(ctx, &domain.PaymentIdempotency{
		ID:        uuid.NewString(),
		UserID:    userID,
		Key:       key,
		OrderID:   orderID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(s.KeyTTL),
	})
	if errors.Is(err, store.ErrDuplicateKey) {
		return nil
	}
	return err
}

// Replay returns the order recorded for (userID, key), or ErrOrderNotFound
// when no valid record exists.
func (s *PaymentService) Replay(ctx context.Context, userID, key string) (*domain.Order, error) {
	if userID == "" {
		userID = GuestUserID
	}
	rec, err := s.Store.GetPaymentIdempotency(ctx, userID, key, s.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.Store.OrderByID(ctx, rec.OrderID, userID)
}

// Order fetches a single order scoped to its owner.
func (s *PaymentService) Order(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.Store.OrderByID(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// Orders lists the user's orders, most recent first.
func (s *PaymentService) Orders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.Store.ListOrders(ctx, userID)
}
