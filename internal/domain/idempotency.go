// Package domain defines the core persistence models for the application.
package domain

import "time"

// PaymentIdempotency records the outcome of a previously processed payment,
// keyed by (user_id, key). It enables safe client retries of
// POST /process-payment: a replay returns the originally created order
// instead of charging again.
type PaymentIdempotency struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID    string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:1"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_key,priority:2"`
	OrderID   string    `gorm:"type:TEXT NOT NULL"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (PaymentIdempotency) TableName() string { return "payment_idempotency" }
