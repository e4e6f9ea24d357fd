// Package domain defines the persistence models for the storefront: FAQ
// entries, support tickets, users, orders, and newsletter subscribers.
// These types are mapped with GORM by the SQL storage backend and serialized
// as-is by the JSON file backend, so their JSON tags double as the flat-file
// schema.
package domain

import (
	"time"
)

// Sentiment is the coarse tone classification attached to chat messages and
// support tickets. Only two classes exist; there is no intensity scoring.
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Ticket sources distinguish why a chat interaction was routed to support.
const (
	// TicketSourceEscalated marks tickets raised for answered questions with
	// negative sentiment.
	TicketSourceEscalated = "chat-escalated"
	// TicketSourceUnmatched marks tickets raised when no FAQ cleared the
	// match threshold.
	TicketSourceUnmatched = "chat-unmatched"
)

// TicketStatusOpen is the status assigned to every freshly created ticket.
const TicketStatusOpen = "open"

// FAQ is a stored question/answer/category triple used as the chatbot
// knowledge base. Rows are seeded once and treated as immutable afterwards.
type FAQ struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Category  string    `json:"category"   gorm:"type:varchar(100);not null"`
	Question  string    `json:"question"   gorm:"type:text;not null"`
	Answer    string    `json:"answer"     gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for FAQ.
func (FAQ) TableName() string { return "faqs" }

// SupportTicket is a persisted record of an unanswered or escalated chat
// interaction routed to human support. Tickets are created by the escalation
// policy and never mutated or deleted by this application.
//
// Fields:
//   - ID: integer primary key; strictly increasing per storage backend.
//   - Name / Email: optional requester identity captured from the chat.
//   - Question: the verbatim user message that triggered the ticket.
//   - Sentiment: "negative" or "neutral" at creation time.
//   - Status: always "open" on creation.
//   - Source: "chat-escalated" or "chat-unmatched".
type SupportTicket struct {
	ID        int       `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:varchar(255)"`
	Email     string    `json:"email"      gorm:"type:varchar(255)"`
	Question  string    `json:"question"   gorm:"type:text;not null"`
	Sentiment Sentiment `json:"sentiment"  gorm:"type:varchar(32)"`
	Status    string    `json:"status"     gorm:"type:varchar(32);default:'open'"`
	Source    string    `json:"source"     gorm:"type:varchar(32)"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for SupportTicket.
func (SupportTicket) TableName() string { return "support_tickets" }

// User is a registered customer account. Passwords are stored as bcrypt
// hashes; the JSON tag matches the flat-file schema, and API responses go
// through Public() so the hash never leaves the storage layer.
type User struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email        string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"password"   gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// PublicUser is the sanitized projection of a User returned by the API.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips credential material from a User.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// OrderItem is a single line of an order. Items are embedded in the order
// (JSON-serialized column in SQL, nested array in the file backend); there
// is no separate line-item aggregate.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is a confirmed purchase produced by the mock payment processor.
// UserID is "guest" for unauthenticated checkouts.
type Order struct {
	ID            string      `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID        string      `json:"user_id"        gorm:"type:varchar(64);not null;index:idx_user_orders"`
	Items         []OrderItem `json:"items"          gorm:"serializer:json"`
	Total         float64     `json:"total"          gorm:"not null"`
	Status        string      `json:"status"         gorm:"type:varchar(32);not null;default:'confirmed'"`
	PaymentMethod string      `json:"payment_method" gorm:"type:varchar(64)"`
	CreatedAt     time.Time   `json:"created_at"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// Subscriber is a newsletter signup. The email is the natural key; duplicate
// subscriptions are rejected.
type Subscriber struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Subscriber.
func (Subscriber) TableName() string { return "subscribers" }

// Product is a catalogue entry. The catalogue is read-only seed data served
// by GET /products; it lives alongside the other collections so the
// storefront behaves identically on both backends.
type Product struct {
	ID          string  `json:"id"          gorm:"type:varchar(64);primaryKey"`
	Name        string  `json:"name"        gorm:"type:varchar(255);not null"`
	Category    string  `json:"category"    gorm:"type:varchar(100);index"`
	Price       float64 `json:"price"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image"       gorm:"type:varchar(255)"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }
