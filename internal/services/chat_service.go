// Package services – ChatService
//
// This file implements the ChatService, which answers storefront questions
// from the FAQ knowledge base. It scores the visitor's message against every
// FAQ question, answers directly when the best score clears the configured
// threshold, and opens a support ticket when it cannot answer or when a
// matched message carries negative sentiment.
//
// Reply text is assembled here, including the ticket id suffixes, so handlers
// only serialize the result.
package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/faq"
	"github.com/lunara-store/go-store-backend/internal/store"
)

const (
	replyEmptyMessage = "I didn't catch that. Could you type your question again?"
	replyUnmatched    = "I'm here to help! I couldn't find an exact answer to that. " +
		"I've logged this for our support team and they'll follow up soon."
	escalationSuffix = "\n\nI've also flagged this to our support team to assist you further. Your ticket ID is %d."
	unmatchedSuffix  = " Your ticket ID is %d."
)

// ChatReply is the outcome of a single chatbot exchange.
type ChatReply struct {
	Success   bool
	Reply     string
	Matched   bool
	TicketID  *int
	Sentiment domain.Sentiment
}

// ChatService answers visitor questions against the FAQ knowledge base and
// files support tickets for everything it cannot resolve.
type ChatService struct {
	// Store is the persistence backend for FAQs and tickets.
	Store store.Store

	// Threshold is the minimum composite match score for a direct answer.
	Threshold float64
}

// NewChatService constructs a ChatService with the default answer threshold.
func NewChatService(s store.Store) *ChatService {
	return &ChatService{Store: s, Threshold: 0.67}
}

// Ask scores the message against the knowledge base and produces a reply.
// Name and email are optional visitor details recorded on any ticket that is
// opened. An empty message yields an unsuccessful reply and no ticket.
func (s *ChatService) Ask(ctx context.Context, message, name, email string) (*ChatReply, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Ask",
		trace.WithAttributes(attribute.Int("message.len", len(message))),
	)
	defer span.End()

	message = strings.TrimSpace(message)
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if message == "" {
		return &ChatReply{Success: false, Reply: replyEmptyMessage}, nil
	}

	sentiment := faq.DetectSentiment(message)
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	best, score := faq.Match(message, entries)
	span.SetAttributes(
		attribute.Float64("match.score", score),
		attribute.String("message.sentiment", string(sentiment)),
	)

	out := &ChatReply{Success: true, Sentiment: sentiment}
	if best != nil && score >= s.Threshold {
		out.Matched = true
		out.Reply = best.Answer
		if sentiment == domain.SentimentNegative {
			id, err := s.openTicket(ctx, name, email, message, sentiment, domain.TicketSourceEscalated)
			if err != nil {
				return nil, err
			}
			out.TicketID = &id
			out.Reply += fmt.Sprintf(escalationSuffix, id)
		}
		return out, nil
	}

	id, err := s.openTicket(ctx, name, email, message, sentiment, domain.TicketSourceUnmatched)
	if err != nil {
		return nil, err
	}
	out.TicketID = &id
	out.Reply = replyUnmatched + fmt.Sprintf(unmatchedSuffix, id)
	return out, nil
}

// entries loads the knowledge base and converts it to match candidates.
func (s *ChatService) entries(ctx context.Context) ([]faq.Entry, error) {
	rows, err := s.Store.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]faq.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, faq.Entry{
			Category: r.Category,
			Question: r.Question,
			Answer:   r.Answer,
		})
	}
	return out, nil
}

func (s *ChatService) openTicket(ctx context.Context, name, email, question string, sentiment domain.Sentiment, source string) (int, error) {
	return s.Store.CreateTicket(ctx, &domain.SupportTicket{
		Name:      name,
		Email:     email,
		Question:  question,
		Sentiment: sentiment,
		Status:    domain.TicketStatusOpen,
		Source:    source,
	})
}
