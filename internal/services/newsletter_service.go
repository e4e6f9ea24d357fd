// Package services – NewsletterService
//
// Newsletter signups: validate the address, record it once, and hand back a
// personalized discount code derived from the email's local part.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lunara-store/go-store-backend/internal/store"
)

// discountPrefix starts every generated discount code.
const discountPrefix = "LUNARA10-"

// NewsletterService records newsletter signups.
type NewsletterService struct {
	Store store.Store
}

// NewNewsletterService constructs a NewsletterService.
func NewNewsletterService(s store.Store) *NewsletterService {
	return &NewsletterService{Store: s}
}

// Subscribe validates and records the email, returning a discount code of the
// form LUNARA10-<first three characters of the local part, uppercased>.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	if err := s.Store.AddSubscriber(ctx, email); err != nil {
		if errors.Is(err, store.ErrDuplicateSubscriber) {
			return "", ErrAlreadySubscribed
		}
		return "", err
	}
	return discountPrefix + discountTag(email), nil
}

// discountTag uppercases up to the first three characters of the local part.
func discountTag(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}
	if len(local) > 3 {
		local = local[:3]
	}
	return strings.ToUpper(local)
}
