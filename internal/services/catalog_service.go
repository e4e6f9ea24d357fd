// Package services – CatalogService
//
// Read-only access to the product catalogue and the public FAQ listing.
package services

import (
	"context"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/store"
)

// FAQListItem is the public projection of a FAQ entry: the question and its
// category, without the answer.
type FAQListItem struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// CatalogService serves products and the public FAQ listing.
type CatalogService struct {
	// Store is the persistence backend.
	Store store.Store

	// FAQLimit caps the number of entries the public listing returns.
	FAQLimit int
}

// NewCatalogService constructs a CatalogService with the default FAQ cap.
func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{Store: s, FAQLimit: 12}
}

// Products returns the catalogue. An empty or "all" category returns
// everything.
func (s *CatalogService) Products(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Store.ListProducts(ctx, category)
}

// FAQs returns up to FAQLimit question/category pairs, skipping any entry
// with an empty question.
func (s *CatalogService) FAQs(ctx context.Context) ([]FAQListItem, error) {
	rows, err := s.Store.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FAQListItem, 0, s.FAQLimit)
	for _, r := range rows {
		if r.Question == "" {
			continue
		}
		out = append(out, FAQListItem{Question: r.Question, Category: r.Category})
		if len(out) >= s.FAQLimit {
			break
		}
	}
	return out, nil
}
