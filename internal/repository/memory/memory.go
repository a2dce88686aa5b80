// Package memory implements in-memory quote and company stores, used by
// tests in place of the Postgres-backed repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tssco/quotes-service/internal/model"
	"github.com/tssco/quotes-service/internal/repository"
)

// QuoteStore is a map-backed implementation of repository.QuoteStore.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]model.Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{quotes: make(map[string]model.Quote)}
}

func (s *QuoteStore) Insert(ctx context.Context, quote model.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[quote.ID] = quote
	return nil
}

func (s *QuoteStore) List(ctx context.Context, skip, limit int) ([]model.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sorted := s.sortedByCreated()
	if skip >= len(sorted) {
		return []model.Quote{}, nil
	}
	sorted = sorted[skip:]
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *QuoteStore) GetByID(ctx context.Context, id string) (*model.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quote, ok := s.quotes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &quote, nil
}

func (s *QuoteStore) Update(ctx context.Context, quote model.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.quotes[quote.ID]
	if !ok {
		return repository.ErrNotFound
	}
	quote.QuoteNumber = stored.QuoteNumber
	quote.CreatedDate = stored.CreatedDate
	s.quotes[quote.ID] = quote
	return nil
}

func (s *QuoteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.quotes, id)
	return nil
}

func (s *QuoteStore) LastCreated(ctx context.Context) (*model.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sorted := s.sortedByCreated()
	if len(sorted) == 0 {
		return nil, repository.ErrNotFound
	}
	return &sorted[0], nil
}

func (s *QuoteStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.quotes)), nil
}

// sortedByCreated returns quotes newest first. Callers hold the lock.
func (s *QuoteStore) sortedByCreated() []model.Quote {
	sorted := make([]model.Quote, 0, len(s.quotes))
	for _, quote := range s.quotes {
		sorted = append(sorted, quote)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedDate.After(sorted[j].CreatedDate)
	})
	return sorted
}

// CompanyStore is a single-slot implementation of repository.CompanyStore.
type CompanyStore struct {
	mu      sync.RWMutex
	company *model.Company
}

func NewCompanyStore() *CompanyStore {
	return &CompanyStore{}
}

func (s *CompanyStore) Get(ctx context.Context) (*model.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.company == nil {
		return nil, repository.ErrNotFound
	}
	company := *s.company
	return &company, nil
}

func (s *CompanyStore) Replace(ctx context.Context, company model.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = &company
	return nil
}

func (s *CompanyStore) SetLogoPath(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.company == nil {
		return repository.ErrNotFound
	}
	s.company.LogoPath = &path
	return nil
}
