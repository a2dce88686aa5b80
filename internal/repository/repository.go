package repository

import (
	"context"
	"errors"

	"github.com/tssco/quotes-service/internal/model"
)

// ErrNotFound is returned by store lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// QuoteStore is the persistence contract for the quotes collection. No
// uniqueness is mechanically enforced on quote numbers; see
// QuoteStore.LastCreated callers.
type QuoteStore interface {
	Insert(ctx context.Context, quote model.Quote) error
	List(ctx context.Context, skip, limit int) ([]model.Quote, error)
	GetByID(ctx context.Context, id string) (*model.Quote, error)
	// Update rewrites every mutable field of the row; ID, quote number and
	// created date are never touched.
	Update(ctx context.Context, quote model.Quote) error
	Delete(ctx context.Context, id string) error
	// LastCreated returns the most recently created quote, ErrNotFound when
	// the collection is empty.
	LastCreated(ctx context.Context) (*model.Quote, error)
	Count(ctx context.Context) (int64, error)
}

// CompanyStore is the persistence contract for the company singleton.
type CompanyStore interface {
	Get(ctx context.Context) (*model.Company, error)
	// Replace removes any existing record and inserts the supplied one.
	Replace(ctx context.Context, company model.Company) error
	SetLogoPath(ctx context.Context, path string) error
}
