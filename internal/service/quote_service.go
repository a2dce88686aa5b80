package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tssco/quotes-service/internal/config"
	"github.com/tssco/quotes-service/internal/model"
	"github.com/tssco/quotes-service/internal/repository"
)

// SpreadsheetGenerator renders a quote and company pair as an xlsx workbook.
type SpreadsheetGenerator interface {
	Generate(quote model.Quote, company model.Company) ([]byte, error)
}

// DocumentGenerator renders a quote and company pair as a paginated PDF.
type DocumentGenerator interface {
	Generate(quote model.Quote, company model.Company) ([]byte, error)
}

type QuoteService struct {
	quotes       repository.QuoteStore
	company      *CompanyService
	excel        SpreadsheetGenerator
	pdf          DocumentGenerator
	defaultLimit int
	maxLimit     int
}

func NewQuoteService(
	quotes repository.QuoteStore,
	company *CompanyService,
	excel SpreadsheetGenerator,
	pdf DocumentGenerator,
	cfg *config.Config,
) *QuoteService {
	return &QuoteService{
		quotes:       quotes,
		company:      company,
		excel:        excel,
		pdf:          pdf,
		defaultLimit: cfg.Quotes.DefaultLimit,
		maxLimit:     cfg.Quotes.MaxLimit,
	}
}

type CreateQuoteInput struct {
	Customer           model.Customer
	ProjectDescription string
	Location           string
	Items              []model.QuoteItem
	Subtotal           float64
	TaxAmount          float64
	TotalAmount        float64
	Notes              *string
}

// UpdateQuoteInput carries a partial update; nil fields are left untouched.
type UpdateQuoteInput struct {
	Customer           *model.Customer
	ProjectDescription *string
	Location           *string
	Items              *[]model.QuoteItem
	Subtotal           *float64
	TaxAmount          *float64
	TotalAmount        *float64
	Notes              *string
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Create assigns the identifier, quote number and timestamps, persists the
// quote and returns the full record.
func (s *QuoteService) Create(ctx context.Context, input CreateQuoteInput) (*model.Quote, error) {
	number, err := s.nextQuoteNumber(ctx)
	if err != nil {
		return nil, err
	}

	customer := input.Customer
	if customer.Country == nil || *customer.Country == "" {
		country := model.DefaultCustomerCountry
		customer.Country = &country
	}

	now := time.Now().UTC()
	quote := model.Quote{
		ID:                 uuid.NewString(),
		QuoteNumber:        number,
		Customer:           customer,
		ProjectDescription: input.ProjectDescription,
		Location:           input.Location,
		Items:              input.Items,
		Subtotal:           input.Subtotal,
		TaxAmount:          input.TaxAmount,
		TotalAmount:        input.TotalAmount,
		Notes:              input.Notes,
		CreatedDate:        now,
		UpdatedDate:        now,
	}
	if quote.Items == nil {
		quote.Items = []model.QuoteItem{}
	}

	if err := s.quotes.Insert(ctx, quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// nextQuoteNumber derives the next sequential number from the most recently
// created quote, falling back to count+1 when that number is not numeric.
// Best effort only: this is a read-then-increment with no mutual exclusion,
// so concurrent creates can produce duplicate numbers.
func (s *QuoteService) nextQuoteNumber(ctx context.Context) (string, error) {
	last, err := s.quotes.LastCreated(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "1", nil
		}
		return "", err
	}

	if lastNumber, err := strconv.Atoi(last.QuoteNumber); err == nil {
		return strconv.Itoa(lastNumber + 1), nil
	}

	count, err := s.quotes.Count(ctx)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(count+1, 10), nil
}

// List returns quotes ordered by creation date descending. A non-positive
// limit falls back to the default and limits above the configured maximum
// are clamped.
func (s *QuoteService) List(ctx context.Context, skip, limit int) ([]model.Quote, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	quotes, err := s.quotes.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []model.Quote{}
	}
	return quotes, nil
}

func (s *QuoteService) Get(ctx context.Context, id string) (*model.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: quote", ErrNotFound)
		}
		return nil, err
	}
	return quote, nil
}

// Update merges the supplied fields into the stored quote and refreshes the
// update timestamp. The identifier, quote number and creation date are never
// modified.
func (s *QuoteService) Update(ctx context.Context, id string, input UpdateQuoteInput) (*model.Quote, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Customer != nil {
		quote.Customer = *input.Customer
	}
	if input.ProjectDescription != nil {
		quote.ProjectDescription = *input.ProjectDescription
	}
	if input.Location != nil {
		quote.Location = *input.Location
	}
	if input.Items != nil {
		quote.Items = *input.Items
	}
	if input.Subtotal != nil {
		quote.Subtotal = *input.Subtotal
	}
	if input.TaxAmount != nil {
		quote.TaxAmount = *input.TaxAmount
	}
	if input.TotalAmount != nil {
		quote.TotalAmount = *input.TotalAmount
	}
	if input.Notes != nil {
		quote.Notes = input.Notes
	}
	quote.UpdatedDate = time.Now().UTC()

	if err := s.quotes.Update(ctx, *quote); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: quote", ErrNotFound)
		}
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if err := s.quotes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: quote", ErrNotFound)
		}
		return err
	}
	return nil
}

// ExportExcel renders the quote as a spreadsheet download.
func (s *QuoteService) ExportExcel(ctx context.Context, id string) (*ExportResult, error) {
	quote, company, err := s.exportInputs(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*quote, *company)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("quote_%s.xlsx", quote.QuoteNumber),
		Content:  content,
	}, nil
}

// ExportPDF renders the quote as a paginated document download.
func (s *QuoteService) ExportPDF(ctx context.Context, id string) (*ExportResult, error) {
	quote, company, err := s.exportInputs(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(*quote, *company)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("quote_%s.pdf", quote.QuoteNumber),
		Content:  content,
	}, nil
}

func (s *QuoteService) exportInputs(ctx context.Context, id string) (*model.Quote, *model.Company, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.company.GetOrCreate(ctx)
	if err != nil {
		return nil, nil, err
	}
	return quote, company, nil
}
