package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tssco/quotes-service/internal/model"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `
	id,
	quote_number,
	customer,
	project_description,
	location,
	items,
	subtotal,
	tax_amount,
	total_amount,
	notes,
	created_date,
	updated_date
`

// quoteRow mirrors the quotes table; customer and items stay raw JSONB until
// decoded.
type quoteRow struct {
	ID                 string
	QuoteNumber        string
	Customer           []byte
	ProjectDescription string
	Location           string
	Items              []byte
	Subtotal           float64
	TaxAmount          float64
	TotalAmount        float64
	Notes              *string
	CreatedDate        time.Time
	UpdatedDate        time.Time
}

func (row quoteRow) toModel() (*model.Quote, error) {
	quote := model.Quote{
		ID:                 row.ID,
		QuoteNumber:        row.QuoteNumber,
		ProjectDescription: row.ProjectDescription,
		Location:           row.Location,
		Subtotal:           row.Subtotal,
		TaxAmount:          row.TaxAmount,
		TotalAmount:        row.TotalAmount,
		Notes:              row.Notes,
		CreatedDate:        row.CreatedDate,
		UpdatedDate:        row.UpdatedDate,
	}
	if err := json.Unmarshal(row.Customer, &quote.Customer); err != nil {
		return nil, fmt.Errorf("decode customer for quote %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Items, &quote.Items); err != nil {
		return nil, fmt.Errorf("decode items for quote %s: %w", row.ID, err)
	}
	return &quote, nil
}

func encodeQuote(quote model.Quote) (customer, items []byte, err error) {
	customer, err = json.Marshal(quote.Customer)
	if err != nil {
		return nil, nil, fmt.Errorf("encode customer: %w", err)
	}
	items, err = json.Marshal(quote.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("encode items: %w", err)
	}
	if quote.Items == nil {
		items = []byte("[]")
	}
	return customer, items, nil
}

func (r *QuoteRepository) Insert(ctx context.Context, quote model.Quote) error {
	customer, items, err := encodeQuote(quote)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO quotes (`+quoteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		quote.ID,
		quote.QuoteNumber,
		customer,
		quote.ProjectDescription,
		quote.Location,
		items,
		quote.Subtotal,
		quote.TaxAmount,
		quote.TotalAmount,
		quote.Notes,
		quote.CreatedDate,
		quote.UpdatedDate,
	).Error
}

func (r *QuoteRepository) List(ctx context.Context, skip, limit int) ([]model.Quote, error) {
	var rows []quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		ORDER BY created_date DESC
		OFFSET ? LIMIT ?
	`, skip, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(rows))
	for _, row := range rows {
		quote, err := row.toModel()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *quote)
	}
	return quotes, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (*model.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, ErrNotFound
	}
	return row.toModel()
}

func (r *QuoteRepository) Update(ctx context.Context, quote model.Quote) error {
	customer, items, err := encodeQuote(quote)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Exec(`
		UPDATE quotes
		SET
			customer = ?,
			project_description = ?,
			location = ?,
			items = ?,
			subtotal = ?,
			tax_amount = ?,
			total_amount = ?,
			notes = ?,
			updated_date = ?
		WHERE id = ?
	`,
		customer,
		quote.ProjectDescription,
		quote.Location,
		items,
		quote.Subtotal,
		quote.TaxAmount,
		quote.TotalAmount,
		quote.Notes,
		quote.UpdatedDate,
		quote.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuoteRepository) LastCreated(ctx context.Context) (*model.Quote, error) {
	var row quoteRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		ORDER BY created_date DESC
		LIMIT 1
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, ErrNotFound
	}
	return row.toModel()
}

func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM quotes`).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
