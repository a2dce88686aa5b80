package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tssco/quotes-service/internal/model"
	"github.com/tssco/quotes-service/internal/repository"
)

func seedQuote(id, number string, created time.Time) model.Quote {
	return model.Quote{
		ID:          id,
		QuoteNumber: number,
		Customer:    model.Customer{Name: "Acme Trading"},
		CreatedDate: created,
		UpdatedDate: created,
	}
}

func TestQuoteStore_ListNewestFirst(t *testing.T) {
	store := NewQuoteStore()
	base := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Insert(context.Background(), seedQuote(id, "1", base.Add(time.Duration(i)*time.Second))))
	}

	quotes, err := store.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "c", quotes[0].ID)
	assert.Equal(t, "a", quotes[2].ID)

	page, err := store.List(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)

	empty, err := store.List(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestQuoteStore_LastCreated(t *testing.T) {
	store := NewQuoteStore()

	_, err := store.LastCreated(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	base := time.Now().UTC()
	require.NoError(t, store.Insert(context.Background(), seedQuote("a", "1", base)))
	require.NoError(t, store.Insert(context.Background(), seedQuote("b", "2", base.Add(time.Second))))

	last, err := store.LastCreated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", last.ID)
}

func TestQuoteStore_UpdatePreservesImmutableFields(t *testing.T) {
	store := NewQuoteStore()
	created := time.Now().UTC()
	require.NoError(t, store.Insert(context.Background(), seedQuote("a", "1", created)))

	modified := seedQuote("a", "999", created.Add(time.Hour))
	modified.Location = "Riyadh"
	require.NoError(t, store.Update(context.Background(), modified))

	stored, err := store.GetByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "1", stored.QuoteNumber)
	assert.Equal(t, created, stored.CreatedDate)
	assert.Equal(t, "Riyadh", stored.Location)
}

func TestQuoteStore_DeleteAndCount(t *testing.T) {
	store := NewQuoteStore()
	require.NoError(t, store.Insert(context.Background(), seedQuote("a", "1", time.Now().UTC())))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.Delete(context.Background(), "a"))
	assert.ErrorIs(t, store.Delete(context.Background(), "a"), repository.ErrNotFound)

	count, err = store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCompanyStore(t *testing.T) {
	store := NewCompanyStore()

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, store.SetLogoPath(context.Background(), "/api/uploads/x.png"), repository.ErrNotFound)

	require.NoError(t, store.Replace(context.Background(), model.DefaultCompany()))
	require.NoError(t, store.SetLogoPath(context.Background(), "/api/uploads/x.png"))

	company, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, company.LogoPath)
	assert.Equal(t, "/api/uploads/x.png", *company.LogoPath)
}
