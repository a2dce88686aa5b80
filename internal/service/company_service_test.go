package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tssco/quotes-service/internal/model"
	"github.com/tssco/quotes-service/internal/repository/memory"
	"github.com/tssco/quotes-service/internal/storage"
)

func newTestCompanyService(t *testing.T) (*CompanyService, *memory.CompanyStore) {
	t.Helper()
	store := memory.NewCompanyStore()
	files, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewCompanyService(store, files), store
}

func TestGetOrCreate_PersistsDefault(t *testing.T) {
	svc, store := newTestCompanyService(t)

	first, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCompany(), *first)

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *first, *stored)

	second, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func TestGetOrCreate_ReturnsStoredRecord(t *testing.T) {
	svc, store := newTestCompanyService(t)

	custom := model.DefaultCompany()
	custom.NameEn = "Custom Contracting Co."
	require.NoError(t, store.Replace(context.Background(), custom))

	company, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Custom Contracting Co.", company.NameEn)
}

func TestReplace(t *testing.T) {
	svc, _ := newTestCompanyService(t)

	updated := model.DefaultCompany()
	updated.Email = "sales@tsscoksa.com"

	company, err := svc.Replace(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, "sales@tsscoksa.com", company.Email)

	fetched, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sales@tsscoksa.com", fetched.Email)
}

func TestAttachLogo_RejectsNonImage(t *testing.T) {
	svc, _ := newTestCompanyService(t)

	_, err := svc.AttachLogo(context.Background(), "text/plain", "notes.txt", strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAttachLogo_StoresFileAndReference(t *testing.T) {
	svc, _ := newTestCompanyService(t)

	logoPath, err := svc.AttachLogo(context.Background(), "image/png", "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(logoPath, "/api/uploads/logo_"))
	assert.True(t, strings.HasSuffix(logoPath, ".png"))

	company, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, company.LogoPath)
	assert.Equal(t, logoPath, *company.LogoPath)

	name := strings.TrimPrefix(logoPath, "/api/uploads/")
	path, err := svc.FilePath(name)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestFilePath_NotFound(t *testing.T) {
	svc, _ := newTestCompanyService(t)

	_, err := svc.FilePath("missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
