package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tssco/quotes-service/internal/model"
	"github.com/tssco/quotes-service/internal/repository"
	"github.com/tssco/quotes-service/internal/storage"
)

// BlobStore persists uploaded binary assets outside the database.
type BlobStore interface {
	Store(content io.Reader, prefix, originalName string) (string, error)
	Path(name string) (string, error)
}

type CompanyService struct {
	store repository.CompanyStore
	files BlobStore
}

func NewCompanyService(store repository.CompanyStore, files BlobStore) *CompanyService {
	return &CompanyService{store: store, files: files}
}

// GetOrCreate returns the company singleton, persisting the built-in default
// record on first read.
func (s *CompanyService) GetOrCreate(ctx context.Context) (*model.Company, error) {
	company, err := s.store.Get(ctx)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	defaultCompany := model.DefaultCompany()
	if err := s.store.Replace(ctx, defaultCompany); err != nil {
		return nil, err
	}
	return &defaultCompany, nil
}

// Replace overwrites the singleton wholesale.
func (s *CompanyService) Replace(ctx context.Context, company model.Company) (*model.Company, error) {
	if err := s.store.Replace(ctx, company); err != nil {
		return nil, err
	}
	return &company, nil
}

// AttachLogo stores an uploaded image and associates its reference with the
// company singleton. Non-image content types are rejected.
func (s *CompanyService) AttachLogo(ctx context.Context, contentType, originalName string, content io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: file must be an image", ErrInvalidInput)
	}

	if _, err := s.GetOrCreate(ctx); err != nil {
		return "", err
	}

	name, err := s.files.Store(content, "logo", originalName)
	if err != nil {
		return "", err
	}

	logoPath := "/api/uploads/" + name
	if err := s.store.SetLogoPath(ctx, logoPath); err != nil {
		return "", err
	}
	return logoPath, nil
}

// FilePath resolves a stored upload by name.
func (s *CompanyService) FilePath(name string) (string, error) {
	path, err := s.files.Path(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: file", ErrNotFound)
		}
		return "", err
	}
	return path, nil
}
