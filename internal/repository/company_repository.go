package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tssco/quotes-service/internal/model"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `
	name_ar,
	name_en,
	description_ar,
	description_en,
	tax_number,
	street,
	neighborhood,
	country,
	city,
	commercial_registration,
	building,
	postal_code,
	additional_number,
	email,
	phone1,
	phone2,
	phone3,
	logo_path
`

type companyRow struct {
	Found                  int
	NameAr                 string
	NameEn                 string
	DescriptionAr          string
	DescriptionEn          string
	TaxNumber              string
	Street                 string
	Neighborhood           string
	Country                string
	City                   string
	CommercialRegistration string
	Building               string
	PostalCode             string
	AdditionalNumber       string
	Email                  string
	Phone1                 string
	Phone2                 string
	Phone3                 string
	LogoPath               *string
}

func (r *CompanyRepository) Get(ctx context.Context) (*model.Company, error) {
	var row companyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT 1 AS found, ` + companyColumns + `
		FROM company
		LIMIT 1
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Found == 0 {
		return nil, ErrNotFound
	}
	return &model.Company{
		NameAr:                 row.NameAr,
		NameEn:                 row.NameEn,
		DescriptionAr:          row.DescriptionAr,
		DescriptionEn:          row.DescriptionEn,
		TaxNumber:              row.TaxNumber,
		Street:                 row.Street,
		Neighborhood:           row.Neighborhood,
		Country:                row.Country,
		City:                   row.City,
		CommercialRegistration: row.CommercialRegistration,
		Building:               row.Building,
		PostalCode:             row.PostalCode,
		AdditionalNumber:       row.AdditionalNumber,
		Email:                  row.Email,
		Phone1:                 row.Phone1,
		Phone2:                 row.Phone2,
		Phone3:                 row.Phone3,
		LogoPath:               row.LogoPath,
	}, nil
}

func (r *CompanyRepository) Replace(ctx context.Context, company model.Company) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM company`).Error; err != nil {
			return err
		}
		return tx.Exec(`
			INSERT INTO company (`+companyColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			company.NameAr,
			company.NameEn,
			company.DescriptionAr,
			company.DescriptionEn,
			company.TaxNumber,
			company.Street,
			company.Neighborhood,
			company.Country,
			company.City,
			company.CommercialRegistration,
			company.Building,
			company.PostalCode,
			company.AdditionalNumber,
			company.Email,
			company.Phone1,
			company.Phone2,
			company.Phone3,
			company.LogoPath,
		).Error
	})
}

// SetLogoPath updates the singleton in place. Callers ensure the record
// exists first.
func (r *CompanyRepository) SetLogoPath(ctx context.Context, path string) error {
	result := r.db.WithContext(ctx).Exec(`UPDATE company SET logo_path = ?`, path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
