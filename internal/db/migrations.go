package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS company (
		name_ar TEXT NOT NULL,
		name_en TEXT NOT NULL,
		description_ar TEXT NOT NULL DEFAULT '',
		description_en TEXT NOT NULL DEFAULT '',
		tax_number TEXT NOT NULL DEFAULT '',
		street TEXT NOT NULL DEFAULT '',
		neighborhood TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		commercial_registration TEXT NOT NULL DEFAULT '',
		building TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		additional_number TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone1 TEXT NOT NULL DEFAULT '',
		phone2 TEXT NOT NULL DEFAULT '',
		phone3 TEXT NOT NULL DEFAULT '',
		logo_path TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		quote_number VARCHAR(64) NOT NULL,
		customer JSONB NOT NULL,
		project_description TEXT NOT NULL,
		location TEXT NOT NULL,
		items JSONB NOT NULL DEFAULT '[]',
		subtotal DOUBLE PRECISION NOT NULL,
		tax_amount DOUBLE PRECISION NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		notes TEXT,
		created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_created_date ON quotes (created_date DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
