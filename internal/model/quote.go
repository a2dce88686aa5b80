package model

import "time"

// DefaultCustomerCountry is applied when a quote is created without one.
const DefaultCustomerCountry = "السعودية"

type Customer struct {
	Name                   string  `json:"name" binding:"required"`
	TaxNumber              *string `json:"tax_number"`
	Street                 *string `json:"street"`
	Neighborhood           *string `json:"neighborhood"`
	Country                *string `json:"country"`
	City                   *string `json:"city"`
	CommercialRegistration *string `json:"commercial_registration"`
	Building               *string `json:"building"`
	PostalCode             *string `json:"postal_code"`
	AdditionalNumber       *string `json:"additional_number"`
	Phone                  *string `json:"phone"`
}

// QuoteItem totals are caller-supplied; TotalPrice is not derived from
// Quantity and UnitPrice.
type QuoteItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// Quote is a priced proposal. ID is the opaque unique identifier assigned at
// creation and immutable; QuoteNumber is the human-facing sequential number.
type Quote struct {
	ID                 string      `json:"id"`
	QuoteNumber        string      `json:"quote_number"`
	Customer           Customer    `json:"customer"`
	ProjectDescription string      `json:"project_description"`
	Location           string      `json:"location"`
	Items              []QuoteItem `json:"items"`
	Subtotal           float64     `json:"subtotal"`
	TaxAmount          float64     `json:"tax_amount"`
	TotalAmount        float64     `json:"total_amount"`
	Notes              *string     `json:"notes"`
	CreatedDate        time.Time   `json:"created_date"`
	UpdatedDate        time.Time   `json:"updated_date"`
}
