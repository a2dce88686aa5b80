package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/tssco/quotes-service/internal/model"
)

// Fixed layout offsets, in points.
const (
	leftMargin   = 50.0
	topMargin    = 50.0
	bottomMargin = 100.0

	colIndex     = 50.0
	colDesc      = 80.0
	colQty       = 250.0
	colUnit      = 300.0
	colUnitPrice = 350.0
	colTotal     = 450.0

	descriptionLimit = 25
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the quote as an A4 document: title, metadata block,
// item table with page breaks, then the summary lines.
func (g *Generator) Generate(quote model.Quote, company model.Company) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	y := topMargin
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(leftMargin, y, fmt.Sprintf("Quote #%s", quote.QuoteNumber))
	y += 30

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(leftMargin, y, fmt.Sprintf("Company: %s", company.NameEn))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Customer: %s", quote.Customer.Name))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Project: %s", quote.ProjectDescription))
	y += 20
	pdf.Text(leftMargin, y, fmt.Sprintf("Location: %s", quote.Location))
	y += 40

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colIndex, y, "#")
	pdf.Text(colDesc, y, "Description")
	pdf.Text(colQty, y, "Qty")
	pdf.Text(colUnit, y, "Unit")
	pdf.Text(colUnitPrice, y, "Unit Price")
	pdf.Text(colTotal, y, "Total")
	y += 20

	pdf.SetFont("Helvetica", "", 9)
	for i, item := range quote.Items {
		pdf.Text(colIndex, y, strconv.Itoa(i+1))
		pdf.Text(colDesc, y, truncate(item.Description, descriptionLimit))
		pdf.Text(colQty, y, formatNumber(item.Quantity))
		pdf.Text(colUnit, y, item.Unit)
		pdf.Text(colUnitPrice, y, formatNumber(item.UnitPrice))
		pdf.Text(colTotal, y, formatNumber(item.TotalPrice))
		y += 15

		if y > pageHeight-bottomMargin {
			pdf.AddPage()
			y = topMargin
		}
	}

	y += 20
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colUnitPrice, y, "Subtotal:")
	pdf.Text(colTotal, y, formatNumber(quote.Subtotal))
	y += 15
	pdf.Text(colUnitPrice, y, "Tax (15%):")
	pdf.Text(colTotal, y, formatNumber(quote.TaxAmount))
	y += 15
	pdf.Text(colUnitPrice, y, "Total:")
	pdf.Text(colTotal, y, formatNumber(quote.TotalAmount))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// formatNumber renders a plain decimal value with no locale formatting.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
