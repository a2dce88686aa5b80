package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tssco/quotes-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the quote as a single-sheet workbook: a header block,
// one row per line item in original order, then the summary rows.
func (g *Generator) Generate(quote model.Quote, company model.Company) ([]byte, error) {
	file := excelize.NewFile()

	sheet := sheetName(quote.QuoteNumber)
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", fmt.Sprintf("Quote #%s", quote.QuoteNumber))
	set("A2", fmt.Sprintf("Company: %s", company.NameAr))
	set("A3", fmt.Sprintf("Customer: %s", quote.Customer.Name))
	set("A4", fmt.Sprintf("Project: %s", quote.ProjectDescription))
	set("A5", fmt.Sprintf("Location: %s", quote.Location))

	tableRow := 7
	headers := []string{"#", "Description", "Quantity", "Unit", "Unit Price", "Total"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, item := range quote.Items {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), i+1)
		set(fmt.Sprintf("B%d", row), item.Description)
		set(fmt.Sprintf("C%d", row), item.Quantity)
		set(fmt.Sprintf("D%d", row), item.Unit)
		set(fmt.Sprintf("E%d", row), item.UnitPrice)
		set(fmt.Sprintf("F%d", row), item.TotalPrice)
	}

	summaryRow := tableRow + len(quote.Items) + 2
	set(fmt.Sprintf("E%d", summaryRow), "Subtotal:")
	set(fmt.Sprintf("F%d", summaryRow), quote.Subtotal)
	set(fmt.Sprintf("E%d", summaryRow+1), "Tax (15%):")
	set(fmt.Sprintf("F%d", summaryRow+1), quote.TaxAmount)
	set(fmt.Sprintf("E%d", summaryRow+2), "Total:")
	set(fmt.Sprintf("F%d", summaryRow+2), quote.TotalAmount)

	_ = file.SetColWidth(sheet, "A", "A", 6)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	_ = file.SetColWidth(sheet, "C", "D", 12)
	_ = file.SetColWidth(sheet, "E", "F", 14)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName keeps the title within the 31-character sheet name limit.
func sheetName(quoteNumber string) string {
	name := fmt.Sprintf("Quote_%s", quoteNumber)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
