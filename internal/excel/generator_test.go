package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tssco/quotes-service/internal/model"
)

func sampleQuote() model.Quote {
	return model.Quote{
		ID:                 "q-1",
		QuoteNumber:        "1",
		Customer:           model.Customer{Name: "Acme Trading"},
		ProjectDescription: "Perimeter fencing",
		Location:           "Jeddah",
		Items: []model.QuoteItem{
			{Description: "Fence panel", Quantity: 10, Unit: "pc", UnitPrice: 50, TotalPrice: 500},
		},
		Subtotal:    500,
		TaxAmount:   75,
		TotalAmount: 575,
	}
}

func TestGenerate_CellValues(t *testing.T) {
	company := model.DefaultCompany()
	content, err := NewGenerator().Generate(sampleQuote(), company)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheet := "Quote_1"
	sheets := file.GetSheetList()
	require.Contains(t, sheets, sheet)

	cell := func(ref string) string {
		value, err := file.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Quote #1", cell("A1"))
	assert.Equal(t, "Company: "+company.NameAr, cell("A2"))
	assert.Equal(t, "Customer: Acme Trading", cell("A3"))
	assert.Equal(t, "Project: Perimeter fencing", cell("A4"))
	assert.Equal(t, "Location: Jeddah", cell("A5"))

	// Separator row stays blank.
	assert.Equal(t, "", cell("A6"))

	assert.Equal(t, "#", cell("A7"))
	assert.Equal(t, "Description", cell("B7"))
	assert.Equal(t, "Quantity", cell("C7"))
	assert.Equal(t, "Unit", cell("D7"))
	assert.Equal(t, "Unit Price", cell("E7"))
	assert.Equal(t, "Total", cell("F7"))

	assert.Equal(t, "1", cell("A8"))
	assert.Equal(t, "Fence panel", cell("B8"))
	assert.Equal(t, "10", cell("C8"))
	assert.Equal(t, "pc", cell("D8"))
	assert.Equal(t, "50", cell("E8"))
	assert.Equal(t, "500", cell("F8"))

	assert.Equal(t, "Subtotal:", cell("E10"))
	assert.Equal(t, "500", cell("F10"))
	assert.Equal(t, "Tax (15%):", cell("E11"))
	assert.Equal(t, "75", cell("F11"))
	assert.Equal(t, "Total:", cell("E12"))
	assert.Equal(t, "575", cell("F12"))
}

func TestGenerate_ItemsKeepOrder(t *testing.T) {
	quote := sampleQuote()
	quote.Items = []model.QuoteItem{
		{Description: "Excavation", Quantity: 1, Unit: "job", UnitPrice: 100, TotalPrice: 100},
		{Description: "Fence panel", Quantity: 10, Unit: "pc", UnitPrice: 50, TotalPrice: 500},
		{Description: "Gate", Quantity: 2, Unit: "pc", UnitPrice: 250, TotalPrice: 500},
	}

	content, err := NewGenerator().Generate(quote, model.DefaultCompany())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	for i, want := range []string{"Excavation", "Fence panel", "Gate"} {
		value, err := file.GetCellValue("Quote_1", excelRef('B', 8+i))
		require.NoError(t, err)
		assert.Equal(t, want, value)
	}
}

func TestGenerate_LongQuoteNumberSheetName(t *testing.T) {
	quote := sampleQuote()
	quote.QuoteNumber = "123456789012345678901234567890123"

	content, err := NewGenerator().Generate(quote, model.DefaultCompany())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 1)
	assert.LessOrEqual(t, len(sheets[0]), 31)
}

func excelRef(col rune, row int) string {
	name, _ := excelize.CoordinatesToCellName(int(col-'A')+1, row)
	return name
}
