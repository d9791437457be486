package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/sales-ledger/internal/header"
	"github.com/tdnguyen/sales-ledger/internal/sheet"
)

func text(s string) sheet.Cell { return sheet.TextCell(s) }

func num(v float64) sheet.Cell { return sheet.NumberCell(v) }

func row(cells ...sheet.Cell) []sheet.Cell { return cells }

func headerMatrix(dataRows ...[]sheet.Cell) [][]sheet.Cell {
	matrix := make([][]sheet.Cell, 0, 7+len(dataRows))
	// Rows 1-6 of the export are title/banner rows.
	for i := 0; i < 6; i++ {
		matrix = append(matrix, row(text("BÁO CÁO BÁN HÀNG")))
	}
	matrix = append(matrix, row(text("Ngày"), text("Số HĐ"), text("Mã SP"), text("Số lượng"), text("Tổng tiền")))
	return append(matrix, dataRows...)
}

func TestImportEndToEnd(t *testing.T) {
	matrix := headerMatrix(
		row(text("2024-05-01"), text("INV1"), text("HU12A567891234"), num(2), text("500000")),
	)

	recs, err := New(header.DefaultKeywords(), nil).Import(matrix, 6)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "2024-05-01", r.Date)
	assert.Equal(t, "INV1", r.Bill)
	assert.Equal(t, "HU12A567891234", r.UPC)
	assert.Equal(t, "HU12A567891", r.SKU)
	assert.Equal(t, "2", r.Qty)
	assert.Equal(t, "500000", r.Amount)
	assert.Equal(t, "GOLF", r.Type)
	assert.Equal(t, "Male", r.Gender)
	assert.Equal(t, "202A", r.Year)
	assert.Equal(t, "5", r.Season)
	assert.Equal(t, "ACC", r.Division) // "12" is not an apparel category code
	assert.Equal(t, "", r.Promotion)
	assert.Equal(t, "", r.Cashier)
}

func TestImportSkipsFooterRows(t *testing.T) {
	matrix := headerMatrix(
		row(text("2024-05-01"), text("INV1"), text("HU12A567891234"), num(1), text("250000")),
		row(text("Tổng cộng"), sheet.EmptyCell(), sheet.EmptyCell(), num(1), num(250000)),
		row(num(45413), num(100), num(200)), // no text cells at all
	)

	recs, err := New(header.DefaultKeywords(), nil).Import(matrix, 6)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "INV1", recs[0].Bill)
}

func TestImportShortCodeLeavesDerivedEmpty(t *testing.T) {
	matrix := headerMatrix(
		row(text("2024-05-01"), text("INV2"), text("HU12"), num(1), text("100000")),
	)

	recs, err := New(header.DefaultKeywords(), nil).Import(matrix, 6)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "HU12", r.UPC)
	assert.Equal(t, "", r.SKU)
	assert.Equal(t, "", r.Type)
	assert.Equal(t, "", r.Gender)
	assert.Equal(t, "", r.Division)
}

func TestImportSerialDateNormalized(t *testing.T) {
	matrix := headerMatrix(
		row(num(45413), text("INV3"), text("ABC"), num(1), text("1000")),
	)

	recs, err := New(header.DefaultKeywords(), nil).Import(matrix, 6)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2024-05-01", recs[0].Date)
}

func TestImportMissingColumnsReadEmpty(t *testing.T) {
	matrix := [][]sheet.Cell{
		row(text("Ngày"), text("Mã SP")),
		row(text("2024-05-01"), text("HU12A567891234")),
	}

	recs, err := New(header.DefaultKeywords(), nil).Import(matrix, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].Bill)
	assert.Equal(t, "", recs[0].Qty)
	assert.Equal(t, "", recs[0].Amount)
}

func TestImportHeaderOffsetOutOfRange(t *testing.T) {
	_, err := New(header.DefaultKeywords(), nil).Import([][]sheet.Cell{row(text("x"))}, 6)
	assert.Error(t, err)
}
