// Package importer turns a raw cell matrix into normalized sales records.
package importer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/entity"
	"github.com/tdnguyen/sales-ledger/internal/header"
	"github.com/tdnguyen/sales-ledger/internal/sheet"
	"github.com/tdnguyen/sales-ledger/internal/upc"
)

// Importer resolves columns against its keyword table and extracts records.
type Importer struct {
	keywords header.Keywords
	logger   *slog.Logger
}

func New(kw header.Keywords, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{keywords: kw, logger: logger}
}

// Import reads the row at headerOffset as the header, resolves columns, and
// extracts one record per retained data row, preserving row order. The full
// slice is built before being returned, so a caller can swap it into a store
// atomically. Rows that look like subtotal or footer lines are dropped.
func (im *Importer) Import(matrix [][]sheet.Cell, headerOffset int) ([]entity.Record, error) {
	start := time.Now()

	if headerOffset < 0 || headerOffset >= len(matrix) {
		return nil, fmt.Errorf("header row %d out of range (sheet has %d rows)", headerOffset, len(matrix))
	}

	headerRow := make([]string, len(matrix[headerOffset]))
	for i, c := range matrix[headerOffset] {
		headerRow[i] = c.String()
	}
	idx := header.Resolve(headerRow, im.keywords)

	records := make([]entity.Record, 0, len(matrix)-headerOffset-1)
	decoded := 0
	for _, row := range matrix[headerOffset+1:] {
		if !im.isDataRow(row) {
			continue
		}

		code := cellAt(row, idx[constants.FieldUPC]).String()
		rec := entity.Record{
			Date:     sheet.NormalizeDate(cellAt(row, idx[constants.FieldDate])),
			Bill:     cellAt(row, idx[constants.FieldBill]).String(),
			UPC:      code,
			Qty:      cellAt(row, idx[constants.FieldQty]).String(),
			Amount:   cellAt(row, idx[constants.FieldAmount]).String(),
			Customer: cellAt(row, idx[constants.FieldCustomer]).String(),
			Mobile:   cellAt(row, idx[constants.FieldMobile]).String(),
		}
		if len(code) == upc.CodeLength {
			attrs := upc.Decode(code)
			rec.SKU = attrs.SKU
			rec.Type = attrs.Type
			rec.Gender = attrs.Gender
			rec.Division = attrs.Division
			rec.Category = attrs.Category
			rec.Year = attrs.Year
			rec.Season = attrs.Season
			rec.Size = attrs.Size
			decoded++
		}
		records = append(records, rec)
	}

	im.logger.Info("import.ok",
		"rows", len(matrix),
		"records", len(records),
		"decoded", decoded,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

// isDataRow rejects spreadsheet subtotal and footer lines: a row is kept only
// if it has at least one text cell and none of its text cells carry the
// aggregate marker.
func (im *Importer) isDataRow(row []sheet.Cell) bool {
	marker := strings.ToLower(im.keywords.TotalMarker)
	hasText := false
	for _, c := range row {
		if c.Kind != sheet.KindText {
			continue
		}
		hasText = true
		if strings.Contains(strings.ToLower(c.Text), marker) {
			return false
		}
	}
	return hasText
}

// cellAt reads a resolved column, treating an absent column (header.NotFound)
// or a short row as an empty cell.
func cellAt(row []sheet.Cell, i int) sheet.Cell {
	if i < 0 || i >= len(row) {
		return sheet.EmptyCell()
	}
	return row[i]
}
