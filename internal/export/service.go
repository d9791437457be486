// Package export serializes a record view to a single-sheet XLSX workbook.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/entity"
)

// DefaultFilename is the fixed name the export is written under.
const DefaultFilename = "sales_export.xlsx"

const sheetName = "Sales"

// Service produces XLSX bytes for the currently filtered record view.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteBuffer renders records into an XLSX workbook and returns its bytes.
// Columns follow the canonical field order with display labels as the header
// row; all values are written as strings, exactly as held in the store.
func (s *Service) WriteBuffer(records []entity.Record) (*bytes.Buffer, error) {
	start := time.Now()

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, field := range constants.Fields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, field.Label); err != nil {
			return nil, fmt.Errorf("write header %s: %w", field.Key, err)
		}
	}

	for row, rec := range records {
		for col, v := range rec.Values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	// Widen the identifier-ish columns.
	_ = f.SetColWidth(sheetName, "A", "A", 12) // date
	_ = f.SetColWidth(sheetName, "C", "D", 18) // upc, sku
	_ = f.SetColWidth(sheetName, "G", "H", 16) // customer, mobile

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

// WriteFile renders records and saves the workbook at path.
func (s *Service) WriteFile(path string, records []entity.Record) error {
	buf, err := s.WriteBuffer(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
