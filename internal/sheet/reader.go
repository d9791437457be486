package sheet

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// Reader loads XLSX workbooks into cell matrices.
type Reader struct {
	logger *slog.Logger
}

func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadFile opens an XLSX file by path and returns the first sheet as a matrix.
func (r *Reader) ReadFile(path string) ([][]Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("sheet.close_error", "path", path, "error", cerr)
		}
	}()
	return r.matrix(f)
}

// Read parses XLSX bytes from src and returns the first sheet as a matrix.
func (r *Reader) Read(src io.Reader) ([][]Cell, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("sheet.close_error", "error", cerr)
		}
	}()
	return r.matrix(f)
}

func (r *Reader) matrix(f *excelize.File) ([][]Cell, error) {
	start := time.Now()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	name := sheets[0]

	// Raw values keep date cells as their numeric serials, which is what
	// NormalizeDate expects.
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	matrix := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, raw := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("cell name (%d,%d): %w", j+1, i+1, err)
			}
			ct, err := f.GetCellType(name, ref)
			if err != nil {
				return nil, fmt.Errorf("cell type %s: %w", ref, err)
			}
			cells[j] = classify(raw, ct)
		}
		matrix[i] = cells
	}

	r.logger.Info("sheet.read.ok",
		"sheet", name,
		"rows", len(matrix),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return matrix, nil
}

// classify tags a raw cell value using the workbook's own cell type, so an
// all-digit product code stored as text stays text. Numeric cells carry date
// serials, quantities and amounts.
func classify(raw string, ct excelize.CellType) Cell {
	if raw == "" {
		return EmptyCell()
	}
	switch ct {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return TextCell(raw)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberCell(v)
	}
	return TextCell(raw)
}
