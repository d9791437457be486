// Package sheet is the spreadsheet import boundary. It turns the first
// worksheet of an XLSX export into a matrix of tagged cells so the rest of
// the pipeline never sees excelize types or raw cell strings.
package sheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind tags the three shapes a spreadsheet cell can take.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
)

// Cell is one spreadsheet cell, normalized to a tagged union at the boundary
// so ambiguous dynamic values never propagate downstream.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Text builds a text cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell builds a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: KindNumber, Number: v} }

// EmptyCell builds an empty cell.
func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

// String renders the cell the way it would appear in the sheet. Numeric cells
// keep their raw serial representation; empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// NormalizeDate converts a date cell to the sortable YYYY-MM-DD form.
// Numeric cells are Excel date serials; text cells are truncated at the first
// space, dropping any time-of-day suffix. Unconvertible cells yield "".
func NormalizeDate(c Cell) string {
	switch c.Kind {
	case KindNumber:
		t, err := excelize.ExcelDateToTime(c.Number, false)
		if err != nil {
			return ""
		}
		return t.Format("2006-01-02")
	case KindText:
		if c.Text == "" {
			return ""
		}
		return strings.SplitN(c.Text, " ", 2)[0]
	}
	return ""
}
