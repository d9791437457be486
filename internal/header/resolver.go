// Package header maps the semi-structured export's header row to column
// indexes. Header position and column order are not fixed, so resolution is
// fuzzy keyword matching over the configured vocabulary.
package header

import (
	"strings"

	"github.com/tdnguyen/sales-ledger/constants"
)

// NotFound marks a logical field whose keyword matched no header cell.
// Callers treat it as "column absent", never as an index.
const NotFound = -1

// Resolve maps each importable logical field to the index of the first header
// cell containing its keyword, skipping cells that carry the exclusion phrase.
// The customer column is resolved by exact case-insensitive match instead.
func Resolve(headerRow []string, kw Keywords) map[constants.FieldKey]int {
	find := func(keyword string) int {
		keyword = strings.ToLower(keyword)
		for i, h := range headerRow {
			cell := strings.ToLower(h)
			if cell == "" {
				continue
			}
			if strings.Contains(cell, keyword) && !strings.Contains(cell, strings.ToLower(kw.Exclude)) {
				return i
			}
		}
		return NotFound
	}

	findExact := func(label string) int {
		label = strings.ToLower(label)
		for i, h := range headerRow {
			if strings.ToLower(h) == label {
				return i
			}
		}
		return NotFound
	}

	return map[constants.FieldKey]int{
		constants.FieldDate:     find(kw.Date),
		constants.FieldBill:     find(kw.Bill),
		constants.FieldUPC:      find(kw.UPC),
		constants.FieldQty:      find(kw.Qty),
		constants.FieldAmount:   find(kw.Amount),
		constants.FieldMobile:   find(kw.Mobile),
		constants.FieldCustomer: findExact(kw.Customer),
	}
}
