// Package aggregate computes the same-day sales summary shown next to the
// ledger and copied into the daily report message.
package aggregate

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tdnguyen/sales-ledger/internal/entity"
	"github.com/tdnguyen/sales-ledger/internal/upc"
)

// Summary is the daily roll-up over eligible records: full-length product
// code and a date equal to the reference date.
type Summary struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalItems        int     `json:"total_items"`
	TotalTransactions int     `json:"total_transactions"`
}

// Today returns the reference date for "today" in the sortable form the
// pipeline normalizes dates to.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Summarize reduces records to the daily summary for the given date.
// Unparseable amounts and quantities count as zero; transactions are distinct
// bill+date pairs so multi-line bills count once. Pure over its input and
// recomputable from any filtered or unfiltered view.
func Summarize(records []entity.Record, today string) Summary {
	var sum Summary
	bills := make(map[string]struct{})
	for _, rec := range records {
		if len(rec.UPC) != upc.CodeLength || rec.Date != today {
			continue
		}
		if v, err := strconv.ParseFloat(rec.Amount, 64); err == nil {
			sum.TotalAmount += v
		}
		if n, err := strconv.Atoi(rec.Qty); err == nil {
			sum.TotalItems += n
		}
		bills[rec.Bill+rec.Date] = struct{}{}
	}
	sum.TotalTransactions = len(bills)
	return sum
}

// Text renders the summary as the shareable daily report block.
func (s Summary) Text(today string) string {
	return fmt.Sprintf("Date: %s\nTotal Sale: %v\nItems: %d\nTrans: %d",
		today, s.TotalAmount, s.TotalItems, s.TotalTransactions)
}
