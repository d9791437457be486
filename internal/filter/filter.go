// Package filter derives exact-match views over a record slice. Filtering is
// a pure projection: it is recomputed from the current predicates and store
// contents on every use, never stored as an independent subset.
package filter

import (
	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/entity"
)

// Predicate matches a record when the named field equals Value exactly.
// No substring matching, no coercion.
type Predicate struct {
	Field constants.FieldKey `json:"field"`
	Value string             `json:"value"`
}

// DateRange restricts records to From <= date <= To, comparing the normalized
// YYYY-MM-DD strings lexicographically. An empty bound is open.
type DateRange struct {
	From string
	To   string
}

// Contains reports whether the date string falls inside the range.
func (dr DateRange) Contains(date string) bool {
	if dr.From != "" && date < dr.From {
		return false
	}
	if dr.To != "" && date > dr.To {
		return false
	}
	return true
}

// IsZero reports whether both bounds are open.
func (dr DateRange) IsZero() bool {
	return dr.From == "" && dr.To == ""
}

// Apply returns the records matching every predicate, in input order. An
// empty predicate list returns the input unchanged.
func Apply(records []entity.Record, predicates []Predicate) []entity.Record {
	if len(predicates) == 0 {
		return records
	}
	out := make([]entity.Record, 0, len(records))
	for _, rec := range records {
		if matches(&rec, predicates) {
			out = append(out, rec)
		}
	}
	return out
}

// ApplyRange keeps records whose date falls inside the range.
func ApplyRange(records []entity.Record, dr DateRange) []entity.Record {
	if dr.IsZero() {
		return records
	}
	out := make([]entity.Record, 0, len(records))
	for _, rec := range records {
		if dr.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec *entity.Record, predicates []Predicate) bool {
	for _, p := range predicates {
		if rec.Get(p.Field) != p.Value {
			return false
		}
	}
	return true
}
