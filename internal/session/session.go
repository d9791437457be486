// Package session wires the pipeline together for one interactive ledger
// session: the record store, the active filter set, the export date range,
// and the boundary services that act on them.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/aggregate"
	"github.com/tdnguyen/sales-ledger/internal/entity"
	"github.com/tdnguyen/sales-ledger/internal/export"
	"github.com/tdnguyen/sales-ledger/internal/filter"
	"github.com/tdnguyen/sales-ledger/internal/header"
	"github.com/tdnguyen/sales-ledger/internal/importer"
	"github.com/tdnguyen/sales-ledger/internal/remote"
	"github.com/tdnguyen/sales-ledger/internal/sheet"
	"github.com/tdnguyen/sales-ledger/internal/store"
)

// Saver is the remote persistence dependency; satisfied by *remote.Client.
type Saver interface {
	Save(ctx context.Context, records []entity.Record) error
}

// Session owns one user's ledger state. All operations run to completion
// synchronously; only the save call reaches the network.
type Session struct {
	store    *store.Store
	importer *importer.Importer
	exporter *export.Service
	saver    Saver
	logger   *slog.Logger

	mu        sync.Mutex
	filters   []filter.Predicate
	dateRange filter.DateRange
}

func New(kw header.Keywords, saver Saver, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:    store.New(),
		importer: importer.New(kw, logger),
		exporter: export.NewService(logger),
		saver:    saver,
		logger:   logger,
	}
}

// Import parses the cell matrix and replaces the store contents in one step.
// The previous record set survives any import failure; the swap happens only
// after the whole sheet has been parsed.
func (s *Session) Import(matrix [][]sheet.Cell, headerOffset int) (int, error) {
	records, err := s.importer.Import(matrix, headerOffset)
	if err != nil {
		return 0, err
	}
	s.store.ReplaceAll(records)
	return len(records), nil
}

// Records returns a snapshot of the full (unfiltered) record set.
func (s *Session) Records() []entity.Record {
	return s.store.All()
}

// AddFilter appends an exact-match predicate. An empty field or value is
// ignored; an unknown field is an error.
func (s *Session) AddFilter(field constants.FieldKey, value string) error {
	if field == "" || value == "" {
		return nil
	}
	if !constants.IsField(field) {
		return fmt.Errorf("unknown filter field %q", field)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, filter.Predicate{Field: field, Value: value})
	return nil
}

// RemoveFilter drops the predicate at index.
func (s *Session) RemoveFilter(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.filters) {
		return fmt.Errorf("filter index %d out of range", index)
	}
	s.filters = append(s.filters[:index], s.filters[index+1:]...)
	return nil
}

// Filters returns a snapshot of the active predicates.
func (s *Session) Filters() []filter.Predicate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]filter.Predicate, len(s.filters))
	copy(out, s.filters)
	return out
}

// SetDateRange sets the export date restriction (empty bounds are open).
func (s *Session) SetDateRange(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dateRange = filter.DateRange{From: from, To: to}
}

// FilteredRows recomputes the filtered view from the current store contents
// and predicates. The date range does not restrict the view; it applies only
// at export time.
func (s *Session) FilteredRows() []entity.Record {
	return filter.Apply(s.store.All(), s.Filters())
}

// UpdateCell edits one field of the record at index. The cashier field only
// accepts roster members or the empty string; derived fields are writable but
// never recomputed.
func (s *Session) UpdateCell(index int, field constants.FieldKey, value string) error {
	if !constants.IsField(field) {
		return fmt.Errorf("unknown field %q", field)
	}
	if field == constants.FieldCashier && value != "" && !constants.IsCashier(value) {
		return fmt.Errorf("cashier %q is not on the roster", value)
	}
	return s.store.UpdateField(index, field, value)
}

// Summary computes the daily roll-up over the full record set.
func (s *Session) Summary(today string) aggregate.Summary {
	return aggregate.Summarize(s.store.All(), today)
}

// SummaryText renders the shareable daily report for today's records.
func (s *Session) SummaryText(today string) string {
	return s.Summary(today).Text(today)
}

// Export writes the filtered view, restricted to the date range when one is
// set, to an XLSX file at path.
func (s *Session) Export(path string) (int, error) {
	s.mu.Lock()
	dr := s.dateRange
	s.mu.Unlock()

	rows := filter.ApplyRange(s.FilteredRows(), dr)
	if err := s.exporter.WriteFile(path, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Save posts the full record set (not the filtered view) to the remote
// endpoint. An empty store is skipped, matching the editing surface.
func (s *Session) Save(ctx context.Context) error {
	if s.store.Len() == 0 {
		s.logger.Info("save.skipped_empty")
		return nil
	}
	if s.saver == nil {
		return fmt.Errorf("no save endpoint configured")
	}
	return s.saver.Save(ctx, s.store.All())
}

var _ Saver = (*remote.Client)(nil)
