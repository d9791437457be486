// Package store holds the session's records in memory, in import order.
package store

import (
	"fmt"
	"sync"

	"github.com/tdnguyen/sales-ledger/constants"
	"github.com/tdnguyen/sales-ledger/internal/entity"
)

// Store is the in-memory record table. An import replaces the whole contents
// in one step; edits replace a single field in place. Order is insertion
// order and is preserved across edits.
type Store struct {
	mu      sync.RWMutex
	records []entity.Record
}

func New() *Store {
	return &Store{}
}

// ReplaceAll swaps in a freshly imported record set, discarding prior rows.
func (s *Store) ReplaceAll(records []entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// Append adds a record at the end.
func (s *Store) Append(rec entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// All returns a snapshot of the records. Mutating the snapshot does not
// affect the store.
func (s *Store) All() []entity.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// UpdateField replaces one field of the record at index. Derived fields are
// never recomputed here, even when the edit touches the product code.
func (s *Store) UpdateField(index int, field constants.FieldKey, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("record index %d out of range (store has %d records)", index, len(s.records))
	}
	s.records[index].Set(field, value)
	return nil
}

// Get returns the record at index.
func (s *Store) Get(index int) (entity.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.records) {
		return entity.Record{}, fmt.Errorf("record index %d out of range (store has %d records)", index, len(s.records))
	}
	return s.records[index], nil
}
