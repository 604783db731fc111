// Package metricstore keeps submitted telemetry records in process memory.
package metricstore

import (
	"sync"

	"github.com/dmitrymomot/clientmeta/svc/telemetry"
)

// Store is an append-only, insertion-ordered list of records. It is safe for
// concurrent use. Records are lost when the process exits.
type Store struct {
	mu      sync.RWMutex
	records []telemetry.Record
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Append adds rec and returns the number of stored records.
func (s *Store) Append(rec telemetry.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return len(s.records)
}

// ListAll returns a copy of every record in insertion order.
func (s *Store) ListAll() []telemetry.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]telemetry.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
