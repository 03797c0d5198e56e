// Package memory provides an in-memory audit store for tests and local runs.
package memory

import (
	"context"
	"sync"

	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/audit"
)

// Store keeps audit entries in append order, guarded by a mutex.
type Store struct {
	mu      sync.RWMutex
	entries []audit.Entry
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, entry audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *Store) ListByEncounter(_ context.Context, encounterID id.EncounterID) ([]audit.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.Entry
	for _, e := range s.entries {
		if e.EncounterID == encounterID {
			out = append(out, e)
		}
	}
	return out, nil
}
