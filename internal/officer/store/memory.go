// Package store provides officer directory persistence.
package store

import (
	"context"
	"strings"
	"sync"

	"pawtrol/internal/officer/models"
	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
)

// InMemoryStore keeps officers in a map, guarded by a mutex. Badge numbers
// are unique per department, matching the postgres constraint.
type InMemoryStore struct {
	mu       sync.RWMutex
	officers map[id.OfficerID]models.Officer
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{officers: make(map[id.OfficerID]models.Officer)}
}

func (s *InMemoryStore) Create(_ context.Context, officer *models.Officer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.officers {
		if existing.BadgeNumber != "" &&
			strings.EqualFold(existing.BadgeNumber, officer.BadgeNumber) &&
			strings.EqualFold(existing.Department, officer.Department) {
			return sentinel.ErrConflict
		}
	}
	s.officers[officer.ID] = *officer
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, officerID id.OfficerID) (*models.Officer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	officer, ok := s.officers[officerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	o := officer
	return &o, nil
}

func (s *InMemoryStore) Update(_ context.Context, officer *models.Officer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.officers[officer.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.officers[officer.ID] = *officer
	return nil
}
