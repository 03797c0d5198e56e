package store

import (
	"context"
	"sync"
	"time"

	"pawtrol/internal/encounter/models"
	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
)

// InMemoryStore keeps encounters in process memory. It backs unit tests and
// local runs without a database.
type InMemoryStore struct {
	mu         sync.RWMutex
	encounters map[id.EncounterID]*models.Encounter
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		encounters: make(map[id.EncounterID]*models.Encounter),
	}
}

func (s *InMemoryStore) Create(_ context.Context, enc *models.Encounter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.encounters[enc.ID]; exists {
		return sentinel.ErrConflict
	}
	c := *enc
	s.encounters[enc.ID] = &c
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, encounterID id.EncounterID) (*models.Encounter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enc, ok := s.encounters[encounterID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := *enc
	return &c, nil
}

func (s *InMemoryStore) Update(_ context.Context, enc *models.Encounter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.encounters[enc.ID]; !ok {
		return sentinel.ErrNotFound
	}
	c := *enc
	s.encounters[enc.ID] = &c
	return nil
}

// Close transitions an active encounter to closed with the given outcome.
// Exactly one caller wins; later callers get ErrInvalidState.
func (s *InMemoryStore) Close(_ context.Context, encounterID id.EncounterID, outcome models.Outcome, closedAt time.Time) (*models.Encounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, ok := s.encounters[encounterID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if enc.Status != models.StatusActive {
		return nil, sentinel.ErrInvalidState
	}
	enc.Status = models.StatusClosed
	enc.Outcome = outcome
	enc.ClosedAt = &closedAt
	enc.UpdatedAt = closedAt
	c := *enc
	return &c, nil
}

func (s *InMemoryStore) ListByOfficer(_ context.Context, officerID id.OfficerID) ([]*models.Encounter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Encounter
	for _, enc := range s.encounters {
		if enc.OfficerID == officerID {
			c := *enc
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *InMemoryStore) CountByOfficer(_ context.Context, officerID id.OfficerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, enc := range s.encounters {
		if enc.OfficerID == officerID {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) CountMatchedByOfficer(_ context.Context, officerID id.OfficerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, enc := range s.encounters {
		if enc.OfficerID == officerID && enc.BestMatchPetID != nil {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) CountRTOByOfficer(_ context.Context, officerID id.OfficerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, enc := range s.encounters {
		if enc.OfficerID == officerID && enc.Outcome == models.OutcomeRTO {
			n++
		}
	}
	return n, nil
}
