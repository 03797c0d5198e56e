package registry

import (
	"context"
	"sync"

	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
)

// InMemoryStore keeps contact records in a map, guarded by a mutex.
type InMemoryStore struct {
	mu       sync.RWMutex
	contacts map[id.PetID]OwnerContact
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{contacts: make(map[id.PetID]OwnerContact)}
}

func (s *InMemoryStore) FindByPet(_ context.Context, petID id.PetID) (*OwnerContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contact, ok := s.contacts[petID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := contact
	return &c, nil
}

func (s *InMemoryStore) Upsert(_ context.Context, contact *OwnerContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[contact.PetID] = *contact
	return nil
}
