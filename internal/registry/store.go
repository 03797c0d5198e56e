package registry

import (
	"context"

	id "pawtrol/pkg/domain"
)

// Store is the persistence contract for owner contact records.
type Store interface {
	// FindByPet returns the contact record for a pet, or sentinel.ErrNotFound.
	FindByPet(ctx context.Context, petID id.PetID) (*OwnerContact, error)
	// Upsert creates or replaces the contact record for a pet.
	Upsert(ctx context.Context, contact *OwnerContact) error
}
