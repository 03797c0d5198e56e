// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "pawtrol/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing an OfficerID where an EncounterID is expected.
type (
	OfficerID   uuid.UUID
	EncounterID uuid.UUID
	AuditID     uuid.UUID
)

// PetID is the registry-assigned identifier for a pet (e.g. "pet-00421").
// It is opaque to this service; the ranking collaborator and the owner
// registry agree on its format.
type PetID string

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseOfficerID(s string) (OfficerID, error) {
	id, err := parseUUID(s, "officer ID")
	return OfficerID(id), err
}

func ParseEncounterID(s string) (EncounterID, error) {
	id, err := parseUUID(s, "encounter ID")
	return EncounterID(id), err
}

func ParseAuditID(s string) (AuditID, error) {
	id, err := parseUUID(s, "audit ID")
	return AuditID(id), err
}

func ParsePetID(s string) (PetID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "pet ID cannot be empty")
	}
	return PetID(s), nil
}

// String methods - for logging and debugging.

func (id OfficerID) String() string   { return uuid.UUID(id).String() }
func (id EncounterID) String() string { return uuid.UUID(id).String() }
func (id AuditID) String() string     { return uuid.UUID(id).String() }
func (id PetID) String() string       { return string(id) }

// IsNil checks - used for service-layer validation.

func (id OfficerID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id EncounterID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id AuditID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id PetID) IsNil() bool       { return id == "" }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here; use IsNil() at the service layer for business
// validation so store lookups can return proper "not found" errors.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
