package models

import (
	"time"

	"pawtrol/internal/ranking"
	"pawtrol/internal/registry"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
)

// Status is the encounter lifecycle state.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Outcome is the terminal disposition of an encounter.
// Outcome is none while the encounter is active; once closed it is set
// exactly once and is immutable thereafter.
type Outcome string

const (
	OutcomeNone    Outcome = "none"
	OutcomeRTO     Outcome = "rto"
	OutcomeShelter Outcome = "shelter"
	OutcomeOther   Outcome = "other"
)

// ValidTerminalOutcome reports whether o can close an encounter.
func ValidTerminalOutcome(o Outcome) bool {
	switch o {
	case OutcomeRTO, OutcomeShelter, OutcomeOther:
		return true
	}
	return false
}

// Location is a capture position in decimal degrees with an optional
// resolved address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Encounter is one found-animal event, owned by exactly one officer for its
// lifetime.
type Encounter struct {
	ID        id.EncounterID
	OfficerID id.OfficerID

	AnimalType string
	Breed      string
	Color      string
	Location   Location

	Status  Status
	Outcome Outcome

	// Best-match projection of the last scan. Nil until a scan returns at
	// least one candidate.
	BestMatchPetID      *id.PetID
	BestMatchConfidence *int

	// ContactDisclosed records whether the last scan cleared the disclosure
	// threshold. It is the precondition the outcome recorder checks before
	// accepting a return-to-owner.
	ContactDisclosed bool

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

// NewEncounter constructs an active encounter with no outcome.
func NewEncounter(encounterID id.EncounterID, officerID id.OfficerID, animalType, breed, color string, loc Location, now time.Time) (*Encounter, error) {
	if officerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "officer ID required")
	}
	return &Encounter{
		ID:         encounterID,
		OfficerID:  officerID,
		AnimalType: animalType,
		Breed:      breed,
		Color:      color,
		Location:   loc,
		Status:     StatusActive,
		Outcome:    OutcomeNone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsActive reports whether the encounter can still be scanned or closed.
func (e *Encounter) IsActive() bool {
	return e.Status == StatusActive
}

// AttachMatch records the best-match projection of a scan.
func (e *Encounter) AttachMatch(petID id.PetID, confidence int, disclosed bool, now time.Time) {
	e.BestMatchPetID = &petID
	e.BestMatchConfidence = &confidence
	e.ContactDisclosed = disclosed
	e.UpdatedAt = now
}

// ScanResult is what the officer sees after a scan. OwnerContact is non-nil
// iff HighConfidenceMatch is true; the disclosure policy enforces that, not
// the caller.
type ScanResult struct {
	Success             bool                   `json:"success"`
	EncounterID         string                 `json:"encounter_id"`
	ProcessingTimeMs    int64                  `json:"processing_time_ms"`
	MatchesFound        int                    `json:"matches_found"`
	Matches             []ranking.Candidate    `json:"matches"`
	HighConfidenceMatch bool                   `json:"high_confidence_match"`
	OwnerContact        *registry.OwnerContact `json:"owner_contact,omitempty"`
	Message             string                 `json:"message"`
}
