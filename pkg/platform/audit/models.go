package audit

import (
	"context"
	"time"

	id "pawtrol/pkg/domain"
)

// Action labels the audited operation.
type Action string

const (
	ActionOfficerRegistered Action = "officer_registered"
	ActionScanSubmitted     Action = "scan_submitted"
	ActionContactDisclosed  Action = "contact_disclosed"
	ActionOutcomeRecorded   Action = "outcome_recorded"
)

// Entry is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
//
// Owner contact payloads are never part of an entry. When a disclosure
// happens only the pet reference and the ContactDisclosed flag are retained,
// so the audit trail can prove a disclosure without re-exposing the data.
type Entry struct {
	ID          id.AuditID
	EncounterID id.EncounterID
	OfficerID   id.OfficerID
	Action      Action
	Timestamp   time.Time

	// Scan context.
	PetID            id.PetID
	Confidence       int
	ContactDisclosed bool

	// Outcome context. The confirmation flags make a return-to-owner entry
	// self-contained evidence of the hand-off checks performed in the field.
	Outcome           string
	OwnerIDVerified   bool
	SignatureCaptured bool

	// RequestID correlates the entry with HTTP request logs.
	RequestID string
}

// Store is the append-only persistence contract for audit entries.
// Entries are immutable once appended; there is no update or delete.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	ListByEncounter(ctx context.Context, encounterID id.EncounterID) ([]Entry, error)
}
