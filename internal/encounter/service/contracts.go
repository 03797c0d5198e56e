package service

import (
	"context"
	"errors"
	"time"

	"pawtrol/internal/encounter/models"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
)

// Store interfaces define persistence contracts.

type EncounterStore interface {
	Create(ctx context.Context, enc *models.Encounter) error
	FindByID(ctx context.Context, encounterID id.EncounterID) (*models.Encounter, error)
	Update(ctx context.Context, enc *models.Encounter) error
	// Close transitions an active encounter to closed. Under concurrent
	// close attempts exactly one caller succeeds; the rest get
	// sentinel.ErrInvalidState.
	Close(ctx context.Context, encounterID id.EncounterID, outcome models.Outcome, closedAt time.Time) (*models.Encounter, error)
	ListByOfficer(ctx context.Context, officerID id.OfficerID) ([]*models.Encounter, error)
}

// VerificationGate is implemented by the officer service. Every entry point
// consults it before doing anything else.
type VerificationGate interface {
	RequireVerified(ctx context.Context, officerID id.OfficerID) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, entry audit.Entry) error
	List(ctx context.Context, encounterID id.EncounterID) ([]audit.Entry, error)
}

func requireEncounterID(encounterID id.EncounterID) error {
	if encounterID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "encounter ID required")
	}
	return nil
}

func wrapEncounterErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "encounter not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
