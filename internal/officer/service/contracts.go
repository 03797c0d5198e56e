package service

import (
	"context"
	"errors"

	"pawtrol/internal/officer/models"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
)

// Store interfaces define persistence contracts.

type OfficerStore interface {
	Create(ctx context.Context, officer *models.Officer) error
	FindByID(ctx context.Context, officerID id.OfficerID) (*models.Officer, error)
	Update(ctx context.Context, officer *models.Officer) error
}

// EncounterCounter is implemented by the encounter store. The statistics
// rollup recomputes on each read instead of maintaining counters.
type EncounterCounter interface {
	CountByOfficer(ctx context.Context, officerID id.OfficerID) (int, error)
	CountMatchedByOfficer(ctx context.Context, officerID id.OfficerID) (int, error)
	CountRTOByOfficer(ctx context.Context, officerID id.OfficerID) (int, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, entry audit.Entry) error
}

// ID validation and error wrapping helpers reduce repetition in service methods.

func requireOfficerID(officerID id.OfficerID) error {
	if officerID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "officer ID required")
	}
	return nil
}

func wrapOfficerErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "officer not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}
