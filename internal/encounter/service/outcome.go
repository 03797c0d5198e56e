package service

import (
	"context"
	"errors"

	"pawtrol/internal/encounter/models"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
	"pawtrol/pkg/requestcontext"
)

// RecordOutcomeCommand carries a terminal disposition for an encounter.
type RecordOutcomeCommand struct {
	OfficerID   id.OfficerID
	EncounterID id.EncounterID
	Outcome     models.Outcome

	// Hand-off confirmations, meaningful only for a return-to-owner.
	OwnerIDVerified   bool
	SignatureCaptured bool
	Notes             string
}

// RecordOutcome closes an encounter exactly once. A return-to-owner is
// accepted only when the encounter's last scan released owner contact and
// both hand-off confirmations are present; shelter and other dispositions
// have no preconditions beyond an active encounter.
func (s *Service) RecordOutcome(ctx context.Context, cmd RecordOutcomeCommand) (*models.Encounter, error) {
	if err := s.officers.RequireVerified(ctx, cmd.OfficerID); err != nil {
		return nil, err
	}
	if err := requireEncounterID(cmd.EncounterID); err != nil {
		return nil, err
	}
	if !models.ValidTerminalOutcome(cmd.Outcome) {
		return nil, dErrors.New(dErrors.CodeValidation, "outcome must be one of rto, shelter, other")
	}

	enc, err := s.encounters.FindByID(ctx, cmd.EncounterID)
	if err != nil {
		return nil, wrapEncounterErr(err, "failed to load encounter")
	}
	if enc.OfficerID != cmd.OfficerID {
		return nil, dErrors.New(dErrors.CodeForbidden, "encounter belongs to another officer")
	}
	if !enc.IsActive() {
		return nil, dErrors.New(dErrors.CodeEncounterAlreadyClosed, "encounter is already closed")
	}

	if cmd.Outcome == models.OutcomeRTO {
		if err := validateRTO(enc, cmd); err != nil {
			return nil, err
		}
	}

	closed, err := s.encounters.Close(ctx, cmd.EncounterID, cmd.Outcome, requestcontext.Now(ctx))
	if err != nil {
		// A concurrent close can win between the read above and here.
		if errors.Is(err, sentinel.ErrInvalidState) {
			return nil, dErrors.New(dErrors.CodeEncounterAlreadyClosed, "encounter is already closed")
		}
		return nil, wrapEncounterErr(err, "failed to close encounter")
	}

	entry := audit.Entry{
		EncounterID:       closed.ID,
		OfficerID:         cmd.OfficerID,
		Action:            audit.ActionOutcomeRecorded,
		Outcome:           string(cmd.Outcome),
		OwnerIDVerified:   cmd.OwnerIDVerified,
		SignatureCaptured: cmd.SignatureCaptured,
	}
	if closed.BestMatchPetID != nil {
		entry.PetID = *closed.BestMatchPetID
	}
	if closed.BestMatchConfidence != nil {
		entry.Confidence = *closed.BestMatchConfidence
	}
	s.emitAudit(ctx, entry)

	if s.metrics != nil {
		s.metrics.IncrementOutcomesRecorded(string(cmd.Outcome))
	}
	s.logger.InfoContext(ctx, "outcome recorded",
		"encounter_id", closed.ID,
		"outcome", cmd.Outcome,
		"request_id", requestcontext.RequestID(ctx),
	)
	return closed, nil
}

// validateRTO enforces the hand-off preconditions for returning an animal to
// its owner.
func validateRTO(enc *models.Encounter, cmd RecordOutcomeCommand) error {
	if !enc.ContactDisclosed {
		return dErrors.New(dErrors.CodeRTOPreconditionFailed, "return to owner requires a high-confidence match with disclosed contact")
	}
	if !cmd.OwnerIDVerified {
		return dErrors.New(dErrors.CodeRTOPreconditionFailed, "return to owner requires owner identity verification")
	}
	if !cmd.SignatureCaptured {
		return dErrors.New(dErrors.CodeRTOPreconditionFailed, "return to owner requires a captured hand-off signature")
	}
	return nil
}
