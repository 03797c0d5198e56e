package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pawtrol/internal/encounter/models"
	"pawtrol/internal/ranking"
	"pawtrol/internal/registry"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
	"pawtrol/pkg/requestcontext"

	"github.com/google/uuid"
)

// SubmitScanCommand carries one field scan.
type SubmitScanCommand struct {
	OfficerID  id.OfficerID
	Photo      []byte
	MimeType   string
	Location   *models.Location
	AnimalType string
	Breed      string
	Color      string
}

// SubmitScan runs the full scan pipeline: verification gate, input checks,
// encounter creation, the ranking call, and the disclosure decision. A
// ranking failure leaves the created encounter active with no outcome so the
// officer can retry by submitting again.
func (s *Service) SubmitScan(ctx context.Context, cmd SubmitScanCommand) (*models.ScanResult, error) {
	started := time.Now()

	if err := s.officers.RequireVerified(ctx, cmd.OfficerID); err != nil {
		return nil, err
	}
	if len(cmd.Photo) == 0 {
		s.countScanFailure("photo_missing")
		return nil, dErrors.New(dErrors.CodePhotoMissing, "a photo is required to submit a scan")
	}
	if cmd.Location == nil {
		s.countScanFailure("location_unavailable")
		return nil, dErrors.New(dErrors.CodeLocationUnavailable, "capture location is required to submit a scan")
	}

	now := requestcontext.Now(ctx)
	enc, err := models.NewEncounter(
		id.EncounterID(uuid.New()),
		cmd.OfficerID,
		cmd.AnimalType, cmd.Breed, cmd.Color,
		*cmd.Location,
		now,
	)
	if err != nil {
		return nil, err
	}
	if err := s.encounters.Create(ctx, enc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create encounter")
	}

	candidates, err := s.rank(ctx, ranking.Request{
		Photo:     cmd.Photo,
		MimeType:  cmd.MimeType,
		Latitude:  cmd.Location.Latitude,
		Longitude: cmd.Location.Longitude,
		Address:   cmd.Location.Address,
	})
	if err != nil {
		s.countScanFailure("ranking_unavailable")
		s.logger.ErrorContext(ctx, "ranking collaborator call failed",
			"encounter_id", enc.ID,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeScanNetworkFailure, "matching service unavailable")
	}
	candidates = ranking.Normalize(candidates)

	result := &models.ScanResult{
		Success:      true,
		EncounterID:  enc.ID.String(),
		MatchesFound: len(candidates),
		Matches:      candidates,
		Message:      scanMessage(len(candidates), false),
	}

	decision := s.policy.Decide(candidates)
	var contact *registry.OwnerContact
	if decision.Reveal {
		contact, err = s.lookupContact(ctx, decision.PetID)
		if err != nil {
			return nil, err
		}
	}

	if len(candidates) > 0 {
		disclosed := decision.Reveal
		top := candidates[0]
		enc.AttachMatch(top.PetID, top.Confidence, disclosed, now)
		if err := s.encounters.Update(ctx, enc); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record scan result")
		}
		result.HighConfidenceMatch = disclosed
		result.OwnerContact = contact
		result.Message = scanMessage(len(candidates), disclosed)

		s.emitAudit(ctx, audit.Entry{
			EncounterID: enc.ID,
			OfficerID:   cmd.OfficerID,
			Action:      audit.ActionScanSubmitted,
			PetID:       top.PetID,
			Confidence:  top.Confidence,
		})
		if disclosed {
			s.emitAudit(ctx, audit.Entry{
				EncounterID:      enc.ID,
				OfficerID:        cmd.OfficerID,
				Action:           audit.ActionContactDisclosed,
				PetID:            decision.PetID,
				Confidence:       top.Confidence,
				ContactDisclosed: true,
			})
			if s.metrics != nil {
				s.metrics.IncrementContactsDisclosed()
			}
		}
	} else {
		s.emitAudit(ctx, audit.Entry{
			EncounterID: enc.ID,
			OfficerID:   cmd.OfficerID,
			Action:      audit.ActionScanSubmitted,
		})
	}

	elapsed := time.Since(started)
	result.ProcessingTimeMs = elapsed.Milliseconds()
	if s.metrics != nil {
		s.metrics.IncrementScansSubmitted()
		s.metrics.ObserveScanDuration(elapsed)
	}

	s.logger.InfoContext(ctx, "scan processed",
		"encounter_id", enc.ID,
		"matches_found", result.MatchesFound,
		"contact_disclosed", result.HighConfidenceMatch,
		"request_id", requestcontext.RequestID(ctx),
	)
	return result, nil
}

// rank wraps the collaborator call in a span so slow or failing matches show
// up in traces with the candidate count attached.
func (s *Service) rank(ctx context.Context, req ranking.Request) ([]ranking.Candidate, error) {
	ctx, span := s.tracer.Start(ctx, "ranking.Rank", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	candidates, err := s.ranker.Rank(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("ranking.candidates", len(candidates)))
	return candidates, nil
}

// lookupContact resolves the disclosure subject's owner record. A pet the
// matcher knows but the registry does not is a data inconsistency between
// collaborators, surfaced as an internal error rather than a silent partial
// disclosure.
func (s *Service) lookupContact(ctx context.Context, petID id.PetID) (*registry.OwnerContact, error) {
	contact, err := s.contacts.FindByPet(ctx, petID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeInternal, "owner contact record missing for matched pet")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load owner contact")
	}
	return contact, nil
}

func (s *Service) countScanFailure(reason string) {
	if s.metrics != nil {
		s.metrics.IncrementScansFailed(reason)
	}
}

func scanMessage(matches int, disclosed bool) string {
	switch {
	case matches == 0:
		return "No matches found. Consider transporting to a shelter for a chip scan."
	case disclosed:
		return "High-confidence match found. Owner contact information released."
	default:
		return fmt.Sprintf("%d possible match(es) found, none above the disclosure threshold.", matches)
	}
}
