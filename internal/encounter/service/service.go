// Package service orchestrates the encounter lifecycle: scan submission
// against the external ranking collaborator, threshold-gated contact
// disclosure, and terminal outcome recording.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"pawtrol/internal/disclosure"
	encountermetrics "pawtrol/internal/encounter/metrics"
	"pawtrol/internal/encounter/models"
	"pawtrol/internal/ranking"
	"pawtrol/internal/registry"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
)

// Service implements the encounter lifecycle.
type Service struct {
	encounters EncounterStore
	officers   VerificationGate
	ranker     ranking.Client
	contacts   registry.Store
	policy     *disclosure.Policy
	audit      AuditPublisher
	metrics    *encountermetrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
}

func New(encounters EncounterStore, officers VerificationGate, ranker ranking.Client, contacts registry.Store, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	policy := cfg.policy
	if policy == nil {
		policy = disclosure.New(disclosure.DefaultThreshold)
	}
	return &Service{
		encounters: encounters,
		officers:   officers,
		ranker:     ranker,
		contacts:   contacts,
		policy:     policy,
		audit:      cfg.auditPublisher,
		metrics:    cfg.metrics,
		logger:     logger,
		tracer:     otel.Tracer("pawtrol/encounter"),
	}
}

// Get returns an encounter for a verified officer.
func (s *Service) Get(ctx context.Context, officerID id.OfficerID, encounterID id.EncounterID) (*models.Encounter, error) {
	if err := s.officers.RequireVerified(ctx, officerID); err != nil {
		return nil, err
	}
	if err := requireEncounterID(encounterID); err != nil {
		return nil, err
	}
	enc, err := s.encounters.FindByID(ctx, encounterID)
	if err != nil {
		return nil, wrapEncounterErr(err, "failed to load encounter")
	}
	return enc, nil
}

// ListByOfficer returns the officer's own encounters.
func (s *Service) ListByOfficer(ctx context.Context, officerID id.OfficerID) ([]*models.Encounter, error) {
	if err := s.officers.RequireVerified(ctx, officerID); err != nil {
		return nil, err
	}
	encs, err := s.encounters.ListByOfficer(ctx, officerID)
	if err != nil {
		return nil, wrapEncounterErr(err, "failed to list encounters")
	}
	return encs, nil
}

// AuditTrail returns the audit entries recorded for one of the officer's
// encounters. Entries carry pet references and disclosure flags only, never
// contact payloads.
func (s *Service) AuditTrail(ctx context.Context, officerID id.OfficerID, encounterID id.EncounterID) ([]audit.Entry, error) {
	enc, err := s.Get(ctx, officerID, encounterID)
	if err != nil {
		return nil, err
	}
	if enc.OfficerID != officerID {
		return nil, dErrors.New(dErrors.CodeForbidden, "encounter belongs to another officer")
	}
	if s.audit == nil {
		return nil, nil
	}
	entries, err := s.audit.List(ctx, encounterID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit trail")
	}
	return entries, nil
}

func (s *Service) emitAudit(ctx context.Context, entry audit.Entry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit entry",
			"action", entry.Action,
			"encounter_id", entry.EncounterID,
			"error", err,
		)
	}
}
