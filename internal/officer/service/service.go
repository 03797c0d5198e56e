// Package service orchestrates the officer directory: registration, the
// verification gate every other operation consults, and the statistics
// rollup.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	officermetrics "pawtrol/internal/officer/metrics"
	"pawtrol/internal/officer/models"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/sentinel"
	"pawtrol/pkg/requestcontext"
)

// freeMailDomains are consumer mail providers that mark a registration for
// manual review. Institutional addresses (department domains, .gov) pass
// straight into the normal verification queue.
var freeMailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"icloud.com":  true,
}

// Service implements the officer directory.
type Service struct {
	officers OfficerStore
	counter  EncounterCounter
	audit    AuditPublisher
	metrics  *officermetrics.Metrics
	logger   *slog.Logger
}

func New(officers OfficerStore, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		officers: officers,
		counter:  cfg.counter,
		audit:    cfg.auditPublisher,
		metrics:  cfg.metrics,
		logger:   logger,
	}
}

// RegisterCommand carries validated registration input.
type RegisterCommand struct {
	Name           string
	BadgeNumber    string
	Department     string
	DepartmentType models.DepartmentType
	Jurisdiction   string
	Email          string
	Phone          string
}

// Register creates an unverified officer. Registrations with a
// non-institutional contact address are flagged for manual review; the
// verification step itself belongs to the external collaborator.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*models.Officer, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || !govalidator.IsEmail(email) {
		return nil, dErrors.New(dErrors.CodeValidation, "a valid contact email is required")
	}

	officer, err := models.NewOfficer(
		id.OfficerID(uuid.New()),
		cmd.Name, cmd.BadgeNumber, cmd.Department, cmd.DepartmentType,
		cmd.Jurisdiction, email, cmd.Phone,
		requestcontext.Now(ctx),
	)
	if err != nil {
		return nil, err
	}
	officer.ReviewRequired = !institutionalEmail(email)

	if err := s.officers.Create(ctx, officer); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "badge number already registered for this department")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register officer")
	}

	s.logger.InfoContext(ctx, "officer registered",
		"officer_id", officer.ID,
		"department", officer.Department,
		"review_required", officer.ReviewRequired,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.Entry{
		OfficerID: officer.ID,
		Action:    audit.ActionOfficerRegistered,
	})

	if s.metrics != nil {
		s.metrics.IncrementOfficersRegistered()
		if officer.ReviewRequired {
			s.metrics.IncrementRegistrationsFlagged()
		}
	}
	return officer, nil
}

// Get returns a directory entry.
func (s *Service) Get(ctx context.Context, officerID id.OfficerID) (*models.Officer, error) {
	if err := requireOfficerID(officerID); err != nil {
		return nil, err
	}
	officer, err := s.officers.FindByID(ctx, officerID)
	if err != nil {
		return nil, wrapOfficerErr(err, "failed to load officer")
	}
	return officer, nil
}

// RequireVerified is the single gate consulted by every other operation.
// It must run before any other processing in an entry point.
func (s *Service) RequireVerified(ctx context.Context, officerID id.OfficerID) error {
	officer, err := s.Get(ctx, officerID)
	if err != nil {
		return err
	}
	if !officer.Verified {
		return dErrors.New(dErrors.CodeUnverifiedOfficer, "officer has not completed verification")
	}
	return nil
}

// MarkVerified records the external verification collaborator's decision.
// This core only ever reads the resulting flag; the credential checks that
// produce it are out of scope.
func (s *Service) MarkVerified(ctx context.Context, officerID id.OfficerID) (*models.Officer, error) {
	officer, err := s.Get(ctx, officerID)
	if err != nil {
		return nil, err
	}
	if err := officer.MarkVerified(requestcontext.Now(ctx)); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeConflict, "officer is already verified")
		}
		return nil, err
	}
	if err := s.officers.Update(ctx, officer); err != nil {
		return nil, wrapOfficerErr(err, "failed to update officer")
	}
	if s.metrics != nil {
		s.metrics.IncrementOfficersVerified()
	}
	return officer, nil
}

// Stats recomputes the officer's rollup from the encounter store.
func (s *Service) Stats(ctx context.Context, officerID id.OfficerID) (*models.Stats, error) {
	if _, err := s.Get(ctx, officerID); err != nil {
		return nil, err
	}
	if s.counter == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "encounter counter not configured")
	}

	scans, err := s.counter.CountByOfficer(ctx, officerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count scans")
	}
	matches, err := s.counter.CountMatchedByOfficer(ctx, officerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count matches")
	}
	rtos, err := s.counter.CountRTOByOfficer(ctx, officerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count RTOs")
	}
	return &models.Stats{TotalScans: scans, TotalMatches: matches, TotalRTOs: rtos}, nil
}

func (s *Service) emitAudit(ctx context.Context, entry audit.Entry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit entry",
			"action", entry.Action,
			"error", err,
		)
	}
}

// institutionalEmail reports whether the address looks like an agency one.
// Free consumer mail domains trigger manual review.
func institutionalEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	if strings.HasSuffix(domain, ".gov") || strings.HasSuffix(domain, ".gov.uk") {
		return true
	}
	return !freeMailDomains[domain]
}
