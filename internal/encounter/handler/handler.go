package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawtrol/internal/encounter/models"
	"pawtrol/internal/encounter/service"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/platform/httputil"
	"pawtrol/pkg/requestcontext"
)

// Service defines the interface for encounter lifecycle operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	SubmitScan(ctx context.Context, cmd service.SubmitScanCommand) (*models.ScanResult, error)
	RecordOutcome(ctx context.Context, cmd service.RecordOutcomeCommand) (*models.Encounter, error)
	Get(ctx context.Context, officerID id.OfficerID, encounterID id.EncounterID) (*models.Encounter, error)
	ListByOfficer(ctx context.Context, officerID id.OfficerID) ([]*models.Encounter, error)
	AuditTrail(ctx context.Context, officerID id.OfficerID, encounterID id.EncounterID) ([]audit.Entry, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts session-protected encounter routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/scans", h.HandleSubmitScan)
	r.Get("/encounters/{id}", h.HandleGet)
	r.Post("/encounters/{id}/outcome", h.HandleRecordOutcome)
	r.Get("/encounters/{id}/audit", h.HandleAuditTrail)
	r.Get("/officers/{id}/encounters", h.HandleListByOfficer)
}

// HandleSubmitScan runs a scan and returns the match result, including owner
// contact when the disclosure threshold is met.
func (h *Handler) HandleSubmitScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := httputil.RequireOfficerID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[SubmitScanRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.SubmitScan(ctx, service.SubmitScanCommand{
		OfficerID:  officerID,
		Photo:      req.Photo(),
		MimeType:   req.MimeType,
		Location:   req.Location(),
		AnimalType: req.AnimalType,
		Breed:      req.Breed,
		Color:      req.Color,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "submit scan failed", "error", err, "request_id", requestID, "officer_id", officerID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleRecordOutcome closes an encounter with a terminal disposition.
func (h *Handler) HandleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := httputil.RequireOfficerID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	encounterID, err := id.ParseEncounterID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid encounter id"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[RecordOutcomeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	enc, err := h.service.RecordOutcome(ctx, service.RecordOutcomeCommand{
		OfficerID:         officerID,
		EncounterID:       encounterID,
		Outcome:           models.Outcome(req.Outcome),
		OwnerIDVerified:   req.OwnerIDVerified,
		SignatureCaptured: req.SignatureCaptured,
		Notes:             req.Notes,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "record outcome failed", "error", err, "request_id", requestID, "encounter_id", encounterID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toEncounterResponse(enc))
}

// HandleGet returns one encounter.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := httputil.RequireOfficerID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	encounterID, err := id.ParseEncounterID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid encounter id"))
		return
	}

	enc, err := h.service.Get(ctx, officerID, encounterID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get encounter failed", "error", err, "request_id", requestID, "encounter_id", encounterID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toEncounterResponse(enc))
}

// HandleAuditTrail returns the audit entries for one of the officer's
// encounters.
func (h *Handler) HandleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := httputil.RequireOfficerID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	encounterID, err := id.ParseEncounterID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid encounter id"))
		return
	}

	entries, err := h.service.AuditTrail(ctx, officerID, encounterID)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit trail failed", "error", err, "request_id", requestID, "encounter_id", encounterID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toAuditEntryResponses(entries))
}

// HandleListByOfficer returns an officer's own encounters. The path id must
// match the session officer.
func (h *Handler) HandleListByOfficer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := httputil.RequireOfficerID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	pathID, err := id.ParseOfficerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid officer id"))
		return
	}
	if pathID != officerID {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "encounter lists are visible to their owning officer only"))
		return
	}

	encs, err := h.service.ListByOfficer(ctx, officerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list encounters failed", "error", err, "request_id", requestID, "officer_id", officerID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toEncounterResponses(encs))
}
