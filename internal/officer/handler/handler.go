package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawtrol/internal/officer/models"
	"pawtrol/internal/officer/service"
	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
	"pawtrol/pkg/platform/httputil"
	"pawtrol/pkg/requestcontext"
)

// Service defines the interface for officer directory operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Register(ctx context.Context, cmd service.RegisterCommand) (*models.Officer, error)
	Get(ctx context.Context, officerID id.OfficerID) (*models.Officer, error)
	MarkVerified(ctx context.Context, officerID id.OfficerID) (*models.Officer, error)
	Stats(ctx context.Context, officerID id.OfficerID) (*models.Stats, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts routes that do not require an officer session.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/officers", h.HandleRegister)
}

// Register mounts session-protected directory routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/officers/{id}", h.HandleGet)
	r.Get("/officers/{id}/stats", h.HandleStats)
}

// RegisterAdmin mounts routes for the external verification collaborator.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/officers/{id}/verify", h.HandleVerify)
}

// HandleRegister creates an unverified directory entry.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterOfficerRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	officer, err := h.service.Register(ctx, service.RegisterCommand{
		Name:           req.Name,
		BadgeNumber:    req.BadgeNumber,
		Department:     req.Department,
		DepartmentType: models.DepartmentType(req.DepartmentType),
		Jurisdiction:   req.Jurisdiction,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "register officer failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toOfficerResponse(officer))
}

// HandleGet returns a directory entry.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := id.ParseOfficerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid officer id"))
		return
	}

	officer, err := h.service.Get(ctx, officerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get officer failed", "error", err, "request_id", requestID, "officer_id", officerID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toOfficerResponse(officer))
}

// HandleStats returns the recomputed encounter rollup for an officer.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := id.ParseOfficerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid officer id"))
		return
	}

	stats, err := h.service.Stats(ctx, officerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "officer stats failed", "error", err, "request_id", requestID, "officer_id", officerID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleVerify records the external verification collaborator's approval.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	officerID, err := id.ParseOfficerID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid officer id"))
		return
	}

	officer, err := h.service.MarkVerified(ctx, officerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "verify officer failed", "error", err, "request_id", requestID, "officer_id", officerID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toOfficerResponse(officer))
}
