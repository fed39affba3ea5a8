package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type grievanceService interface {
	GetGrievance(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.GrievanceView, error)
	ListGrievances(ctx context.Context, f domain.GrievanceFilter, actor domain.Actor) ([]domain.GrievanceView, int, error)
	ChangeGrievanceStatus(ctx context.Context, id uuid.UUID, to domain.GrievanceStatus, note string, actor domain.Actor) (domain.GrievanceView, error)
}

// GrievanceHandler serves /grievances.
type GrievanceHandler struct {
	svc grievanceService
	log *slog.Logger
}

// NewGrievanceHandler creates a GrievanceHandler.
func NewGrievanceHandler(svc grievanceService, logger *slog.Logger) *GrievanceHandler {
	return &GrievanceHandler{svc: svc, log: logger.With("handler", "grievances")}
}

type grievanceStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// List handles GET /grievances?status=&priority=&category=&open=&limit=&offset=.
func (h *GrievanceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	f := domain.GrievanceFilter{
		Category: queryString(r, "category"),
		OpenOnly: r.URL.Query().Get("open") == "true",
		Limit:    limit,
		Offset:   offset,
	}
	if v := queryString(r, "status"); v != nil {
		s := domain.GrievanceStatus(*v)
		f.Status = &s
	}
	if v := queryString(r, "priority"); v != nil {
		p := domain.GrievancePriority(*v)
		f.Priority = &p
	}

	views, total, err := h.svc.ListGrievances(r.Context(), f, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(views, total, f.Limit, f.Offset, toGrievanceResponse))
}

// Get handles GET /grievances/{id}.
func (h *GrievanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	v, err := h.svc.GetGrievance(r.Context(), id, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGrievanceResponse(v))
}

// ChangeStatus handles PUT /grievances/{id}/status.
func (h *GrievanceHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req grievanceStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.svc.ChangeGrievanceStatus(r.Context(), id, domain.GrievanceStatus(req.Status), req.Note, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGrievanceResponse(v))
}
