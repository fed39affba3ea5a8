package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type opportunityService interface {
	GetOpportunity(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.OpportunityView, error)
	ListOpportunities(ctx context.Context, f domain.OpportunityFilter, actor domain.Actor) ([]domain.OpportunityView, int, error)
	ApproveOpportunity(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.OpportunityView, error)
	UnapproveOpportunity(ctx context.Context, id uuid.UUID, actor domain.Actor) (domain.OpportunityView, error)
}

// OpportunityHandler serves /opportunities.
type OpportunityHandler struct {
	svc opportunityService
	log *slog.Logger
}

// NewOpportunityHandler creates an OpportunityHandler.
func NewOpportunityHandler(svc opportunityService, logger *slog.Logger) *OpportunityHandler {
	return &OpportunityHandler{svc: svc, log: logger.With("handler", "opportunities")}
}

// List handles GET /opportunities?type=&approved=&limit=&offset=.
func (h *OpportunityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	f := domain.OpportunityFilter{
		Type:   queryString(r, "type"),
		Limit:  limit,
		Offset: offset,
	}
	if v := queryString(r, "approved"); v != nil {
		approved, err := strconv.ParseBool(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid approved")
			return
		}
		f.Approved = &approved
	}

	views, total, err := h.svc.ListOpportunities(r.Context(), f, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newList(views, total, f.Limit, f.Offset, toOpportunityResponse))
}

// Get handles GET /opportunities/{id}.
func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.GetOpportunity)
}

// Approve handles POST /opportunities/{id}/approve.
func (h *OpportunityHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.ApproveOpportunity)
}

// Unapprove handles POST /opportunities/{id}/unapprove.
func (h *OpportunityHandler) Unapprove(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.UnapproveOpportunity)
}

func (h *OpportunityHandler) byID(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, domain.Actor) (domain.OpportunityView, error)) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	v, err := fn(r.Context(), id, actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOpportunityResponse(v))
}
