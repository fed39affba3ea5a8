package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

type settingsService interface {
	GetSettings(ctx context.Context, section domain.PolicySection, actor domain.Actor) (domain.PolicyRecord, error)
	ListSettings(ctx context.Context, actor domain.Actor) ([]domain.PolicyRecord, error)
	SaveSettings(ctx context.Context, section domain.PolicySection, values domain.PolicyDocument, expectedVersion *int, actor domain.Actor) (domain.PolicyRecord, error)
	ResetSettings(ctx context.Context, section domain.PolicySection, actor domain.Actor) (domain.PolicyRecord, error)
}

// SettingsHandler serves /admin/settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type saveSettingsRequest struct {
	Values          domain.PolicyDocument `json:"values"`
	ExpectedVersion *int                  `json:"expectedVersion"`
}

// List handles GET /admin/settings.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.ListSettings(r.Context(), actorOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]policyResponse, len(recs))
	for i, rec := range recs {
		out[i] = toPolicyResponse(rec)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Get handles GET /admin/settings/{section}.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	section, ok := pathSection(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.GetSettings(r.Context(), section, actorOf(r)))
}

// Save handles PUT /admin/settings/{section}. Values are shallow-merged.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	section, ok := pathSection(w, r)
	if !ok {
		return
	}
	var req saveSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r)(h.svc.SaveSettings(r.Context(), section, req.Values, req.ExpectedVersion, actorOf(r)))
}

// Reset handles POST /admin/settings/{section}/reset.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	section, ok := pathSection(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.svc.ResetSettings(r.Context(), section, actorOf(r)))
}

func (h *SettingsHandler) respond(w http.ResponseWriter, r *http.Request) func(domain.PolicyRecord, error) {
	return func(rec domain.PolicyRecord, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPolicyResponse(rec))
	}
}

func pathSection(w http.ResponseWriter, r *http.Request) (domain.PolicySection, bool) {
	section := domain.PolicySection(r.PathValue("section"))
	if !section.IsValid() {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "unknown settings section")
		return "", false
	}
	return section, true
}
