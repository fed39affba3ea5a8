package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		msg := "invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", msg)
		return false
	}
	return true
}

// pathUUID parses the named path value as a UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads limit and offset. The service clamps them.
func pageParams(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &limit}, {"offset", &offset}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid "+p.name)
			return 0, 0, false
		}
		*p.dst = n
	}
	return limit, offset, true
}

func queryString(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

// errorMappings is checked in order; the first sentinel matched wins.
var errorMappings = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrValidation, http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{domain.ErrSelfDeleteForbidden, http.StatusForbidden, "SELF_DELETE_FORBIDDEN"},
	{domain.ErrSelfSuspendForbidden, http.StatusForbidden, "SELF_SUSPEND_FORBIDDEN"},
	{domain.ErrSelfDemoteForbidden, http.StatusForbidden, "SELF_DEMOTE_FORBIDDEN"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNoopTransition, http.StatusConflict, "NO_CHANGE"},
	{domain.ErrTerminalState, http.StatusConflict, "TERMINAL_STATE"},
	{domain.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
	{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
}

// errorStatus maps a domain error to its HTTP status, stable code and a
// client-safe message.
func errorStatus(err error) (int, string, string) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.target.Error()
		var te *domain.TransitionError
		if errors.As(err, &te) {
			msg = te.Error()
		}
		return m.status, m.code, msg
	}
	return http.StatusInternalServerError, "INTERNAL", "internal server error"
}

// handleError writes err as a JSON error. Unexpected errors are logged and
// their text is not exposed.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := errorStatus(err)

	body := errorBody{Error: errorDetail{Code: code, Message: msg}}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Error.Fields = ve.Errors
	}

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, body)
}
