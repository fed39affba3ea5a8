package rest

//go:generate moq -out user_service_mock_test.go -pkg rest . userService
//go:generate moq -out settings_service_mock_test.go -pkg rest . settingsService
//go:generate moq -out grievance_service_mock_test.go -pkg rest . grievanceService
//go:generate moq -out opportunity_service_mock_test.go -pkg rest . opportunityService
//go:generate moq -out course_service_mock_test.go -pkg rest . courseService

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
	"github.com/heartmarshall/campusdesk-backend/pkg/ctxutil"
)

var (
	testNow   = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	testAdmin = domain.Actor{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), Name: "Root", Role: domain.UserRoleAdmin}
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// services bundles the mocks behind a router. Nil mocks are replaced with
// empty ones that panic when called.
type services struct {
	users         *userServiceMock
	settings      *settingsServiceMock
	grievances    *grievanceServiceMock
	opportunities *opportunityServiceMock
	courses       *courseServiceMock
}

func (s services) router() *http.ServeMux {
	if s.users == nil {
		s.users = &userServiceMock{}
	}
	if s.settings == nil {
		s.settings = &settingsServiceMock{}
	}
	if s.grievances == nil {
		s.grievances = &grievanceServiceMock{}
	}
	if s.opportunities == nil {
		s.opportunities = &opportunityServiceMock{}
	}
	if s.courses == nil {
		s.courses = &courseServiceMock{}
	}

	log := discardLogger()
	mux := http.NewServeMux()
	Handlers{
		Users:         NewUserHandler(s.users, log),
		Settings:      NewSettingsHandler(s.settings, log),
		Grievances:    NewGrievanceHandler(s.grievances, log),
		Opportunities: NewOpportunityHandler(s.opportunities, log),
		Courses:       NewCourseHandler(s.courses, log),
	}.Register(mux)
	return mux
}

// do sends a request as actor through the router.
func (s services) do(t *testing.T, method, target, body string, actor domain.Actor) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req = req.WithContext(ctxutil.WithActor(req.Context(), actor))

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d (%s)", status, rec.Code, rec.Body.String())
	}
	body := decodeBody[errorBody](t, rec)
	if body.Error.Code != code {
		t.Errorf("expected code %q, got %q", code, body.Error.Code)
	}
}
