package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/minumaeng82-netizen/dasuDashboard/internal/api/middleware"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/calendar"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/dto"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/model"
	"github.com/minumaeng82-netizen/dasuDashboard/internal/service"
	errs "github.com/minumaeng82-netizen/dasuDashboard/pkg/errors"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/jwt"
	"github.com/minumaeng82-netizen/dasuDashboard/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock services ──

type mockAuthService struct {
	loginResult *dto.LoginResponse
	loginErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	return nil, nil
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error { return nil }
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return nil
}

type mockScheduleService struct {
	createResult *model.Schedule
	createErr    error
	deleteErr    error
}

func (m *mockScheduleService) List(_ context.Context, _ calendar.ViewMode, _ string) (*dto.ScheduleListResponse, error) {
	return &dto.ScheduleListResponse{}, nil
}
func (m *mockScheduleService) Grid(_ context.Context, _ *dto.GridQuery, _ string) (*dto.GridResponse, error) {
	return &dto.GridResponse{}, nil
}
func (m *mockScheduleService) Day(_ context.Context, _ string, _ calendar.ViewMode, _ string) (*dto.DayResponse, error) {
	return &dto.DayResponse{}, nil
}
func (m *mockScheduleService) Create(_ context.Context, _ string, _ *dto.UpsertScheduleRequest) (*model.Schedule, error) {
	return m.createResult, m.createErr
}
func (m *mockScheduleService) Update(_ context.Context, _, _ string, _ model.Role, _ *dto.UpsertScheduleRequest) (*model.Schedule, error) {
	return nil, nil
}
func (m *mockScheduleService) Delete(_ context.Context, _, _ string, _ model.Role) error {
	return m.deleteErr
}

// ── Helpers ──

func asSession(email, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmail, email)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func decodeEnvelope(t *testing.T, body io.Reader) response.Response {
	t.Helper()
	var env response.Response
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	return env
}

func TestLoginBadRequest(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})
	r := gin.New()
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})
	r := gin.New()
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login",
		bytes.NewBufferString(`{"email":"kim@sc2.gyo6.net","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if env := decodeEnvelope(t, w.Body); env.Code != 10004 {
		t.Errorf("code = %d, want 10004", env.Code)
	}
}

func TestScheduleCreateDegradedCarriesWarning(t *testing.T) {
	rec := &model.Schedule{ScheduleID: "s1", Title: "체험학습", Date: "2026-03-20"}
	h := NewScheduleHandler(&mockScheduleService{createResult: rec, createErr: errs.ErrRemoteDegraded})

	r := gin.New()
	r.POST("/schedules", asSession("kim@sc2.gyo6.net", "user"), h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schedules",
		bytes.NewBufferString(`{"title":"체험학습","date":"2026-03-20","category":"event"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("degraded write should still be a 200, got %d", w.Code)
	}
	env := decodeEnvelope(t, w.Body)
	if env.Code != 0 {
		t.Errorf("envelope code = %d", env.Code)
	}
	if env.Details == "" {
		t.Error("degraded write must surface a warning in details")
	}
}

func TestScheduleCreateRequiresSession(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{})
	r := gin.New()
	r.POST("/schedules", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schedules",
		bytes.NewBufferString(`{"title":"체험학습","date":"2026-03-20","category":"event"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestScheduleDeletePermissionDenied(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{deleteErr: service.ErrPermissionDenied})
	r := gin.New()
	r.DELETE("/schedules/:id", asSession("lee@sc2.gyo6.net", "user"), h.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/schedules/s1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
