package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adminRepoPkg "rent2reuse/database/repository/admin"
	"rent2reuse/models"
	"rent2reuse/services/auth"

	"github.com/gin-gonic/gin"
)

type mockAdminRepo struct {
	records   map[string]*models.AdminAccount
	lookupErr error
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	for _, rec := range m.records {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, adminRepoPkg.ErrNotFound
}

func (m *mockAdminRepo) GetByUID(ctx context.Context, uid string) (*models.AdminAccount, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	if rec, ok := m.records[uid]; ok {
		return rec, nil
	}
	return nil, adminRepoPkg.ErrNotFound
}

func (m *mockAdminRepo) List(ctx context.Context) ([]models.AdminAccount, error) {
	var out []models.AdminAccount
	for _, rec := range m.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (m *mockAdminRepo) StampLastLogout(ctx context.Context, uid string, at time.Time) error {
	return nil
}

func (m *mockAdminRepo) UpdateStatus(ctx context.Context, uid string, status string) error {
	return nil
}

type mockSessions struct {
	signedOut []string
	outErr    error
}

func (m *mockSessions) SignIn(ctx context.Context, idToken string) (*auth.Session, string, error) {
	return nil, "", auth.ErrDenied
}

func (m *mockSessions) ResolveSession(ctx context.Context, token string) (*auth.Session, error) {
	return nil, auth.ErrDenied
}

func (m *mockSessions) SignOut(ctx context.Context, uid string) error {
	m.signedOut = append(m.signedOut, uid)
	return m.outErr
}

func beaconRequest(h *AuthHandler, body interface{}) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/logout-beacon", h.LogoutBeaconHandler)

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout-beacon", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogoutBeaconRevokesSession(t *testing.T) {
	repo := &mockAdminRepo{records: map[string]*models.AdminAccount{
		"u1": {UID: "u1", Email: "a@b.c", AccountStatus: models.AccountStatusApproved},
	}}
	sessions := &mockSessions{}
	h := NewAuthHandler(sessions, repo, auth.NewSessionWatcher())

	w := beaconRequest(h, map[string]string{"uid": "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["success"]; got != true {
		t.Fatalf("expected success=true, got %v", got)
	}
	if len(sessions.signedOut) != 1 || sessions.signedOut[0] != "u1" {
		t.Fatalf("session not revoked for u1: %v", sessions.signedOut)
	}
}

func TestLogoutBeaconMissingUIDIs400(t *testing.T) {
	sessions := &mockSessions{}
	h := NewAuthHandler(sessions, &mockAdminRepo{}, auth.NewSessionWatcher())

	for _, body := range []interface{}{map[string]string{}, map[string]string{"uid": ""}} {
		if w := beaconRequest(h, body); w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, w.Code)
		}
	}
	if len(sessions.signedOut) != 0 {
		t.Fatalf("sign-out was called without a uid")
	}
}

func TestLogoutBeaconUnknownUIDIs404(t *testing.T) {
	h := NewAuthHandler(&mockSessions{}, &mockAdminRepo{}, auth.NewSessionWatcher())

	if w := beaconRequest(h, map[string]string{"uid": "ghost"}); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestLogoutBeaconBackendFailureIs500(t *testing.T) {
	repo := &mockAdminRepo{records: map[string]*models.AdminAccount{
		"u1": {UID: "u1", AccountStatus: models.AccountStatusApproved},
	}}
	h := NewAuthHandler(&mockSessions{outErr: errors.New("redis down")}, repo, auth.NewSessionWatcher())

	if w := beaconRequest(h, map[string]string{"uid": "u1"}); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	lookupFailRepo := &mockAdminRepo{lookupErr: errors.New("firestore unavailable")}
	h = NewAuthHandler(&mockSessions{}, lookupFailRepo, auth.NewSessionWatcher())
	if w := beaconRequest(h, map[string]string{"uid": "u1"}); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on lookup failure, got %d", w.Code)
	}
}
