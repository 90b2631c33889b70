package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aydinsoft/backoffice-backend/api/middleware"
	authsvc "github.com/aydinsoft/backoffice-backend/internal/auth"
	usersvc "github.com/aydinsoft/backoffice-backend/internal/users"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

type stubAuthService struct {
	result    *authsvc.LoginResponse
	err       error
	revokedID string
}

func (s *stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return s.result, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.revokedID = sessionID
	return s.err
}

func TestLoginSuccess(t *testing.T) {
	svc := &stubAuthService{result: &authsvc.LoginResponse{
		User:  &usersvc.UserDTO{ID: 1, Email: "admin@store.com", Role: "admin"},
		Token: "token-value",
	}}
	handler := Login(svc, nil)

	body, _ := json.Marshal(map[string]string{"email": "admin@store.com", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Success bool            `json:"success"`
		User    *usersvc.UserDTO `json:"user"`
		Token   string          `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success || envelope.Token != "token-value" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.User == nil || envelope.User.Email != "admin@store.com" {
		t.Fatalf("unexpected user: %+v", envelope.User)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة")}
	handler := Login(svc, nil)

	body, _ := json.Marshal(map[string]string{"email": "admin@store.com", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Message != "البريد الإلكتروني أو كلمة المرور غير صحيحة" {
		t.Fatalf("unexpected message: %q", payload.Error.Message)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	handler := Login(&stubAuthService{}, nil)

	body, _ := json.Marshal(map[string]string{"email": "not-an-email", "password": "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := &stubAuthService{}
	handler := Logout(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	ctx := middleware.WithActor(req.Context(), 1, "Admin", enums.RoleAdmin)
	ctx = middleware.WithSessionID(ctx, "session-123")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.revokedID != "session-123" {
		t.Fatalf("expected session-123 got %q", svc.revokedID)
	}
}
