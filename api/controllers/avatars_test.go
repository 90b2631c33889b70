package controllers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aydinsoft/backoffice-backend/api/middleware"
	"github.com/aydinsoft/backoffice-backend/internal/avatars"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
)

func newAvatarStore(t *testing.T) *avatars.Store {
	t.Helper()
	store, err := avatars.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
}

func TestUploadAvatarThenServe(t *testing.T) {
	store := newAvatarStore(t)
	upload := UploadAvatar(store, nil)

	payload, _ := json.Marshal(map[string]any{"avatar": pngDataURI(), "userId": 3})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-avatar", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	upload.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upload: expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Success  bool   `json:"success"`
		Path     string `json:"path"`
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success || !strings.HasPrefix(envelope.Filename, "avatar-3-") {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.Path != "/api/avatars/"+envelope.Filename {
		t.Fatalf("unexpected path: %q", envelope.Path)
	}

	serve := ServeAvatar(store, nil)
	req = httptest.NewRequest(http.MethodGet, envelope.Path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", envelope.Filename)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec = httptest.NewRecorder()
	serve.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("serve: expected 200 got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != avatars.CacheControl {
		t.Fatalf("unexpected cache control %q", got)
	}
	if rec.Body.String() != "png-bytes" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestUploadAvatarRejectsNonImage(t *testing.T) {
	handler := UploadAvatar(newAvatarStore(t), nil)

	payload, _ := json.Marshal(map[string]any{"avatar": "data:text/plain;base64,aGk=", "userId": 3})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-avatar", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUploadAvatarFallsBackToAuthenticatedUser(t *testing.T) {
	store := newAvatarStore(t)
	handler := UploadAvatar(store, nil)

	payload, _ := json.Marshal(map[string]any{"avatar": pngDataURI()})
	req := httptest.NewRequest(http.MethodPost, "/api/upload-avatar", bytes.NewReader(payload))
	req = req.WithContext(middleware.WithActor(req.Context(), 9, "Staff", enums.RoleStaff))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(envelope.Filename, "avatar-9-") {
		t.Fatalf("unexpected filename: %q", envelope.Filename)
	}
}

func TestServeAvatarMissing(t *testing.T) {
	handler := ServeAvatar(newAvatarStore(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/avatars/avatar-1-1.png", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", "avatar-1-1.png")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
