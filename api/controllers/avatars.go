package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aydinsoft/backoffice-backend/api/middleware"
	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/api/validators"
	"github.com/aydinsoft/backoffice-backend/internal/avatars"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/types"
)

type uploadAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
	UserID int64  `json:"userId"`
}

// ServeAvatar streams a stored avatar image with immutable caching headers.
func ServeAvatar(store *avatars.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "avatar store unavailable"))
			return
		}

		filename := chi.URLParam(r, "filename")
		avatar, err := store.Load(filename)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", avatar.ContentType)
		w.Header().Set("Cache-Control", avatars.CacheControl)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(avatar.Data)
	}
}

// UploadAvatar decodes a base64 data URI and persists it for the caller.
// The stored filename embeds the subject user id; a payload that omits it
// falls back to the authenticated account.
func UploadAvatar(store *avatars.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "avatar store unavailable"))
			return
		}

		var payload uploadAvatarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := payload.UserID
		if userID == 0 {
			userID = middleware.UserIDFromContext(r.Context())
		}

		stored, err := store.Save(payload.Avatar, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{
			"success":  true,
			"path":     stored.PublicPath,
			"filename": stored.Filename,
		})
	}
}
