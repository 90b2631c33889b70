package controllers

import (
	"net/http"
	"strings"

	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/api/validators"
	"github.com/aydinsoft/backoffice-backend/internal/profiles"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/types"
)

type saveProfileRequest struct {
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Username *string `json:"username"`
}

// GetProfile returns the stored profile for an email, or a JSON null when
// none exists.
func GetProfile(store *profiles.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile store unavailable"))
			return
		}

		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if email == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Email required"))
			return
		}

		profile, err := store.Get(email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "profile read failed"))
			return
		}

		responses.WriteJSON(w, http.StatusOK, profile)
	}
}

// SaveProfile overwrites the stored profile for an email.
func SaveProfile(store *profiles.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile store unavailable"))
			return
		}

		var payload saveProfileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if strings.TrimSpace(payload.Email) == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Email required"))
			return
		}

		if err := store.Save(payload.Email, payload.Avatar, payload.Bio, payload.Username); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "profile write failed"))
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true})
	}
}
