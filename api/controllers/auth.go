package controllers

import (
	"net/http"

	"github.com/aydinsoft/backoffice-backend/api/middleware"
	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/api/validators"
	authsvc "github.com/aydinsoft/backoffice-backend/internal/auth"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/types"
)

// Login verifies credentials and opens a session.
func Login(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{
			"success": true,
			"user":    result.User,
			"token":   result.Token,
		})
	}
}

// Logout revokes the caller's session.
func Logout(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true})
	}
}
