package controllers

import (
	"net/http"

	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/api/validators"
	"github.com/aydinsoft/backoffice-backend/internal/audit"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/types"
)

// ListTransactions returns the audit log newest first. An optional limit
// query parameter caps the page; zero means everything.
func ListTransactions(svc audit.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 10000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		responses.WriteJSON(w, http.StatusOK, entries)
	}
}

// AddTransaction appends an audit entry on behalf of a client. Insert
// failures are reported inside a 200 body; callers fire and forget.
func AddTransaction(svc audit.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		var payload audit.AddInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Add(r.Context(), payload)
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "transactions.add_failed", err)
			}
			responses.WriteJSON(w, http.StatusOK, types.Envelope{"success": false, "error": "Failed to add transaction"})
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true, "transaction": entry})
	}
}

// ClearTransactions wipes the audit log.
func ClearTransactions(svc audit.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		if err := svc.ClearAll(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true})
	}
}
