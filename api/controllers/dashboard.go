package controllers

import (
	"net/http"

	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/internal/dashboard"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
)

// DashboardSummary returns the accounting overview.
func DashboardSummary(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, summary)
	}
}
