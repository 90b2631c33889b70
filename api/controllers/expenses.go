package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aydinsoft/backoffice-backend/api/middleware"
	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/api/validators"
	expensesvc "github.com/aydinsoft/backoffice-backend/internal/expenses"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/types"
)

// ListExpenses returns expenses newest first.
func ListExpenses(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expense service unavailable"))
			return
		}

		expenses, err := svc.ListExpenses(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, expenses)
	}
}

// CreateExpense records a new expense.
func CreateExpense(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expense service unavailable"))
			return
		}

		var payload expensesvc.CreateExpenseInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		expense, err := svc.CreateExpense(r.Context(), middleware.UserNameFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true, "expense": expense})
	}
}

// UpdateExpense merges the payload over the expense named by body id.
func UpdateExpense(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expense service unavailable"))
			return
		}

		var payload expensesvc.UpdateExpenseInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		expense, err := svc.UpdateExpense(r.Context(), middleware.UserNameFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true, "expense": expense})
	}
}

// DeleteExpense removes an expense by query id. Unlike the other resources a
// non-numeric id is rejected outright instead of falling through to 404.
func DeleteExpense(svc expensesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expense service unavailable"))
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("id"))
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "معرف المصروف غير صالح"))
			return
		}

		if err := svc.DeleteExpense(r.Context(), middleware.UserNameFromContext(r.Context()), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true, "message": "تم حذف المصروف"})
	}
}
