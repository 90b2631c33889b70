package controllers

import (
	"net/http"

	"github.com/aydinsoft/backoffice-backend/api/middleware"
	"github.com/aydinsoft/backoffice-backend/api/responses"
	"github.com/aydinsoft/backoffice-backend/api/validators"
	categorysvc "github.com/aydinsoft/backoffice-backend/internal/categories"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/types"
)

type deleteCategoryRequest struct {
	ID int64 `json:"id"`
}

// ListCategories returns every category.
func ListCategories(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, categories)
	}
}

// CreateCategory inserts a category with a unique name.
func CreateCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		var payload categorysvc.CreateCategoryInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payload.Name = validators.SanitizeString(payload.Name, 0)

		category, err := svc.CreateCategory(r.Context(), middleware.UserNameFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true, "category": category})
	}
}

// DeleteCategory removes a category. The id travels in the request body.
func DeleteCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		var payload deleteCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteCategory(r.Context(), middleware.UserNameFromContext(r.Context()), payload.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, types.Envelope{"success": true})
	}
}
