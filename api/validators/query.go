package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParsePathID extracts a positive numeric id from a chi route parameter.
// Callers wanting a localized message pass it as missingMsg; an empty string
// falls back to a generic one.
func ParsePathID(r *http.Request, key string, missingMsg string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	if raw == "" {
		if missingMsg == "" {
			missingMsg = "path parameter is required"
		}
		return 0, pkgerrors.New(pkgerrors.CodeValidation, missingMsg).WithDetails(map[string]any{"field": key})
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		if missingMsg == "" {
			missingMsg = "path parameter is invalid"
		}
		return 0, pkgerrors.New(pkgerrors.CodeValidation, missingMsg).WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
