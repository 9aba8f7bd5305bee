package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
)

// pathID parses the named path value, writing invalid as the error response on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string, invalid *appErrors.AppError) (int64, bool) {
	id, err := utils.ParseID(r.PathValue(name))
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid path parameter", slog.String("param", name), slog.String("value", r.PathValue(name)))
		response.Error(w, invalid.WithError(err))
		return 0, false
	}
	return id, true
}

// callerID resolves the caller, letting bodyUserID stand in for the development default.
func callerID(w http.ResponseWriter, r *http.Request, bodyUserID *int64) (int64, bool) {
	userID, err := middleware.ResolveUserID(r.Context(), bodyUserID)
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Request without caller identity")
		response.Error(w, err)
		return 0, false
	}
	return userID, true
}
