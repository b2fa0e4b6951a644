package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/drivenpass/internal/common"
)

// errorResponse is the body shape every failed request gets.
type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message, StatusCode: status})
}

// writeServiceError maps the service sentinels onto statuses, using the
// caller's wording for the not-found and conflict cases.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg, conflictMsg string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, common.ErrorConflict):
		writeError(w, http.StatusConflict, conflictMsg)
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "You do not have permission to access this resource.")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid password.")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error.")
	}
}
