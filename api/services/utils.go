package services

import (
	"encoding/json"
	"net/http"

	"github.com/projectpulse/dashboard-services/models"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// Dashboards poll these endpoints, so responses must never be cached
	w.Header().Set("Cache-Control", "max-age=0")

	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// WriteStorageError maps an unexpected storage failure to a 500 with a
// generic message, attaching the original error for diagnostics.
func WriteStorageError(w http.ResponseWriter, message string, err error) {
	WriteResponse(w, http.StatusInternalServerError, models.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
