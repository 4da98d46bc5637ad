package handlers

import (
	"encoding/json"
	"net/http"
)

// Health is a liveness probe. It does not touch the store.
func Health() http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
