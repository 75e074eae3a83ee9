package healthcheck

import (
	"encoding/json"
	"eventers-legacy-adapter/logger"
	"net/http"
)

type status struct {
	Status string `json:"status"`
}

// Self reports that the process is up.
func Self(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status{Status: "OK"}); err != nil {
		logger.Errorf(r.Context(), "healthcheck: error encoding status: %+v", err)
	}
}
