package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
)

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// respondStoreError maps repository failures onto structured responses:
// malformed ids are client faults, everything else is a server fault.
func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrInvalidID) {
		respondMessage(w, http.StatusBadRequest, "invalid identifier")
		return
	}
	respondMessage(w, http.StatusInternalServerError, "internal server error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
