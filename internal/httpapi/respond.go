package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"olympiad-cms/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// storeError maps store failures to the REST error contract: 404 for
// missing records, 400 for malformed ids, otherwise a generic 500 with
// the detail only logged.
func (s *Server) storeError(w http.ResponseWriter, err error, resource, op string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, store.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "invalid "+resource+" id")
	default:
		s.logger.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
