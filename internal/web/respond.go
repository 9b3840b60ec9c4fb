package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rbelkadi/chantrack/internal/service"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps service failures onto HTTP statuses: a lookup miss
// is 404, anything else from a mutation flow is treated as caller input.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondError(w, http.StatusBadRequest, err.Error())
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
