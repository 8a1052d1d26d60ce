package api

import (
	"encoding/json"
	"net/http"

	"github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/logger"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into dst, rejecting oversized and
// malformed payloads with a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
