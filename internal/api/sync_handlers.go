package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirela/brainplay/internal/models"
)

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var snapshot models.Snapshot
	if err := decodeJSON(w, r, &snapshot); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.SyncService.ImportSnapshot(r.Context(), id, snapshot); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}
